package sokoban

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

func TestGlyphForWalls(t *testing.T) {
	tests := []struct {
		mask  WallMask
		box   rune
		ascii rune
	}{
		{0, '┼', '+'},
		{WallUp, '│', '|'},
		{WallDown, '│', '|'},
		{WallUp | WallDown, '│', '|'},
		{WallLeft, '─', '-'},
		{WallLeft | WallRight, '─', '-'},
		{WallDown | WallRight, '┌', '+'},
		{WallDown | WallLeft, '┐', '+'},
		{WallUp | WallRight, '└', '+'},
		{WallUp | WallLeft, '┘', '+'},
		{WallUp | WallDown | WallRight, '├', '+'},
		{WallUp | WallDown | WallLeft, '┤', '+'},
		{WallDown | WallLeft | WallRight, '┬', '+'},
		{WallUp | WallLeft | WallRight, '┴', '+'},
		{WallUp | WallDown | WallLeft | WallRight, '┼', '+'},
	}

	for _, tt := range tests {
		if got := GlyphFor(TileWall, tt.mask, RenderOptions{}).Rune; got != tt.box {
			t.Errorf("GlyphFor(wall, %04b) = %q, want %q", tt.mask, got, tt.box)
		}
		if got := GlyphFor(TileWall, tt.mask, RenderOptions{ASCII: true}).Rune; got != tt.ascii {
			t.Errorf("GlyphFor(wall, %04b, ascii) = %q, want %q", tt.mask, got, tt.ascii)
		}
	}
}

func TestGlyphForPieces(t *testing.T) {
	color := RenderOptions{Color: true}
	tests := []struct {
		tile Tile
		want rune
		bg   core.Color
	}{
		{TileEmpty, ' ', core.ColorYellow},
		{TilePlayer, '@', core.ColorGreen},
		{TilePlayerOnGoal, '@', core.ColorGreen},
		{TileBox, '#', core.ColorRed},
		{TileBoxOnGoal, '0', core.ColorMagenta},
		{TileGoal, 'O', core.ColorCyan},
		{Tile('x'), 'x', core.ColorBlack},
	}

	for _, tt := range tests {
		g := GlyphFor(tt.tile, 0, color)
		if g.Rune != tt.want || g.Style.Bg != tt.bg {
			t.Errorf("GlyphFor(%q) = %q on %d, want %q on %d", tt.tile, g.Rune, g.Style.Bg, tt.want, tt.bg)
		}
		if mono := GlyphFor(tt.tile, 0, RenderOptions{}); !mono.Style.IsZero() || mono.Rune != tt.want {
			t.Errorf("GlyphFor(%q) without color = %+v, want plain %q", tt.tile, mono, tt.want)
		}
	}

	if !GlyphFor(TileWall, 0, color).Style.Attr.Has(core.AttrReverse) {
		t.Error("walls should be drawn reversed in color mode")
	}
	if !GlyphFor(TileBox, 0, color).Style.Attr.Has(core.AttrBold) {
		t.Error("boxes should be bold in color mode")
	}
}

func TestWallMaskAt(t *testing.T) {
	s := mustSession(t, "#####\n#@$.#\n#####")

	tests := []struct {
		x, y int
		want WallMask
	}{
		{0, 0, WallDown | WallRight},
		{2, 0, WallLeft | WallRight},
		{4, 0, WallDown | WallLeft},
		{0, 1, WallUp | WallDown},
		{4, 2, WallUp | WallLeft},
	}
	for _, tt := range tests {
		if got := s.WallMaskAt(tt.x, tt.y); got != tt.want {
			t.Errorf("WallMaskAt(%d, %d) = %04b, want %04b", tt.x, tt.y, got, tt.want)
		}
	}
}

func renderCorridor(t *testing.T, w, h int, opts RenderOptions) (*Game, *core.Screen) {
	t.Helper()
	g, err := NewGame(sliceCatalog{{Name: "corridor", Text: "#####\n#@$.#\n#####"}}, 0)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	scr := core.NewScreen(w, h)
	g.Render(scr, opts)
	return g, scr
}

func TestGameRenderLayout(t *testing.T) {
	_, scr := renderCorridor(t, 50, 20, DefaultRenderOptions())

	// Map origin is (22, 8): centered horizontally and vertically.
	want := []string{"┌───┐", "│@#O│", "└───┘"}
	for i, row := range want {
		if got := scr.Row(8 + i)[22 : 22+len(row)]; got != row {
			t.Errorf("map row %d = %q, want %q", i, got, row)
		}
	}

	// Lines that fit stay aligned with the map; the key legend is pulled
	// left so that it ends on the last column.
	lines := []struct {
		y, x int
		text string
	}{
		{12, 22, DefaultTitle},
		{13, 22, "Level: corridor (1/1)"},
		{14, 22, "Boxes: 0/1"},
		{15, 22, legendMoves},
		{16, 8, legendKeys},
	}
	for _, tt := range lines {
		if got := strings.TrimRight(scr.Row(tt.y), " "); got != strings.Repeat(" ", tt.x)+tt.text {
			t.Errorf("row %d = %q, want %q at column %d", tt.y, got, tt.text, tt.x)
		}
	}
	if !scr.GetCell(22, 13).Style.Attr.Has(core.AttrBold) {
		t.Error("status lines should be bold in color mode")
	}
}

func TestStatusX(t *testing.T) {
	tests := []struct {
		name string
		x, w int
		text string
		want int
	}{
		{"fits at map column", 17, 40, "Boxes: 0/1", 17},
		{"ends on last column", 17, 40, "0123456789012345678901234567", 12},
		{"wider than screen", 17, 20, "0123456789012345678901234", 0},
		{"exact fit", 5, 15, "0123456789", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusX(tt.x, tt.w, tt.text); got != tt.want {
				t.Errorf("statusX(%d, %d, %q) = %d, want %d", tt.x, tt.w, tt.text, got, tt.want)
			}
		})
	}
}

func TestGameRenderComplete(t *testing.T) {
	tests := []struct {
		name string
		w    int
		x    int
		text string
	}{
		{"wide screen", 50, 9, completeMessage},
		{"narrow screen", 40, 17, completeShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, scr := renderCorridor(t, tt.w, 20, DefaultRenderOptions())
			g.Apply(core.ActionRight)
			g.Render(scr, DefaultRenderOptions())

			if got := strings.TrimRight(scr.Row(14), " "); got != strings.Repeat(" ", tt.x)+tt.text {
				t.Errorf("row 14 = %q, want %q at column %d", got, tt.text, tt.x)
			}
			if !scr.GetCell(tt.x, 14).Style.Attr.Has(core.AttrStandout) {
				t.Error("completion message should use standout")
			}
		})
	}
}

func TestGameRenderHidesLegendWhenNarrow(t *testing.T) {
	_, scr := renderCorridor(t, 40, 20, DefaultRenderOptions())

	if strings.Contains(scr.String(), legendMoves) || strings.Contains(scr.String(), "[R]estart") {
		t.Error("legend should be hidden when its keys line is wider than the screen")
	}
	if got := strings.TrimRight(scr.Row(14), " "); got != strings.Repeat(" ", 17)+"Boxes: 0/1" {
		t.Errorf("row 14 = %q, want box counter at column 17", got)
	}
}

func TestGameRenderHidesLegendWhenShort(t *testing.T) {
	_, scr := renderCorridor(t, 40, 14, DefaultRenderOptions())

	if strings.Contains(scr.String(), legendMoves) {
		t.Error("legend should be hidden when it does not fit")
	}
	if !strings.Contains(scr.String(), "Boxes: 0/1") {
		t.Error("box counter should still be drawn")
	}
}

func TestGameRenderASCIIMonochrome(t *testing.T) {
	_, scr := renderCorridor(t, 40, 20, RenderOptions{ASCII: true})

	if got := scr.Row(8)[17:22]; got != "+---+" {
		t.Errorf("top wall = %q, want %q", got, "+---+")
	}
	if strings.Contains(scr.String(), DefaultTitle) {
		t.Error("empty title should hide the title line")
	}
	for y := 0; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			if !scr.GetCell(x, y).Style.IsZero() {
				t.Fatalf("cell (%d, %d) is styled in monochrome mode", x, y)
			}
		}
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	_, scr := renderCorridor(t, 20, 5, DefaultRenderOptions())

	if !strings.Contains(scr.Row(2), "Window too small") {
		t.Errorf("row 2 = %q, want window too small notice", scr.Row(2))
	}
	if strings.Contains(scr.String(), "@") {
		t.Error("map should not be drawn on a small screen")
	}
}

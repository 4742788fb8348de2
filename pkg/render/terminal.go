package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells and draws them on scr.
// Each terminal row packs two framebuffer rows into a single cell using
// ▀ (upper half block): fg carries the top pixel, bg carries the bottom
// one. The framebuffer height must be 2x the terminal height.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1
		if botY >= fb.Height {
			break
		}

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: packedToColor(fb.At(col, topY)),
					Bg: packedToColor(fb.At(col, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// packedToColor unpacks a PackRGBA value straight into color.Color,
// skipping the float round trip UnpackRGBA would cost per cell.
func packedToColor(p uint32) color.Color {
	return color.RGBA{
		R: uint8(p & 0xff),
		G: uint8((p >> 8) & 0xff),
		B: uint8((p >> 16) & 0xff),
		A: 255,
	}
}

// TerminalRenderer owns the terminal's cell buffer and presents one
// rasterized frame per Render/Flush pair. Since each cell packs two
// framebuffer rows, the framebuffer it drives is always twice as tall
// as the terminal in character rows.
type TerminalRenderer struct {
	term   *uv.Terminal
	screen uv.ScreenBuffer

	width, height     int
	fbWidth, fbHeight int
}

// NewTerminalRenderer sizes a cell buffer to the terminal's current
// width/height in columns/rows.
func NewTerminalRenderer(term *uv.Terminal, width, height int) *TerminalRenderer {
	return &TerminalRenderer{
		term:     term,
		screen:   uv.NewScreenBuffer(width, height),
		width:    width,
		height:   height,
		fbWidth:  width,
		fbHeight: height * 2,
	}
}

// FramebufferSize returns the pixel dimensions a Framebuffer passed to
// Render must have.
func (t *TerminalRenderer) FramebufferSize() (int, int) { return t.fbWidth, t.fbHeight }

// Render draws fb into the terminal's cell buffer without touching the
// terminal itself; call Flush to present it.
func (t *TerminalRenderer) Render(fb *Framebuffer) {
	fb.Draw(t.screen, t.screen.Bounds())
}

// Flush diffs the cell buffer against what's on screen and writes the
// changed cells to the terminal.
func (t *TerminalRenderer) Flush() error {
	t.term.Draw(t.screen)
	return t.term.Display()
}

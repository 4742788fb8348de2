// trophy renders the built-in test scene (a cube, a spinning sphere and
// an oscillating bunny, or a toy nine-body solar system) to the
// terminal using the CPU rasterizer, with an orbit camera driven by
// mouse drag and scroll.
//
// Controls:
//
//	Mouse drag  - Orbit the camera
//	Scroll      - Zoom in/out
//	1           - Cycle shading: Flat -> Gouraud -> Phong
//	2 / 3       - Halve / double shininess
//	4 / 5       - Shrink / grow sphere subdivisions
//	7           - Toggle texture-coordinate wrap (Clamp/Repeat)
//	8           - Toggle back-face culling
//	s           - Toggle the solar-system scene
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/aurorasoft/pgr/pkg/render"
	"github.com/aurorasoft/pgr/pkg/scene"
)

var (
	targetFPS    = flag.Int("fps", 60, "target FPS")
	solarStart   = flag.Bool("solar", false, "start in solar-system mode")
	shadingFlag  = flag.String("shading", "flat", "initial shading mode: flat, gouraud, phong")
	shininess    = flag.Int("shininess", 16, "initial specular shininess")
	subdivisions = flag.Int("subdivisions", 20, "initial sphere subdivision count")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "trophy: %v\n", err)
		os.Exit(1)
	}
}

func parseShading(s string) render.ShadingMode {
	switch strings.ToLower(s) {
	case "gouraud":
		return render.Gouraud
	case "phong":
		return render.Phong
	default:
		return render.Flat
	}
}

// highlight holds an emphasis value that a key press sets to 1 and a
// harmonica spring decays back to zero each frame. The HUD line is drawn
// in one fixed color and does not read this value.
type highlight struct {
	value, velocity float64
	spring          harmonica.Spring
}

func newHighlight(fps int) highlight {
	return highlight{spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0)}
}

func (h *highlight) trigger() { h.value = 1 }

func (h *highlight) update() { h.value, h.velocity = h.spring.Update(h.value, h.velocity, 0) }

// hud renders a single status line, following the teacher's ANSI escape
// HUD style.
type hud struct {
	shading, solar highlight
	fps            float64
	fpsFrames      int
	fpsTime        time.Time
}

func newHUD(fps int) *hud {
	return &hud{shading: newHighlight(fps), solar: newHighlight(fps), fpsTime: time.Now()}
}

func (h *hud) updateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

func sphereTriangleCount(n int) int {
	return n*2 + (n-2)*n*2
}

func (h *hud) render(width int, s *scene.Scene) {
	const (
		reset   = "\x1b[0m"
		bgBlack = "\x1b[40m"
		fgWhite = "\x1b[97m"
		fgGreen = "\x1b[92m"
		clear   = "\x1b[2K"
	)
	moveTo := func(row, col int) string { return fmt.Sprintf("\x1b[%d;%dH", row, col) }

	line := fmt.Sprintf("%.0f FPS  Shading: %s (1)  Shininess: %d (2)(3)  Sphere tris: %d (4)(5)  Wrap: %s (7)  Cull: %v (8)  Solar: %v (s)",
		h.fps, s.Settings.Shading, s.Settings.Shininess,
		sphereTriangleCount(s.Settings.SphereSubdivisions), s.Settings.TexCoordWrap,
		s.Settings.BackFaceCulling, s.Settings.SolarSystem)
	if len(line) > width {
		line = line[:width]
	}
	fmt.Print(moveTo(1, 1) + clear + bgBlack + fgWhite + fgGreen + " " + line + reset)
}

func run() error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	fmt.Fprint(os.Stdout, "\x1b[?1003h") // any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // SGR extended mouse mode

	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()

	sc := scene.New(fbWidth, fbHeight)
	sc.Settings.Shading = parseShading(*shadingFlag)
	sc.Settings.Shininess = *shininess
	sc.Settings.SphereSubdivisions = *subdivisions
	sc.Settings.SolarSystem = *solarStart

	h := newHUD(*targetFPS)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	var mouseDown bool
	var lastMouseX, lastMouseY int
	var pendingRelX, pendingRelY, pendingWheel float64

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				fbWidth, fbHeight = termRenderer.FramebufferSize()
				sc.Settings.Width, sc.Settings.Height = fbWidth, fbHeight

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("1"):
					sc.Settings.Shading = (sc.Settings.Shading + 1) % 3
					h.shading.trigger()
				case ev.MatchString("2"):
					if sc.Settings.Shininess != 2 {
						sc.Settings.Shininess /= 2
					}
				case ev.MatchString("3"):
					if sc.Settings.Shininess != 2<<10 {
						sc.Settings.Shininess *= 2
					}
				case ev.MatchString("4"):
					if sc.Settings.SphereSubdivisions != 5 {
						sc.Settings.SphereSubdivisions -= 5
					}
				case ev.MatchString("5"):
					if sc.Settings.SphereSubdivisions != 150 {
						sc.Settings.SphereSubdivisions += 5
					}
				case ev.MatchString("7"):
					if sc.Settings.TexCoordWrap == render.WrapClamp {
						sc.Settings.TexCoordWrap = render.WrapRepeat
					} else {
						sc.Settings.TexCoordWrap = render.WrapClamp
					}
				case ev.MatchString("8"):
					sc.Settings.BackFaceCulling = !sc.Settings.BackFaceCulling
				case ev.MatchString("s"):
					sc.Settings.SolarSystem = !sc.Settings.SolarSystem
					h.solar.trigger()
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					pendingRelX += float64(ev.X - lastMouseX)
					pendingRelY += float64(ev.Y - lastMouseY)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					pendingWheel++
				case uv.MouseWheelDown:
					pendingWheel--
				}
			}
		}
	}()

	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if dt > 0.1 {
			dt = 0.1
		}

		sc.Update(dt, scene.Input{MouseRelX: pendingRelX, MouseRelY: pendingRelY, MouseWheel: pendingWheel})
		pendingRelX, pendingRelY, pendingWheel = 0, 0, 0

		h.shading.update()
		h.solar.update()

		termRenderer.Render(sc.Rasterizer.Framebuffer())
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		h.updateFPS()
		h.render(width, sc)

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

package dash

import (
	"image"
	"time"
)

// Default timing.
const (
	DefaultFadeIn     = 2 * time.Second
	DefaultHold       = 1500 * time.Millisecond
	DefaultFadeOut    = 800 * time.Millisecond
	DefaultFrameDelay = 100 * time.Millisecond
)

const fadeSteps = 32

// App runs the dashboard: the one-time splash sequence, then the frame
// loop. Everything is single-threaded; the only suspension points are the
// explicit waits between fade steps and frames.
type App struct {
	// Title and Vehicle are printed above and below the splash image.
	Title   string
	Vehicle string

	// Startup and frame timing.
	FadeIn     time.Duration
	Hold       time.Duration
	FadeOut    time.Duration
	FrameDelay time.Duration

	canvas Canvas
	source Source
	render *Renderer
	sleep  func(time.Duration)
}

// New returns an app rendering readings from source onto canvas.
func New(canvas Canvas, source Source) *App {
	return &App{
		Title:      "DASH",
		Vehicle:    "E30 M20B25",
		FadeIn:     DefaultFadeIn,
		Hold:       DefaultHold,
		FadeOut:    DefaultFadeOut,
		FrameDelay: DefaultFrameDelay,
		canvas:     canvas,
		source:     source,
		render:     NewRenderer(canvas),
		sleep:      time.Sleep,
	}
}

// Startup paints the splash screen, fades the backlight up, holds, fades
// back down and clears the screen. It runs exactly once, before Run.
func (a *App) Startup() error {
	a.canvas.Clear()
	if err := DrawSplash(a.canvas, Logo, LogoWidth, LogoHeight); err != nil {
		return err
	}

	bounds := a.canvas.Bounds()
	y0 := (bounds.Dy() - LogoHeight) / 2
	tw := a.canvas.TextWidth(LargeText, a.Title)
	a.canvas.Print(image.Pt((bounds.Dx()-tw)/2, y0-28), LargeText, a.Title, colorText, colorNeutral)
	vw := a.canvas.TextWidth(SmallText, a.Vehicle)
	a.canvas.Print(image.Pt((bounds.Dx()-vw)/2, y0+LogoHeight+6), SmallText, a.Vehicle, colorText, colorNeutral)
	if err := a.canvas.Refresh(); err != nil {
		return err
	}

	if err := a.fade(0, 0xff, a.FadeIn); err != nil {
		return err
	}
	a.sleep(a.Hold)
	if err := a.fade(0xff, 0, a.FadeOut); err != nil {
		return err
	}

	a.canvas.Clear()
	return a.canvas.Refresh()
}

func (a *App) fade(from, to uint8, d time.Duration) error {
	step := d / fadeSteps
	for i := 1; i <= fadeSteps; i++ {
		level := int(from) + (int(to)-int(from))*i/fadeSteps
		if err := a.canvas.Backlight(uint8(level)); err != nil {
			return err
		}
		a.sleep(step)
	}
	return nil
}

// Frame renders one tick: read all six channels, resolve each cell's text
// and color, and push the result to the display.
func (a *App) Frame() error {
	readings := a.source.Read()
	for _, cell := range Cells {
		v := readings.Value(cell.Kind)
		text, ok := cell.Field.Format(v)
		bg := cell.Bands.Color(v)
		if !ok {
			// Never show an undefined or out-of-range value in a safe color.
			text, bg = ErrText, colorAlert
		}
		if err := a.render.Cell(cell.Pos, cell.Label, cell.Unit, text, bg); err != nil {
			return err
		}
	}
	if err := a.canvas.Refresh(); err != nil {
		return err
	}
	return a.canvas.Backlight(0xff)
}

// Run renders frames forever. The dashboard has no stop condition other
// than power loss; Run only returns on a render error.
func (a *App) Run() error {
	// Start from a neutral screen so the renderer's cache matches the glass.
	a.canvas.Clear()
	if err := a.canvas.Refresh(); err != nil {
		return err
	}
	for {
		if err := a.Frame(); err != nil {
			return err
		}
		a.sleep(a.FrameDelay)
	}
}

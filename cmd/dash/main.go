// Command dash runs the engine dashboard on an ST7735 TFT, a Linux
// framebuffer, or an ANSI terminal emulator.
package main

import (
	"flag"
	"fmt"
	"os"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/dash"
	"github.com/BeatGlow/dash/display"
	"github.com/BeatGlow/dash/framebuffer"
)

func main() {
	outputFlag := flag.String("output", "st7735", "Output driver (st7735, fb, term)")
	spiBusFlag := flag.Int("spi-bus", 0, "SPI bus")
	spiDeviceFlag := flag.Int("spi-dev", 0, "SPI device")
	resetPinFlag := flag.String("reset", "GPIO25", "Reset GPIO pin")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC)")
	cePinFlag := flag.String("ce", "GPIO8", "Chip enable GPIO pin")
	blPinFlag := flag.String("bl", "GPIO19", "Backlight GPIO pin")
	fbFlag := flag.String("fb", "/dev/fb0", "Framebuffer device")
	rotateFlag := flag.String("rotate", "90", "Display rotation")
	titleFlag := flag.String("title", "DASH", "Splash title")
	vehicleFlag := flag.String("vehicle", "E30 M20B25", "Splash vehicle identifier")
	flag.Parse()

	var rotation display.Rotation
	switch *rotateFlag {
	case "", "no", "0":
		rotation = display.NoRotation
	case "90", "right", "cw":
		rotation = display.Rotate90
	case "180", "flip":
		rotation = display.Rotate180
	case "270", "left", "ccw":
		rotation = display.Rotate270
	default:
		fatal(fmt.Errorf("invalid rotation %q specified", *rotateFlag))
	}

	var (
		output display.Display
		err    error
	)
	switch *outputFlag {
	case "st7735":
		if _, err = host.Init(); err != nil {
			fatal(err)
		}

		var conn display.Conn
		conn, err = display.OpenSPI(&display.SPIConfig{
			Bus:    *spiBusFlag,
			Device: *spiDeviceFlag,
			Reset:  gpioreg.ByName(*resetPinFlag),
			DC:     gpioreg.ByName(*dcPinFlag),
			CE:     gpioreg.ByName(*cePinFlag),
		})
		if err != nil {
			fatal(err)
		}

		output, err = display.ST7735(conn, &display.ST7735Config{
			Config: display.Config{
				Width:    dash.Width,
				Height:   dash.Height,
				Rotation: rotation,
			},
			Backlight: gpioreg.ByName(*blPinFlag),
		})
	case "fb":
		output, err = framebuffer.Open(*fbFlag)
	case "term":
		output = display.Terminal(&display.Config{
			Width:  dash.Width,
			Height: dash.Height,
		})
	default:
		err = fmt.Errorf("unsupported output %q", *outputFlag)
	}
	if err != nil {
		fatal(err)
	}
	defer output.Close()

	canvas, err := display.NewCanvas(output)
	if err != nil {
		fatal(err)
	}

	app := dash.New(canvas, dash.NewWaveSource())
	app.Title = *titleFlag
	app.Vehicle = *vehicleFlag

	if err = app.Startup(); err != nil {
		fatal(err)
	}
	fatal(app.Run())
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}

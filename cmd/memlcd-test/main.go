package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/memlcd"
	"github.com/BeatGlow/memlcd/emulator"
)

var (
	info = color.New(color.FgCyan).SprintFunc()
	warn = color.New(color.FgYellow).SprintFunc()
)

func main() {
	widthFlag := flag.Int("width", memlcd.DefaultWidth, "Display width")
	heightFlag := flag.Int("height", memlcd.DefaultHeight, "Display height")
	rotateFlag := flag.String("rotate", "", "Display rotation")
	lsbFirstFlag := flag.Bool("lsb-first", false, "Let the SPI controller send bytes LSB first instead of reversing bits")
	spiBusFlag := flag.Int("spi-bus", memlcd.DefaultSPIConfig.Bus, "SPI bus (spidev)")
	spiDeviceFlag := flag.Int("spi-dev", memlcd.DefaultSPIConfig.Device, "SPI device (spidev)")
	spiPortFlag := flag.String("spi-port", "", "SPI port name (periph, default: use first available)")
	csPinFlag := flag.String("cs", "GPIO8", "Chip select GPIO pin")
	imageFlag := flag.String("image", "", "PNG or BMP image to show instead of the test pattern")
	snapshotFlag := flag.String("snapshot", "", "Write the emulated panel memory to this BMP file when done")
	framesFlag := flag.Int("frames", 0, "Stop after this many frames (default: run until interrupted)")
	noColorFlag := flag.Bool("no-color", false, "Disable colored output")
	speed := physic.Frequency(memlcd.DefaultSPIConfig.SpeedHz) * physic.Hertz
	flag.Var(&speed, "speed", "SPI clock speed")
	flag.Parse()

	fd := os.Stdout.Fd()
	color.NoColor = *noColorFlag || (!isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd))

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <spidev|periph|emulator>\n", os.Args[0])
		os.Exit(1)
	}

	var rotation memlcd.Rotation
	switch *rotateFlag {
	case "", "no", "0":
		rotation = memlcd.NoRotation
	case "90", "right", "cw":
		rotation = memlcd.Rotate90
	case "180", "flip":
		rotation = memlcd.Rotate180
	case "270", "left", "ccw":
		rotation = memlcd.Rotate270
	default:
		fatal(fmt.Errorf("invalid rotation %q specified", *rotateFlag))
	}
	fmt.Printf("using rotation: %s\n", info(rotation))

	var (
		config = &memlcd.Config{
			Width:    *widthFlag,
			Height:   *heightFlag,
			Rotation: rotation,
		}
		conn  memlcd.Conn
		panel *emulator.Panel
		err   error
	)
	if *lsbFirstFlag {
		config.BitOrder = memlcd.LSBFirst
	}

	switch busType := flag.Arg(0); busType {
	case "spidev", "periph":
		if _, err = host.Init(); err != nil {
			fatal(err)
		}
		spiConfig := &memlcd.SPIConfig{
			Bus:     *spiBusFlag,
			Device:  *spiDeviceFlag,
			SpeedHz: uint32(speed / physic.Hertz),
			CS:      gpioreg.ByName(*csPinFlag),
		}
		if busType == "spidev" {
			conn, err = memlcd.OpenSPI(spiConfig)
			break
		}
		port, perr := spireg.Open(*spiPortFlag)
		if perr != nil {
			fatal(perr)
		}
		conn, err = memlcd.NewSPI(port, spiConfig)
	case "emulator":
		panel, err = emulator.New(*widthFlag, *heightFlag)
		conn = panel
	default:
		err = fmt.Errorf("unsupported bus type %q", busType)
	}
	if err != nil {
		fatal(err)
	}
	defer conn.Close()
	fmt.Printf("using connection: %s\n", info(conn))

	output, err := memlcd.New(conn, config)
	if err != nil {
		fatal(err)
	}
	defer output.Close()
	fmt.Printf("using driver: %s (%s)\n", info(output), config.BitOrder)

	var logo image.Image
	if *imageFlag != "" {
		if logo, err = loadImage(*imageFlag, output.Bounds()); err != nil {
			fatal(err)
		}
	}

	var (
		offset int
		ticker = time.NewTicker(100 * time.Millisecond)
		r      = output.Bounds()
	)
	defer ticker.Stop()

	fmt.Println("hit control-c to stop...")
	for frame := 0; *framesFlag == 0 || frame < *framesFlag; frame++ {
		output.FillScreen(memlcd.White)
		if logo != nil {
			output.DrawImage(r, logo, image.Point{})
		} else {
			// Box around the edge, both diagonals and a box bouncing along the top.
			output.DrawRect(0, 0, r.Dx(), r.Dy(), memlcd.Black)
			output.DrawLine(0, 0, r.Dx()-1, r.Dy()-1, memlcd.Black)
			output.DrawLine(r.Dx()-1, 0, 0, r.Dy()-1, memlcd.Black)

			span := max(r.Dx()-20, 1)
			x := offset % (2 * span)
			if x >= span {
				x = 2*span - x
			}
			output.FillRect(x+2, 2, 16, 16, memlcd.Black)
		}

		if err = output.Refresh(); err != nil {
			fatal(err)
		}

		offset += 4
		<-ticker.C
	}

	if panel != nil {
		if err = panel.Err(); err != nil {
			fmt.Println(warn("protocol violations:"), err)
		}
		fmt.Printf("panel saw %d clear, %d write and %d hold transactions\n",
			panel.Count(emulator.Clear), panel.Count(emulator.Write), panel.Count(emulator.Hold))
		if *snapshotFlag != "" {
			if err = saveSnapshot(*snapshotFlag, panel); err != nil {
				fatal(err)
			}
			fmt.Printf("saved panel memory to %s\n", info(*snapshotFlag))
		}
	}
}

// loadImage decodes name and scales it to fill bounds.
func loadImage(name string, bounds image.Rectangle) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	fmt.Printf("loaded %s image %s\n", format, src.Bounds().Size())

	dst := image.NewGray(bounds)
	xdraw.ApproxBiLinear.Scale(dst, bounds, src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

func saveSnapshot(name string, panel *emulator.Panel) error {
	img, err := panel.Image()
	if err != nil {
		return err
	}
	gray := image.NewGray(img.Bounds())
	xdraw.Copy(gray, image.Point{}, img, img.Bounds(), xdraw.Src, nil)

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = bmp.Encode(f, gray); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("fatal: ")+err.Error())
	os.Exit(1)
}

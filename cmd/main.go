package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/vharitonsky/iniflags"

	"imgbatch"
)

var (
	src     = flag.String("src", "input_images", "")
	dst     = flag.String("dst", "output", "")
	width   = flag.Int("width", 0, "")
	height  = flag.Int("height", 0, "")
	percent = flag.Float64("percent", 0, "")
	format  = flag.String("format", "", "")
	quality = flag.Int("quality", 75, "")
	exact   = flag.Bool("exact", false, "")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
	fmt.Println(`
  --src
		source directory containing images (default: input_images)
  --dst
		destination directory, created if missing (default: output)
  --width
		resize width, if one of width or height is 0, the image aspect ratio is preserved.
  --height
		resize height, if one of width or height is 0, the image aspect ratio is preserved.
  --percent
		resize percent, takes precedence over width and height.
  --format
		output format (jpg, jpeg, png, gif, tif, tiff and bmp are supported, default: keep original)
  --quality
		set jpeg quality (range 1-100, default: 75)
  --exact
		resize to the exact width x height, ignoring the aspect ratio (default: false)`)
}

func main() {
	self, err := os.Executable()
	if err != nil {
		log.Fatalf("Failed to get self path: %v", err)
	}

	flag.Usage = usage
	iniflags.SetConfigFile(filepath.Join(filepath.Dir(self), "config.ini"))
	iniflags.SetAllowMissingConfigFile(true)
	iniflags.Parse()

	f, err := os.OpenFile(filepath.Join(filepath.Dir(self), "resize.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer f.Close()
	log.SetOutput(io.MultiWriter(f, os.Stdout))

	req := imgbatch.NewRequest(*src, *dst)
	if *width != 0 || *height != 0 {
		req.SetSize(*width, *height)
	}
	if *percent != 0 {
		req.SetPercent(*percent)
	}
	if *exact {
		req.SetKeepAspect(false)
	}
	if *format != "" {
		if err := req.SetFormat(*format, imgbatch.Quality(*quality)); err != nil {
			log.Fatalln("Unknown output format:", *format)
		}
	}

	log.Println("Starting batch image processing...")
	log.Println("Input folder:", *src)
	log.Println("Output folder:", *dst)

	start := time.Now()
	result, err := req.Run()
	if err != nil {
		var missing *imgbatch.MissingInputError
		switch {
		case errors.As(err, &missing):
			log.Println(err)
			log.Println("Please create the folder, add your images to it and run again:", missing.Path)
			os.Exit(1)
		case errors.Is(err, imgbatch.ErrEmptyInput):
			log.Println("Warning:", err)
			return
		default:
			log.Fatal(err)
		}
	}

	log.Println("Processing complete! Elapsed time:", time.Since(start))
	log.Println("Successfully processed:", result.Processed)
	log.Println("Failed:", result.Failed)
}

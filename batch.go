package imgbatch

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyInput reports an input directory that exists but contains no
// entries. It is a non-fatal signal: the batch stops with zero work done.
var ErrEmptyInput = errors.New("input directory is empty")

// MissingInputError reports a nonexistent input directory. Path is absolute
// so the caller can tell the user exactly where to put the images.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("input directory %s not found", e.Path)
}

// Request describes one batch resize run over a directory of images.
type Request struct {
	InputDir  string
	OutputDir string
	Resize    ResizeOption
	Format    *FormatOption

	// Logger receives per-file failure messages. Defaults to log.Default().
	Logger *log.Logger
}

// NewRequest creates a new request with default settings: aspect ratio
// preserved, no resize, output format preserved.
func NewRequest(inputDir, outputDir string) *Request {
	return &Request{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Resize:    ResizeOption{KeepAspect: true},
	}
}

// SetSize sets the target width and height in pixels.
func (req *Request) SetSize(width, height int) *Request {
	req.Resize.Width = width
	req.Resize.Height = height
	return req
}

// SetPercent sets the scale percentage. It takes precedence over SetSize.
func (req *Request) SetPercent(percent float64) *Request {
	req.Resize.Percent = percent
	return req
}

// SetKeepAspect sets whether the aspect ratio is preserved when both width
// and height are given. Disabling it resizes to the exact requested size,
// which may distort the image.
func (req *Request) SetKeepAspect(keep bool) *Request {
	req.Resize.KeepAspect = keep
	return req
}

// SetFormat sets the output format by name (e.g. "jpg", "PNG", "tiff"),
// case insensitively. Without it each output keeps its original format.
func (req *Request) SetFormat(f string, options ...EncodeOption) error {
	format, err := FormatFromExtension(f)
	if err != nil {
		return err
	}
	req.Format = &FormatOption{Format: format, EncodeOption: options}
	return nil
}

// Result reports how a finished batch went. Files skipped by the extension
// filter appear in neither counter.
type Result struct {
	Processed int
	Failed    int
}

// Run processes every supported image file in the input directory, one at a
// time, writing results to the output directory (created if missing). A
// failure on one file is logged and counted but never aborts the run; once
// processing starts the batch always completes.
func (req *Request) Run() (Result, error) {
	if _, err := os.Stat(req.InputDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			abs, err := filepath.Abs(req.InputDir)
			if err != nil {
				abs = req.InputDir
			}
			return Result{}, &MissingInputError{Path: abs}
		}
		return Result{}, err
	}

	entries, err := os.ReadDir(req.InputDir)
	if err != nil {
		return Result{}, err
	}
	if len(entries) == 0 {
		return Result{}, ErrEmptyInput
	}

	if err := os.MkdirAll(req.OutputDir, 0755); err != nil {
		return Result{}, err
	}

	var res Result
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !supported(entry.Name()) {
			continue
		}
		if err := req.process(entry.Name()); err != nil {
			req.logger().Printf("Failed to process %s: %v", entry.Name(), err)
			res.Failed++
			continue
		}
		res.Processed++
	}
	return res, nil
}

// process handles a single file: decode, resize, encode. The decoded pixel
// buffer is scoped to this call and unreachable once it returns.
func (req *Request) process(name string) error {
	img, err := Open(filepath.Join(req.InputDir, name))
	if err != nil {
		return err
	}

	if req.Format != nil && req.Format.Format == JPEG && hasAlpha(img) {
		img = dropAlpha(img)
	}
	img = req.Resize.do(img)

	option := req.Format
	if option == nil {
		format, err := FormatFromExtension(filepath.Ext(name))
		if err != nil {
			return fmt.Errorf("cannot keep original format: %w", err)
		}
		option = &FormatOption{Format: format}
	}
	return Save(filepath.Join(req.OutputDir, req.outputName(name)), img, option)
}

// outputName derives the output filename: the original stem plus the
// requested format's extension, or the original extension lowercased.
func (req *Request) outputName(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if req.Format != nil {
		return stem + "." + req.Format.Format.Ext()
	}
	return stem + strings.ToLower(ext)
}

func (req *Request) logger() *log.Logger {
	if req.Logger != nil {
		return req.Logger
	}
	return log.Default()
}

// Command resize resamples images from the command line, either one at a
// time or as a YAML-described batch.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"gopkg.in/yaml.v3"

	"github.com/trueb2/resize"

	// Decoders beyond the stdlib trio.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// job describes one resize: a source file, a destination file, and the
// target geometry. A zero width or height is computed from the source
// aspect ratio.
type job struct {
	In     string `yaml:"in"`
	Out    string `yaml:"out"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Filter string `yaml:"filter"`
}

// batch is the YAML job-file layout:
//
//	filter: lanczos
//	jobs:
//	  - {in: a.png, out: thumbs/a.png, width: 320}
//	  - {in: b.webp, out: thumbs/b.jpg, height: 240, filter: mitchell}
type batch struct {
	Filter string `yaml:"filter"`
	Jobs   []job  `yaml:"jobs"`
}

func main() {
	var (
		in      = flag.String("in", "", "input image (png, jpeg, gif, webp, tiff, bmp)")
		out     = flag.String("out", "", "output image (png, jpeg, gif)")
		width   = flag.Int("width", 0, "output width (0 = keep aspect)")
		height  = flag.Int("height", 0, "output height (0 = keep aspect)")
		filter  = flag.String("filter", "lanczos", "filter: box, triangle, bicubic, catmullrom, mitchell, lanczos, gaussian")
		jobFile = flag.String("jobs", "", "YAML batch job file (overrides -in/-out)")
		workers = flag.Int("workers", 0, "worker goroutines per resize (0 = one per CPU)")
		quality = flag.Int("quality", 90, "JPEG output quality")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		resize.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *jobFile != "" {
		if err := runBatch(*jobFile, *filter, *workers, *quality); err != nil {
			log.Fatalf("batch failed: %v", err)
		}
		return
	}

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	j := job{In: *in, Out: *out, Width: *width, Height: *height, Filter: *filter}
	if err := runJob(j, *workers, *quality); err != nil {
		log.Fatalf("resize failed: %v", err)
	}
}

// runBatch executes every job in the YAML file with a progress bar.
func runBatch(path, defaultFilter string, workers, quality int) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}

	var b batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if len(b.Jobs) == 0 {
		return fmt.Errorf("%s: no jobs", path)
	}
	if b.Filter == "" {
		b.Filter = defaultFilter
	}

	bar := pb.StartNew(len(b.Jobs))
	defer bar.Finish()

	for _, j := range b.Jobs {
		if j.Filter == "" {
			j.Filter = b.Filter
		}
		if err := runJob(j, workers, quality); err != nil {
			return fmt.Errorf("%s: %w", j.In, err)
		}
		bar.Increment()
	}
	return nil
}

// runJob decodes, resamples, and re-encodes one image.
func runJob(j job, workers, quality int) error {
	f := resize.FilterByName(j.Filter)
	if f == nil {
		return fmt.Errorf("unknown filter %q", j.Filter)
	}

	src, err := decode(j.In)
	if err != nil {
		return err
	}

	w, h, err := targetSize(src.Bounds(), j.Width, j.Height)
	if err != nil {
		return err
	}

	dst, err := resize.ResizeImage(src, w, h, f, resize.WithWorkers(workers))
	if err != nil {
		return err
	}

	return encode(j.Out, dst, quality)
}

// targetSize fills in a zero dimension from the source aspect ratio.
func targetSize(sb image.Rectangle, w, h int) (int, int, error) {
	sw, sh := sb.Dx(), sb.Dy()
	switch {
	case w > 0 && h > 0:
		return w, h, nil
	case w > 0:
		h = (sh*w + sw/2) / sw
		if h < 1 {
			h = 1
		}
		return w, h, nil
	case h > 0:
		w = (sw*h + sh/2) / sh
		if w < 1 {
			w = 1
		}
		return w, h, nil
	default:
		return 0, 0, errors.New("width or height required")
	}
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func encode(path string, img image.Image, quality int) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(f, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: quality})
	case ".gif":
		return gif.Encode(f, img, nil)
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
}

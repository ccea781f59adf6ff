package resize

import (
	"errors"
	"fmt"

	"github.com/trueb2/resize/internal/parallel"
)

// Sentinel errors returned by NewResizer and Resize.
var (
	// ErrInvalidSize indicates a non-positive source or destination dimension.
	ErrInvalidSize = errors.New("resize: dimensions must be positive")

	// ErrSrcLen indicates a source buffer whose length does not match
	// the configured source geometry.
	ErrSrcLen = errors.New("resize: source buffer length does not match geometry")

	// ErrDstLen indicates a destination buffer whose length does not
	// match the configured destination geometry.
	ErrDstLen = errors.New("resize: destination buffer length does not match geometry")
)

// Resizer resamples pixel planes of a fixed geometry with a separable
// two-pass convolution: the horizontal pass folds weighted source
// samples into per-pixel accumulators, the vertical pass folds those
// accumulators together and converts them to the output representation.
//
// A Resizer is created per (format, geometry, filter) combination and
// can be reused for any number of frames; coefficient windows and the
// intermediate accumulator plane are computed once and retained.
//
// A Resizer is NOT safe for concurrent use: Resize mutates the shared
// intermediate plane. Use one Resizer per goroutine, or let a single
// Resizer parallelize internally via WithWorkers.
type Resizer[In, Out, Acc any] struct {
	format PixelFormat[In, Out, Acc]
	filter Filter

	srcW, srcH int
	dstW, dstH int

	// horiz has one window per destination column, vert one per
	// destination row.
	horiz []coeffsRow
	vert  []coeffsRow

	// mid is the intermediate plane produced by the horizontal pass:
	// srcH rows of dstW accumulators.
	mid []Acc

	// pool is nil when the resizer runs on the calling goroutine.
	pool *parallel.Pool
}

// NewResizer creates a resizer from a (srcW x srcH) source plane to a
// (dstW x dstH) destination plane for the given pixel format.
//
// The format presets (RGB8, RGBAPremul8, Gray16, ...) cover the common
// pairings; see PixelFormat for custom ones.
func NewResizer[In, Out, Acc any](format PixelFormat[In, Out, Acc], srcW, srcH, dstW, dstH int, opts ...Option) (*Resizer[In, Out, Acc], error) {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return nil, fmt.Errorf("%w: %dx%d -> %dx%d", ErrInvalidSize, srcW, srcH, dstW, dstH)
	}

	o := defaultResizerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Resizer[In, Out, Acc]{
		format: format,
		filter: o.filter,
		srcW:   srcW,
		srcH:   srcH,
		dstW:   dstW,
		dstH:   dstH,
		mid:    make([]Acc, dstW*srcH),
	}

	if o.cache != nil {
		r.horiz = o.cache.get(srcW, dstW, o.filter)
		r.vert = o.cache.get(srcH, dstH, o.filter)
	} else {
		r.horiz = computeCoeffs(srcW, dstW, o.filter)
		r.vert = computeCoeffs(srcH, dstH, o.filter)
	}

	if o.workers != 1 && o.workers >= 0 {
		r.pool = parallel.NewPool(o.workers)
	}

	Logger().Debug("resizer created",
		"filter", o.filter.Name(),
		"src", fmt.Sprintf("%dx%d", srcW, srcH),
		"dst", fmt.Sprintf("%dx%d", dstW, dstH),
		"workers", r.workers())

	return r, nil
}

// Filter returns the reconstruction filter the resizer was built with.
func (r *Resizer[In, Out, Acc]) Filter() Filter {
	return r.filter
}

// workers reports the effective worker count.
func (r *Resizer[In, Out, Acc]) workers() int {
	if r.pool == nil {
		return 1
	}
	return r.pool.Workers()
}

// Close releases the resizer's worker pool, if any. The resizer remains
// usable afterwards, falling back to the calling goroutine.
// Close is safe to call multiple times.
func (r *Resizer[In, Out, Acc]) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// Resize resamples src into dst. Both slices are row-major planes of
// the geometry the resizer was created with: len(src) must equal
// srcW*srcH and len(dst) must equal dstW*dstH.
func (r *Resizer[In, Out, Acc]) Resize(dst []Out, src []In) error {
	if len(src) != r.srcW*r.srcH {
		return fmt.Errorf("%w: got %d, want %d", ErrSrcLen, len(src), r.srcW*r.srcH)
	}
	if len(dst) != r.dstW*r.dstH {
		return fmt.Errorf("%w: got %d, want %d", ErrDstLen, len(dst), r.dstW*r.dstH)
	}

	if r.srcW == r.dstW && r.srcH == r.dstH {
		r.convert(dst, src)
		return nil
	}

	r.horizPass(src)
	r.vertPass(dst)
	return nil
}

// convert is the identity-geometry fast path: one unit-weight fold and
// a conversion per pixel, skipping the intermediate plane.
func (r *Resizer[In, Out, Acc]) convert(dst []Out, src []In) {
	r.each(r.srcH, func(y0, y1 int) {
		for i := y0 * r.srcW; i < y1*r.srcW; i++ {
			acc := r.format.NewAccumulator()
			r.format.Add(&acc, src[i], 1)
			dst[i] = r.format.Finalize(acc)
		}
	})
}

// horizPass resamples every source row into the intermediate plane.
func (r *Resizer[In, Out, Acc]) horizPass(src []In) {
	r.each(r.srcH, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			srcRow := src[y*r.srcW : (y+1)*r.srcW]
			midRow := r.mid[y*r.dstW : (y+1)*r.dstW]
			for dx := range r.horiz {
				row := &r.horiz[dx]
				acc := r.format.NewAccumulator()
				for i, w := range row.weights {
					r.format.Add(&acc, srcRow[row.start+i], w)
				}
				midRow[dx] = acc
			}
		}
	})
}

// vertPass folds intermediate rows together and finalizes into dst.
func (r *Resizer[In, Out, Acc]) vertPass(dst []Out) {
	r.each(r.dstH, func(y0, y1 int) {
		for dy := y0; dy < y1; dy++ {
			row := &r.vert[dy]
			dstRow := dst[dy*r.dstW : (dy+1)*r.dstW]
			for x := range dstRow {
				acc := r.format.NewAccumulator()
				for i, w := range row.weights {
					r.format.AddAcc(&acc, r.mid[(row.start+i)*r.dstW+x], w)
				}
				dstRow[x] = r.format.Finalize(acc)
			}
		}
	})
}

// each runs fn over [0, n) rows, split across the worker pool when the
// resizer has one.
func (r *Resizer[In, Out, Acc]) each(n int, fn func(y0, y1 int)) {
	if r.pool == nil || !r.pool.IsRunning() || n < 2 {
		fn(0, n)
		return
	}

	ranges := parallel.Ranges(n, r.pool.Workers()*4)
	work := make([]func(), len(ranges))
	for i, rg := range ranges {
		rg := rg
		work[i] = func() { fn(rg[0], rg[1]) }
	}
	r.pool.ExecuteAll(work)
}

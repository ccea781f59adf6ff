package resize

// Option configures a Resizer during creation.
// Use functional options to customize behavior.
//
// Example:
//
//	// Default: Catmull-Rom filter, single-threaded
//	r, err := resize.NewResizer(resize.RGBA8, 1920, 1080, 640, 360)
//
//	// Lanczos filter, one worker per CPU
//	r, err := resize.NewResizer(resize.RGBA8, 1920, 1080, 640, 360,
//		resize.WithFilter(resize.NewLanczosFilter(3)),
//		resize.WithWorkers(0))
type Option func(*resizerOptions)

// resizerOptions holds optional configuration for Resizer creation.
type resizerOptions struct {
	filter  Filter
	workers int
	cache   *coeffsCache
}

// defaultResizerOptions returns the default resizer options.
func defaultResizerOptions() resizerOptions {
	return resizerOptions{
		filter:  NewCatmullRomFilter(),
		workers: 1,
		cache:   defaultCoeffsCache,
	}
}

// WithFilter sets the reconstruction filter. The default is Catmull-Rom,
// a good speed/quality compromise for both up- and downscaling.
func WithFilter(f Filter) Option {
	return func(o *resizerOptions) {
		if f != nil {
			o.filter = f
		}
	}
}

// WithWorkers sets how many goroutines the resizer spreads its passes
// across. The default is 1 (everything on the calling goroutine).
// Pass 0 to use one worker per CPU.
//
// A parallel resizer owns a worker pool; call [Resizer.Close] when done
// with it.
func WithWorkers(n int) Option {
	return func(o *resizerOptions) {
		o.workers = n
	}
}

// WithoutCoeffsCache disables the process-wide coefficient cache for
// this resizer. Coefficient windows are then recomputed at creation
// time and owned exclusively by the resizer.
func WithoutCoeffsCache() Option {
	return func(o *resizerOptions) {
		o.cache = nil
	}
}

// Package resize provides separable image resampling with a
// high-precision pixel-accumulation core.
//
// # Overview
//
// Every output pixel of a resize is a weighted sum of input pixels along
// two axes. resize keeps that summation in float32 accumulators from the
// first fold to the final conversion, so 8- and 16-bit integer pixels
// lose nothing to intermediate truncation and premultiplied alpha
// composes correctly over area-weighted kernels.
//
// # Quick Start
//
//	import "github.com/trueb2/resize"
//
//	// Resample a raw 8-bit RGBA plane from 1920x1080 to 640x360.
//	r, err := resize.NewResizer(resize.RGBAPremul8, 1920, 1080, 640, 360,
//		resize.WithFilter(resize.NewLanczosFilter(3)))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	dst := make([]resize.RGBA[uint8], 640*360)
//	if err := r.Resize(dst, src); err != nil {
//		log.Fatal(err)
//	}
//
// Standard library images go through [ResizeImage] or the
// [Scaler] adapter, which satisfies golang.org/x/image/draw.Scaler.
//
// # Pixel Formats
//
// A [PixelFormat] pairs a pixel layout (plain color, color+alpha,
// premultiplied color+alpha, grayscale) with input and output sample
// representations (uint8, uint16, float32, float64). The presets in
// formats.go cover the symmetric pairings. The premultiplied variants
// weight color folds by each sample's alpha and divide it back out at
// the end, which is the correct way to resample straight-alpha imagery.
//
// # Filters
//
// Box, triangle, the Mitchell-Netravali cubic family (including
// Catmull-Rom), Gaussian, and windowed-sinc Lanczos kernels are built
// in; any symmetric kernel can be supplied through the [Filter]
// interface. Kernel weights are normalized per output pixel, so filters
// need not integrate to one.
//
// # Concurrency
//
// The accumulation core is pure value arithmetic with no shared state.
// A Resizer created with [WithWorkers] splits its passes across a
// worker pool; distinct Resizers are always independent. A single
// Resizer must not be used from multiple goroutines at once.
package resize

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

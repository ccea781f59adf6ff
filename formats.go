package resize

// Format presets for the common (layout x precision) pairings. Each one
// is an instantiated PixelFormat ready to hand to NewResizer.
//
// Mixed-precision pairings (for example 8-bit source into a float
// destination) are not enumerated here; build them directly from the
// generic format structs:
//
//	widen := resize.RGBFormat[uint8, float32, resize.Uint8, resize.Float32]{}
var (
	// Gray8 resamples 8-bit single-channel pixels.
	Gray8 PixelFormat[Gray[uint8], Gray[uint8], Gray[float32]] = GrayFormat[uint8, uint8, Uint8, Uint8]{}

	// Gray16 resamples 16-bit single-channel pixels.
	Gray16 PixelFormat[Gray[uint16], Gray[uint16], Gray[float32]] = GrayFormat[uint16, uint16, Uint16, Uint16]{}

	// GrayF32 resamples float32 single-channel pixels.
	GrayF32 PixelFormat[Gray[float32], Gray[float32], Gray[float32]] = GrayFormat[float32, float32, Float32, Float32]{}

	// RGB8 resamples 8-bit three-channel pixels.
	RGB8 PixelFormat[RGB[uint8], RGB[uint8], RGB[float32]] = RGBFormat[uint8, uint8, Uint8, Uint8]{}

	// RGB16 resamples 16-bit three-channel pixels.
	RGB16 PixelFormat[RGB[uint16], RGB[uint16], RGB[float32]] = RGBFormat[uint16, uint16, Uint16, Uint16]{}

	// RGBF32 resamples float32 three-channel pixels.
	RGBF32 PixelFormat[RGB[float32], RGB[float32], RGB[float32]] = RGBFormat[float32, float32, Float32, Float32]{}

	// RGBA8 resamples 8-bit four-channel pixels with independent alpha.
	RGBA8 PixelFormat[RGBA[uint8], RGBA[uint8], RGBA[float32]] = RGBAFormat[uint8, uint8, Uint8, Uint8]{}

	// RGBA16 resamples 16-bit four-channel pixels with independent alpha.
	RGBA16 PixelFormat[RGBA[uint16], RGBA[uint16], RGBA[float32]] = RGBAFormat[uint16, uint16, Uint16, Uint16]{}

	// RGBAF32 resamples float32 four-channel pixels with independent alpha.
	RGBAF32 PixelFormat[RGBA[float32], RGBA[float32], RGBA[float32]] = RGBAFormat[float32, float32, Float32, Float32]{}

	// RGBAPremul8 resamples 8-bit straight-alpha pixels through
	// premultiplied accumulation.
	RGBAPremul8 PixelFormat[RGBA[uint8], RGBA[uint8], RGBA[float32]] = RGBAPremulFormat[uint8, uint8, Uint8, Uint8]{}

	// RGBAPremul16 resamples 16-bit straight-alpha pixels through
	// premultiplied accumulation.
	RGBAPremul16 PixelFormat[RGBA[uint16], RGBA[uint16], RGBA[float32]] = RGBAPremulFormat[uint16, uint16, Uint16, Uint16]{}

	// RGBAPremulF32 resamples float32 straight-alpha pixels through
	// premultiplied accumulation.
	RGBAPremulF32 PixelFormat[RGBA[float32], RGBA[float32], RGBA[float32]] = RGBAPremulFormat[float32, float32, Float32, Float32]{}
)

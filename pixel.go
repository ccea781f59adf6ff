package resize

// RGB is a plain three-channel color sample.
type RGB[S any] struct {
	R, G, B S
}

// RGBA is a four-channel color sample with straight (non-premultiplied) alpha.
type RGBA[S any] struct {
	R, G, B, A S
}

// Gray is a single-channel luminance sample.
type Gray[S any] struct {
	Y S
}

// PixelFormat describes how samples of one pixel layout are folded into a
// per-output-pixel accumulator during separable resampling, and how the
// finished accumulator converts back into an output sample.
//
// The intended call order for one output pixel is:
//
//	acc := f.NewAccumulator()
//	// first axis: fold weighted input samples
//	f.Add(&acc, px, w)
//	// second axis: fold weighted first-axis accumulators
//	f.AddAcc(&acc2, acc, w)
//	out := f.Finalize(acc2)
//
// Every operation is a total, synchronous computation on value types.
// Accumulators have no identity beyond a single fold sequence: create one,
// fold into it, finalize it, discard it. Nothing stops a caller from
// folding into a finalized accumulator, but the result is meaningless.
//
// Weights may be negative or zero; resampling filters with negative lobes
// rely on that. The contract assumes a well-behaved kernel whose weights
// sum to 1 per output pixel. Pathological weights produce clamped or
// out-of-range results, never a fault.
type PixelFormat[In, Out, Acc any] interface {
	// NewAccumulator returns an accumulator with every channel at zero.
	NewAccumulator() Acc

	// Add folds one weighted input sample into the accumulator
	// (first axis).
	Add(acc *Acc, px In, coeff float32)

	// AddAcc folds one weighted first-axis accumulator into another
	// accumulator (second axis).
	AddAcc(acc *Acc, src Acc, coeff float32)

	// Finalize converts a completed accumulator into an output sample.
	Finalize(acc Acc) Out
}

// RGBFormat accumulates plain three-channel color. Each channel is an
// independent multiply-accumulate.
type RGBFormat[I, O any, IC Converter[I], OC Converter[O]] struct{}

// NewAccumulator returns a zeroed accumulator.
func (RGBFormat[I, O, IC, OC]) NewAccumulator() RGB[float32] {
	return RGB[float32]{}
}

// Add folds one weighted input sample into the accumulator.
func (RGBFormat[I, O, IC, OC]) Add(acc *RGB[float32], px RGB[I], coeff float32) {
	var c IC
	acc.R += c.Widen(px.R) * coeff
	acc.G += c.Widen(px.G) * coeff
	acc.B += c.Widen(px.B) * coeff
}

// AddAcc folds one weighted accumulator into another.
func (RGBFormat[I, O, IC, OC]) AddAcc(acc *RGB[float32], src RGB[float32], coeff float32) {
	acc.R += src.R * coeff
	acc.G += src.G * coeff
	acc.B += src.B * coeff
}

// Finalize converts the accumulator to the output representation.
func (RGBFormat[I, O, IC, OC]) Finalize(acc RGB[float32]) RGB[O] {
	var c OC
	return RGB[O]{
		R: c.Narrow(acc.R),
		G: c.Narrow(acc.G),
		B: c.Narrow(acc.B),
	}
}

// RGBAFormat accumulates color and straight alpha. Color and alpha
// channels accumulate independently; no premultiplication is involved,
// so color bleeds from transparent pixels exactly as stored in the
// source. Use RGBAPremulFormat when that matters.
type RGBAFormat[I, O any, IC Converter[I], OC Converter[O]] struct{}

// NewAccumulator returns a zeroed accumulator.
func (RGBAFormat[I, O, IC, OC]) NewAccumulator() RGBA[float32] {
	return RGBA[float32]{}
}

// Add folds one weighted input sample into the accumulator.
func (RGBAFormat[I, O, IC, OC]) Add(acc *RGBA[float32], px RGBA[I], coeff float32) {
	var c IC
	acc.R += c.Widen(px.R) * coeff
	acc.G += c.Widen(px.G) * coeff
	acc.B += c.Widen(px.B) * coeff
	acc.A += c.Widen(px.A) * coeff
}

// AddAcc folds one weighted accumulator into another.
func (RGBAFormat[I, O, IC, OC]) AddAcc(acc *RGBA[float32], src RGBA[float32], coeff float32) {
	acc.R += src.R * coeff
	acc.G += src.G * coeff
	acc.B += src.B * coeff
	acc.A += src.A * coeff
}

// Finalize converts the accumulator to the output representation.
func (RGBAFormat[I, O, IC, OC]) Finalize(acc RGBA[float32]) RGBA[O] {
	var c OC
	return RGBA[O]{
		R: c.Narrow(acc.R),
		G: c.Narrow(acc.G),
		B: c.Narrow(acc.B),
		A: c.Narrow(acc.A),
	}
}

// RGBAPremulFormat accumulates straight-alpha input by premultiplying on
// the fly: every color channel is weighted by coeff scaled with the
// sample's own alpha, and the alpha channel of the accumulator collects
// that same effective weight. The accumulated alpha therefore doubles as
// the coverage of the output pixel, and Finalize divides it back out.
// This keeps fully or partially transparent source pixels from bleeding
// their (invisible) color into the result.
type RGBAPremulFormat[I, O any, IC Converter[I], OC Converter[O]] struct{}

// NewAccumulator returns a zeroed accumulator.
func (RGBAPremulFormat[I, O, IC, OC]) NewAccumulator() RGBA[float32] {
	return RGBA[float32]{}
}

// Add folds one weighted input sample into the accumulator, scaling the
// color weight by the sample's alpha.
func (RGBAPremulFormat[I, O, IC, OC]) Add(acc *RGBA[float32], px RGBA[I], coeff float32) {
	var c IC
	aCoeff := c.Widen(px.A) * coeff
	acc.R += c.Widen(px.R) * aCoeff
	acc.G += c.Widen(px.G) * aCoeff
	acc.B += c.Widen(px.B) * aCoeff
	acc.A += aCoeff
}

// AddAcc folds one weighted accumulator into another. The alpha channel
// already carries the effective weight, so this is the same plain
// multiply-accumulate as every other layout.
func (RGBAPremulFormat[I, O, IC, OC]) AddAcc(acc *RGBA[float32], src RGBA[float32], coeff float32) {
	acc.R += src.R * coeff
	acc.G += src.G * coeff
	acc.B += src.B * coeff
	acc.A += src.A * coeff
}

// Finalize un-premultiplies and converts to the output representation.
// Zero or negative accumulated alpha means zero coverage; the output is
// the all-zero sample rather than a division by zero.
func (RGBAPremulFormat[I, O, IC, OC]) Finalize(acc RGBA[float32]) RGBA[O] {
	var c OC
	if acc.A > 0 {
		inv := 1 / acc.A
		return RGBA[O]{
			R: c.Narrow(acc.R * inv),
			G: c.Narrow(acc.G * inv),
			B: c.Narrow(acc.B * inv),
			A: c.Narrow(acc.A),
		}
	}
	zero := c.Narrow(0)
	return RGBA[O]{R: zero, G: zero, B: zero, A: zero}
}

// GrayFormat accumulates single-channel luminance.
type GrayFormat[I, O any, IC Converter[I], OC Converter[O]] struct{}

// NewAccumulator returns a zeroed accumulator.
func (GrayFormat[I, O, IC, OC]) NewAccumulator() Gray[float32] {
	return Gray[float32]{}
}

// Add folds one weighted input sample into the accumulator.
func (GrayFormat[I, O, IC, OC]) Add(acc *Gray[float32], px Gray[I], coeff float32) {
	var c IC
	acc.Y += c.Widen(px.Y) * coeff
}

// AddAcc folds one weighted accumulator into another.
func (GrayFormat[I, O, IC, OC]) AddAcc(acc *Gray[float32], src Gray[float32], coeff float32) {
	acc.Y += src.Y * coeff
}

// Finalize converts the accumulator to the output representation.
func (GrayFormat[I, O, IC, OC]) Finalize(acc Gray[float32]) Gray[O] {
	var c OC
	return Gray[O]{Y: c.Narrow(acc.Y)}
}

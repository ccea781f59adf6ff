package resize

// Accumulation happens in float32. Input samples are widened to float32
// before weighting, and the finished sum is narrowed back to the output
// representation at the very end of the second pass.

// Converter widens one channel sample into the internal float precision
// and narrows an accumulated value back into the sample representation.
//
// Exactly one Converter exists per supported representation. All of them
// are zero-size, so pixel formats carry them as type parameters and the
// compiler resolves every conversion statically.
type Converter[S any] interface {
	// Widen converts a sample to the internal precision. The conversion
	// is exact for every supported representation.
	Widen(S) float32

	// Narrow converts an accumulated value back to the sample
	// representation. Integer representations round half-up and clamp
	// to their legal range; float representations cast directly.
	Narrow(float32) S
}

// Uint8 converts 8-bit unsigned samples.
type Uint8 struct{}

// Widen converts an 8-bit sample to the internal precision.
func (Uint8) Widen(s uint8) float32 { return float32(s) }

// Narrow rounds half-up and clamps to [0, 255].
func (Uint8) Narrow(v float32) uint8 {
	v += 0.5
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Uint16 converts 16-bit unsigned samples.
type Uint16 struct{}

// Widen converts a 16-bit sample to the internal precision.
func (Uint16) Widen(s uint16) float32 { return float32(s) }

// Narrow rounds half-up and clamps to [0, 65535].
func (Uint16) Narrow(v float32) uint16 {
	v += 0.5
	if v <= 0 {
		return 0
	}
	if v >= 65535 {
		return 65535
	}
	return uint16(v)
}

// Float32 passes single-precision samples through unchanged.
type Float32 struct{}

// Widen returns the sample as is.
func (Float32) Widen(s float32) float32 { return s }

// Narrow returns the accumulated value as is, with no rounding bias.
func (Float32) Narrow(v float32) float32 { return v }

// Float64 converts double-precision samples with a direct cast.
type Float64 struct{}

// Widen converts a double-precision sample to the internal precision.
func (Float64) Widen(s float64) float32 { return float32(s) }

// Narrow converts the accumulated value to double precision.
func (Float64) Narrow(v float32) float64 { return float64(v) }

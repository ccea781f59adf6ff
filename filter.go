package resize

import (
	"fmt"
	"math"
)

// Filter is a symmetric reconstruction kernel. It is evaluated at the
// distance between a destination sample's center (mapped into source
// coordinates) and each source sample inside the kernel window.
type Filter interface {
	// Support is the half-width of the kernel. At(x) is assumed to be
	// zero for x >= Support.
	Support() float64

	// Name identifies the filter; used for coefficient caching and in
	// the CLI.
	Name() string

	// At evaluates the kernel at distance x >= 0.
	At(x float64) float64
}

type box struct{}

func (box) Support() float64 { return 0.5 }
func (box) Name() string     { return "box" }

func (box) At(x float64) float64 {
	if x < 0.5 {
		return 1
	}
	return 0
}

// NewBoxFilter returns a box (nearest-neighbor when magnifying,
// area-average when minifying) filter.
func NewBoxFilter() Filter { return box{} }

type triangle struct{}

func (triangle) Support() float64 { return 1 }
func (triangle) Name() string     { return "triangle" }

func (triangle) At(x float64) float64 {
	if x < 1 {
		return 1 - x
	}
	return 0
}

// NewTriangleFilter returns a triangle (bilinear) filter.
func NewTriangleFilter() Filter { return triangle{} }

// bicubic is the Mitchell-Netravali two-parameter cubic family,
// pre-expanded into polynomial coefficients the way rez does it.
type bicubic struct {
	name                string
	a, b, c, d, e, f, g float64
}

func (*bicubic) Support() float64 { return 2 }
func (k *bicubic) Name() string   { return k.name }

func (k *bicubic) At(x float64) float64 {
	if x < 1 {
		return k.a + x*x*(k.b+x*k.c)
	}
	if x < 2 {
		return k.d + x*(k.e+x*(k.f+x*k.g))
	}
	return 0
}

// NewBicubicFilter returns a cubic filter with the given B and C
// parameters. Mitchell-Netravali is B = C = 1/3; Catmull-Rom is
// B = 0, C = 0.5.
func NewBicubicFilter(b, c float64) Filter {
	return &bicubic{
		// The parameters distinguish cubic variants in the coefficient
		// cache, which keys on Name.
		name: fmt.Sprintf("bicubic(%g,%g)", b, c),
		a:    1 - b/3,
		b:    -3 + 2*b + c,
		c:    2 - 3*b/2 - c,
		d:    4*b/3 + 4*c,
		e:    -2*b - 8*c,
		f:    b + 5*c,
		g:    -b/6 - c,
	}
}

// NewCatmullRomFilter returns the Catmull-Rom cubic filter.
func NewCatmullRomFilter() Filter {
	f := NewBicubicFilter(0, 0.5).(*bicubic)
	f.name = "catmullrom"
	return f
}

// NewMitchellFilter returns the Mitchell-Netravali cubic filter.
func NewMitchellFilter() Filter {
	f := NewBicubicFilter(1.0/3, 1.0/3).(*bicubic)
	f.name = "mitchell"
	return f
}

type lanczos struct {
	taps float64
}

func (f lanczos) Support() float64 { return f.taps }
func (lanczos) Name() string       { return "lanczos" }

func (f lanczos) At(x float64) float64 {
	if x >= f.taps {
		return 0
	}
	if x == 0 {
		return 1
	}
	b := x * math.Pi
	c := b / f.taps
	return math.Sin(b) * math.Sin(c) / (b * c)
}

// NewLanczosFilter returns a windowed-sinc filter with the given number
// of taps. Three taps is the usual high-quality choice.
func NewLanczosFilter(taps int) Filter { return lanczos{taps: float64(taps)} }

type gaussian struct {
	sigma float64
}

// Support covers three standard deviations, 99.7% of the distribution.
func (f gaussian) Support() float64 { return f.sigma * 3 }
func (gaussian) Name() string       { return "gaussian" }

func (f gaussian) At(x float64) float64 {
	return math.Exp(-(x * x) / (2 * f.sigma * f.sigma))
}

// NewGaussianFilter returns a Gaussian filter with the given standard
// deviation. Normalization happens during coefficient generation, so the
// kernel omits the 1/(sigma*sqrt(2*pi)) constant.
func NewGaussianFilter(sigma float64) Filter {
	if sigma <= 0 {
		sigma = 0.5
	}
	return gaussian{sigma: sigma}
}

// FilterByName returns the named filter with its default parameters, or
// nil if the name is unknown. Recognized names: box, triangle, bicubic,
// catmullrom, mitchell, lanczos, gaussian.
func FilterByName(name string) Filter {
	switch name {
	case "box":
		return NewBoxFilter()
	case "triangle":
		return NewTriangleFilter()
	case "bicubic":
		return NewBicubicFilter(0, 0.5)
	case "catmullrom":
		return NewCatmullRomFilter()
	case "mitchell":
		return NewMitchellFilter()
	case "lanczos":
		return NewLanczosFilter(3)
	case "gaussian":
		return NewGaussianFilter(1)
	default:
		return nil
	}
}

package resize

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/draw"
)

// Scaler must satisfy the x/image scaling contract.
var _ draw.Scaler = &Scaler{}

// TestResizeImage_SolidColor verifies a solid NRGBA image stays solid
// at any target geometry.
func TestResizeImage_SolidColor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	fill := color.NRGBA{R: 40, G: 90, B: 220, A: 255}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetNRGBA(x, y, fill)
		}
	}

	out, err := ResizeImage(src, 3, 5, NewLanczosFilter(3))
	if err != nil {
		t.Fatal(err)
	}

	dst, ok := out.(*image.NRGBA)
	if !ok {
		t.Fatalf("output type = %T, want *image.NRGBA", out)
	}
	if got := dst.Bounds(); got.Dx() != 3 || got.Dy() != 5 {
		t.Fatalf("bounds = %v, want 3x5", got)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 3; x++ {
			if got := dst.NRGBAAt(x, y); got != fill {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v", x, y, got, fill)
			}
		}
	}
}

// TestResizeImage_GrayStaysGray verifies grayscale sources resample on
// the single-channel path.
func TestResizeImage_GrayStaysGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 200
	}

	out, err := ResizeImage(src, 2, 2, nil)
	if err != nil {
		t.Fatal(err)
	}

	dst, ok := out.(*image.Gray)
	if !ok {
		t.Fatalf("output type = %T, want *image.Gray", out)
	}
	for i, v := range dst.Pix {
		if v != 200 {
			t.Fatalf("pixel %d = %d, want 200", i, v)
		}
	}
}

// TestResizeImage_Gray16KeepsDepth verifies 16-bit grayscale sources
// resample without dropping to 8 bits.
func TestResizeImage_Gray16KeepsDepth(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetGray16(x, y, color.Gray16{Y: 0x8081})
		}
	}

	out, err := ResizeImage(src, 2, 2, NewBoxFilter())
	if err != nil {
		t.Fatal(err)
	}

	dst, ok := out.(*image.Gray16)
	if !ok {
		t.Fatalf("output type = %T, want *image.Gray16", out)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := dst.Gray16At(x, y); got.Y != 0x8081 {
				t.Fatalf("pixel (%d,%d) = %#x, want 0x8081", x, y, got.Y)
			}
		}
	}
}

// TestResizeImage_InvalidTarget verifies geometry validation surfaces.
func TestResizeImage_InvalidTarget(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if _, err := ResizeImage(src, 0, 3, nil); err == nil {
		t.Error("expected error for zero width")
	}
}

// TestScaler_Src verifies Scale with draw.Src overwrites the target
// rectangle and nothing else.
func TestScaler_Src(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for i := range dst.Pix {
		dst.Pix[i] = 7
	}

	s := &Scaler{Filter: NewTriangleFilter()}
	dr := image.Rect(2, 2, 6, 6)
	s.Scale(dst, dr, src, src.Bounds(), draw.Src, nil)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			got := dst.NRGBAAt(x, y)
			inside := image.Pt(x, y).In(dr)
			if inside && got != (color.NRGBA{R: 255, A: 255}) {
				t.Fatalf("pixel (%d,%d) = %+v, want solid red", x, y, got)
			}
			if !inside && got != (color.NRGBA{R: 7, G: 7, B: 7, A: 7}) {
				t.Fatalf("pixel (%d,%d) = %+v, want untouched", x, y, got)
			}
		}
	}
}

// TestScaler_OverOpaque verifies opaque scaled pixels replace the
// background under draw.Over.
func TestScaler_OverOpaque(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{G: 255, A: 255})
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			dst.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}

	s := &Scaler{}
	s.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	want := color.NRGBA{G: 255, A: 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := dst.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

// TestScaler_OverTransparentLeavesBackground verifies a fully
// transparent source leaves the destination visually unchanged.
func TestScaler_OverTransparentLeavesBackground(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4)) // all zero: transparent

	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	bg := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			dst.SetRGBA(x, y, bg)
		}
	}

	s := &Scaler{}
	s.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			r, g, b, a := dst.At(x, y).RGBA()
			if uint8(r>>8) != bg.R || uint8(g>>8) != bg.G || uint8(b>>8) != bg.B || uint8(a>>8) != bg.A {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d,%d), want background", x, y, r>>8, g>>8, b>>8, a>>8)
			}
		}
	}
}

// TestScaler_RGBASource verifies premultiplied stdlib sources convert
// through the straight-alpha plane without distortion for opaque data.
func TestScaler_RGBASource(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 120, G: 130, B: 140, A: 255})
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	s := &Scaler{Workers: 2}
	s.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	want := color.NRGBA{R: 120, G: 130, B: 140, A: 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := dst.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

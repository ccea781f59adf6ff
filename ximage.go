package resize

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Scaler adapts the resampling pipeline to the golang.org/x/image/draw
// Scaler interface, so resize can drop into code written against
// draw.ApproxBiLinear and friends.
//
// The zero value scales with the default Catmull-Rom filter on the
// calling goroutine. Unlike the Resizer it wraps, a Scaler is safe for
// concurrent use; each Scale call builds its own resizer.
type Scaler struct {
	// Filter is the reconstruction filter. Nil means Catmull-Rom.
	Filter Filter

	// Workers is the per-call worker count as in WithWorkers, except
	// that 0 here means single-threaded.
	Workers int
}

// Scale resamples the sr region of src into the dr region of dst.
// Alpha is handled through premultiplied accumulation, so transparent
// source pixels never bleed color. Both draw.Src and draw.Over are
// supported. Masks in opts are not applied.
func (s *Scaler) Scale(dst draw.Image, dr image.Rectangle, src image.Image, sr image.Rectangle, op draw.Op, opts *draw.Options) {
	sw, sh := sr.Dx(), sr.Dy()
	dw, dh := dr.Dx(), dr.Dy()
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return
	}

	f := s.Filter
	if f == nil {
		f = NewCatmullRomFilter()
	}

	ropts := []Option{WithFilter(f)}
	if s.Workers != 0 {
		ropts = append(ropts, WithWorkers(s.Workers))
	}
	r, err := NewResizer(RGBAPremul8, sw, sh, dw, dh, ropts...)
	if err != nil {
		return
	}
	defer r.Close()

	out := make([]RGBA[uint8], dw*dh)
	if err := r.Resize(out, nrgbaPlane(src, sr)); err != nil {
		return
	}

	clip := dr.Intersect(dst.Bounds())
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			px := out[(y-dr.Min.Y)*dw+(x-dr.Min.X)]
			c := color.NRGBA{R: px.R, G: px.G, B: px.B, A: px.A}
			if op == draw.Over && c.A < 0xff {
				dst.Set(x, y, overNRGBA(c, dst.At(x, y)))
			} else {
				dst.Set(x, y, c)
			}
		}
	}
}

// overNRGBA composites src over bg with standard source-over math.
func overNRGBA(src color.NRGBA, bg color.Color) color.Color {
	br, bgc, bb, ba := bg.RGBA() // 16-bit premultiplied
	sa := uint64(src.A) * 0x101
	// dst' = src*sa + dst*(1-sa), all premultiplied 16-bit.
	inv := 0xffff - sa
	r := (uint64(src.R)*0x101*sa + uint64(br)*inv) / 0xffff
	g := (uint64(src.G)*0x101*sa + uint64(bgc)*inv) / 0xffff
	b := (uint64(src.B)*0x101*sa + uint64(bb)*inv) / 0xffff
	a := (sa*0xffff + uint64(ba)*inv) / 0xffff
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
}

// nrgbaPlane extracts the sr region of src as a row-major plane of
// straight-alpha 8-bit samples.
func nrgbaPlane(src image.Image, sr image.Rectangle) []RGBA[uint8] {
	w, h := sr.Dx(), sr.Dy()
	out := make([]RGBA[uint8], w*h)

	if nrgba, ok := src.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			row := nrgba.Pix[nrgba.PixOffset(sr.Min.X, sr.Min.Y+y):]
			for x := 0; x < w; x++ {
				out[y*w+x] = RGBA[uint8]{
					R: row[x*4+0],
					G: row[x*4+1],
					B: row[x*4+2],
					A: row[x*4+3],
				}
			}
		}
		return out
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(src.At(sr.Min.X+x, sr.Min.Y+y)).(color.NRGBA)
			out[y*w+x] = RGBA[uint8]{R: c.R, G: c.G, B: c.B, A: c.A}
		}
	}
	return out
}

// grayPlane extracts the sr region of src as a row-major plane of 8-bit
// luminance samples.
func grayPlane(src *image.Gray, sr image.Rectangle) []Gray[uint8] {
	w, h := sr.Dx(), sr.Dy()
	out := make([]Gray[uint8], w*h)
	for y := 0; y < h; y++ {
		row := src.Pix[src.PixOffset(sr.Min.X, sr.Min.Y+y):]
		for x := 0; x < w; x++ {
			out[y*w+x] = Gray[uint8]{Y: row[x]}
		}
	}
	return out
}

// gray16Plane extracts the sr region of src as a row-major plane of
// 16-bit luminance samples.
func gray16Plane(src *image.Gray16, sr image.Rectangle) []Gray[uint16] {
	w, h := sr.Dx(), sr.Dy()
	out := make([]Gray[uint16], w*h)
	for y := 0; y < h; y++ {
		row := src.Pix[src.PixOffset(sr.Min.X, sr.Min.Y+y):]
		for x := 0; x < w; x++ {
			out[y*w+x] = Gray[uint16]{Y: uint16(row[x*2])<<8 | uint16(row[x*2+1])}
		}
	}
	return out
}

// ResizeImage resamples src to width x height. Nil filter means
// Catmull-Rom. Grayscale sources stay grayscale at their bit depth;
// everything else comes back as *image.NRGBA resampled through
// premultiplied accumulation.
func ResizeImage(src image.Image, width, height int, f Filter, opts ...Option) (image.Image, error) {
	if f == nil {
		f = NewCatmullRomFilter()
	}
	opts = append([]Option{WithFilter(f)}, opts...)

	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()

	if gray, ok := src.(*image.Gray); ok {
		r, err := NewResizer(Gray8, sw, sh, width, height, opts...)
		if err != nil {
			return nil, err
		}
		defer r.Close()

		out := make([]Gray[uint8], width*height)
		if err := r.Resize(out, grayPlane(gray, sb)); err != nil {
			return nil, err
		}

		dst := image.NewGray(image.Rect(0, 0, width, height))
		for i, px := range out {
			dst.Pix[i] = px.Y
		}
		return dst, nil
	}

	if gray16, ok := src.(*image.Gray16); ok {
		r, err := NewResizer(Gray16, sw, sh, width, height, opts...)
		if err != nil {
			return nil, err
		}
		defer r.Close()

		out := make([]Gray[uint16], width*height)
		if err := r.Resize(out, gray16Plane(gray16, sb)); err != nil {
			return nil, err
		}

		dst := image.NewGray16(image.Rect(0, 0, width, height))
		for i, px := range out {
			dst.Pix[i*2+0] = uint8(px.Y >> 8)
			dst.Pix[i*2+1] = uint8(px.Y)
		}
		return dst, nil
	}

	r, err := NewResizer(RGBAPremul8, sw, sh, width, height, opts...)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	out := make([]RGBA[uint8], width*height)
	if err := r.Resize(out, nrgbaPlane(src, sb)); err != nil {
		return nil, err
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, px := range out {
		dst.Pix[i*4+0] = px.R
		dst.Pix[i*4+1] = px.G
		dst.Pix[i*4+2] = px.B
		dst.Pix[i*4+3] = px.A
	}
	return dst, nil
}

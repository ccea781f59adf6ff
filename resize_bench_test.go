package resize

import "testing"

func benchResize[In, Out, Acc any](b *testing.B, f PixelFormat[In, Out, Acc], src []In, sw, sh, dw, dh int, opts ...Option) {
	b.Helper()

	r, err := NewResizer(f, sw, sh, dw, dh, opts...)
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()
	dst := make([]Out, dw*dh)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.Resize(dst, src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkResize_RGB8_Down2x(b *testing.B) {
	benchResize(b, RGB8, gradientRGB8(1280, 720), 1280, 720, 640, 360,
		WithFilter(NewCatmullRomFilter()))
}

func BenchmarkResize_RGB8_Down2x_Parallel(b *testing.B) {
	benchResize(b, RGB8, gradientRGB8(1280, 720), 1280, 720, 640, 360,
		WithFilter(NewCatmullRomFilter()), WithWorkers(0))
}

func BenchmarkResize_RGB8_Up2x(b *testing.B) {
	benchResize(b, RGB8, gradientRGB8(640, 360), 640, 360, 1280, 720,
		WithFilter(NewCatmullRomFilter()))
}

func BenchmarkResize_RGBAPremul8_Down2x(b *testing.B) {
	src := make([]RGBA[uint8], 1280*720)
	for i := range src {
		src[i] = RGBA[uint8]{R: uint8(i), G: uint8(i >> 8), B: 9, A: uint8(i * 31)}
	}
	benchResize(b, RGBAPremul8, src, 1280, 720, 640, 360,
		WithFilter(NewCatmullRomFilter()))
}

func BenchmarkResize_Gray8_Lanczos3(b *testing.B) {
	src := make([]Gray[uint8], 1280*720)
	for i := range src {
		src[i] = Gray[uint8]{Y: uint8(i * 7)}
	}
	benchResize(b, Gray8, src, 1280, 720, 640, 360,
		WithFilter(NewLanczosFilter(3)))
}

func BenchmarkComputeCoeffs_Lanczos3(b *testing.B) {
	f := NewLanczosFilter(3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		computeCoeffs(1920, 641, f)
	}
}

package barcode

// rawLuminanceSource is a plain byte-buffer LuminanceSource, used to hold the
// result of a rotation or downscale so the retry loop in ReadBarcodes can
// operate on any LuminanceSource implementation, not just ImageLuminanceSource.
type rawLuminanceSource struct {
	luminances []byte
	width      int
	height     int
}

func (s *rawLuminanceSource) Row(y int, row []byte) []byte {
	if y < 0 || y >= s.height {
		return nil
	}
	if row == nil || len(row) < s.width {
		row = make([]byte, s.width)
	}
	offset := y * s.width
	copy(row, s.luminances[offset:offset+s.width])
	return row
}

func (s *rawLuminanceSource) Matrix() []byte {
	out := make([]byte, len(s.luminances))
	copy(out, s.luminances)
	return out
}

func (s *rawLuminanceSource) Width() int  { return s.width }
func (s *rawLuminanceSource) Height() int { return s.height }

// rotateLuminance90CW returns src rotated 90 degrees clockwise. Composed with
// itself it produces the 180 and 270 degree rotations try_rotate explores.
func rotateLuminance90CW(src LuminanceSource) LuminanceSource {
	w, h := src.Width(), src.Height()
	lum := src.Matrix()
	out := make([]byte, w*h)
	newWidth, newHeight := h, w
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// (x, y) in src -> (h-1-y, x) in the rotated image
			out[x*newWidth+(h-1-y)] = lum[y*w+x]
		}
	}
	return &rawLuminanceSource{luminances: out, width: newWidth, height: newHeight}
}

// downscaleLuminance returns src shrunk by an integer factor, averaging each
// factor x factor block of source pixels into one destination pixel. factor
// <= 1 returns src unchanged.
func downscaleLuminance(src LuminanceSource, factor int) LuminanceSource {
	if factor <= 1 {
		return src
	}
	w, h := src.Width(), src.Height()
	newWidth := w / factor
	newHeight := h / factor
	if newWidth < 1 || newHeight < 1 {
		return src
	}
	lum := src.Matrix()
	out := make([]byte, newWidth*newHeight)
	for ny := 0; ny < newHeight; ny++ {
		for nx := 0; nx < newWidth; nx++ {
			sum := 0
			count := 0
			for dy := 0; dy < factor; dy++ {
				sy := ny*factor + dy
				for dx := 0; dx < factor; dx++ {
					sx := nx*factor + dx
					sum += int(lum[sy*w+sx])
					count++
				}
			}
			out[ny*newWidth+nx] = byte(sum / count)
		}
	}
	return &rawLuminanceSource{luminances: out, width: newWidth, height: newHeight}
}

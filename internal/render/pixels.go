package render

import "math"

// fillRadialAlpha writes a size×size premultiplied white sprite whose alpha
// falls off linearly from 1 at the centre to 0 at the inscribed circle. The
// ebiten surface tints and scales it to draw wave gradients.
func fillRadialAlpha(buf []byte, size int) {
	if size <= 0 || len(buf) < 4*size*size {
		return
	}
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			base := (y*size + x) * 4
			dx := (float64(x) + 0.5 - half) / half
			dy := (float64(y) + 0.5 - half) / half
			a := 1 - math.Sqrt(dx*dx+dy*dy)
			if a <= 0 {
				buf[base+0] = 0
				buf[base+1] = 0
				buf[base+2] = 0
				buf[base+3] = 0
				continue
			}
			v := uint8(a*255 + 0.5)
			buf[base+0] = v
			buf[base+1] = v
			buf[base+2] = v
			buf[base+3] = v
		}
	}
}

package texture

import "golang.org/x/image/math/f32"

// NextPowerOfTwo returns the smallest power of two >= n, and 0 for n <= 0.
func NextPowerOfTwo(n int) int {
	if n <= 0 {
		return 0
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// RescaleNPOT maps normalized texture coordinates of a width x height image
// onto its npotWidth x npotHeight storage, in place. It does nothing when
// width or height is 0.
func RescaleNPOT(coords []f32.Vec2, width, height, npotWidth, npotHeight int) {
	if width == 0 || height == 0 || npotWidth == 0 || npotHeight == 0 {
		return
	}
	sx := float32(width) / float32(npotWidth)
	sy := float32(height) / float32(npotHeight)
	for i := range coords {
		coords[i][0] *= sx
		coords[i][1] *= sy
	}
}

// RescaleRect turns texel-space rectangle texture coordinates into
// normalized ones, in place. It does nothing when width or height is 0.
func RescaleRect(coords []f32.Vec2, width, height int) {
	if width == 0 || height == 0 {
		return
	}
	for i := range coords {
		coords[i][0] /= float32(width)
		coords[i][1] /= float32(height)
	}
}

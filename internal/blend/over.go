// Package blend implements the pixel arithmetic of the compositor.
//
// All functions operate on straight (non-premultiplied) RGBA8 pixels and
// truncate towards zero when converting back to bytes. Arithmetic is done in
// float32 with explicit conversions after every product so that the result
// is the same on platforms that would otherwise fuse multiply-adds.
package blend

import "github.com/gogpu/studio"

// maxChannel is the value of a fully saturated 8-bit channel.
const maxChannel = 255

// Over composites src over the 4-byte destination pixel dst in place.
//
// The formula, in normalized [0, 1] space:
//
//	Sa = src.A, Da = dst.A
//	Co = Cs*Sa + Cd*Da*(1-Sa)   (per color channel)
//	Ao = Sa + Da*(1-Sa)
//
// Each result is scaled by 255 and truncated.
func Over(dst []uint8, src studio.Color) {
	_ = dst[3] // bounds check hint

	sa := float32(src.A) / maxChannel
	da := float32(dst[3]) / maxChannel
	invSa := float32(1 - sa)

	dst[0] = channel(src.R, dst[0], sa, da, invSa)
	dst[1] = channel(src.G, dst[1], sa, da, invSa)
	dst[2] = channel(src.B, dst[2], sa, da, invSa)

	a := float32(sa + float32(da*invSa))
	dst[3] = uint8(float32(a * maxChannel))
}

// channel blends one color channel: s*sa + d*da*(1-sa), evaluated left to right.
func channel(s, d uint8, sa, da, invSa float32) uint8 {
	sf := float32(s) / maxChannel
	df := float32(d) / maxChannel
	v := float32(float32(sf*sa) + float32(float32(df*da)*invSa))
	return uint8(float32(v * maxChannel))
}

// OverSpan composites src over every pixel of the RGBA8 row dst.
// len(dst) must be a multiple of 4.
func OverSpan(dst []uint8, src studio.Color) {
	for i := 0; i+3 < len(dst); i += 4 {
		Over(dst[i:i+4], src)
	}
}

// ScaleOpacity multiplies all four channels of c by opacity and truncates.
// opacity is expected to be in [0, 1]; the product is taken in float32 like
// Over.
func ScaleOpacity(c studio.Color, opacity float64) studio.Color {
	if opacity >= 1 {
		return c
	}
	o := float32(opacity)
	return studio.Color{
		R: uint8(float32(float32(c.R) * o)),
		G: uint8(float32(float32(c.G) * o)),
		B: uint8(float32(float32(c.B) * o)),
		A: uint8(float32(float32(c.A) * o)),
	}
}

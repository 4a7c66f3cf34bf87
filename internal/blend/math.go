package blend

// div255 divides x by 255 with rounding, exact for x <= 255*255*2.
func div255(x uint32) uint32 {
	x += 128
	return (x + (x >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255 with rounding.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

func clamp255(x uint32) byte {
	if x > 255 {
		return 255
	}
	return byte(x)
}

// unpremul recovers a straight channel from a premultiplied one.
func unpremul(c, a byte) byte {
	if a == 0 {
		return 0
	}
	return clamp255((uint32(c)*255 + uint32(a)/2) / uint32(a))
}

// lerpByte returns a + (b-a)*t/255.
func lerpByte(a, b, t byte) byte {
	if b >= a {
		return a + mulDiv255(b-a, t)
	}
	return a - mulDiv255(a-b, t)
}

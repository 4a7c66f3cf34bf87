package blend

// blendNormal composites source over destination.
// Formula: S + D * (1 - Sa)
func blendNormal(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// blendBehind composites destination over source.
// Formula: S * (1 - Da) + D
func blendBehind(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), dr),
		addClamp(mulDiv255(sg, invDa), dg),
		addClamp(mulDiv255(sb, invDa), db),
		addClamp(mulDiv255(sa, invDa), da)
}

// blendErase keeps destination where source is transparent.
// Formula: D * (1 - Sa)
func blendErase(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

// blendAddition adds source and destination, clamped.
// Formula: min(S + D, 255)
func blendAddition(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}

// Replace moves destination towards the opaque source by coverage t.
// Source and destination are premultiplied; t is 0-255.
func Replace(sr, sg, sb, sa, dr, dg, db, da, t byte) (byte, byte, byte, byte) {
	return lerpByte(dr, sr, t), lerpByte(dg, sg, t), lerpByte(db, sb, t), lerpByte(da, sa, t)
}

package hal

// expandGray widens a one-byte-per-pixel image into opaque grey RGBA so hosts
// without single-channel textures can carry it. The value ends up in every
// colour channel; shaders read it back from red.
func expandGray(dst, src []byte) int {
	n := 0
	for i := 0; i < len(src) && i*4+3 < len(dst); i++ {
		v := src[i]
		j := i * 4
		dst[j+0] = v
		dst[j+1] = v
		dst[j+2] = v
		dst[j+3] = 0xFF
		n++
	}
	return n
}

package common

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AABBIntersects tests two axis-aligned boxes given by center and extents.
func AABBIntersects(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax-aw/2 < bx+bw/2 && ax+aw/2 > bx-bw/2 &&
		ay-ah/2 < by+bh/2 && ay+ah/2 > by-bh/2
}

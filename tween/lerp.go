package tween

import "image/color"

// Linear returns progress unchanged. New installs it as the default Ease.
func Linear(t float64) float64 {
	return t
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpFloat32 linearly interpolates between two float32 values.
func LerpFloat32(a, b float32, t float64) float32 {
	return a + (b-a)*float32(t)
}

// LerpRGBA linearly interpolates each channel of two colors.
func LerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := LerpFloat64(float64(a), float64(b), t)
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

package math

// Vec4 is a 4-component vector, used for RGBA colors and homogeneous points.
type Vec4 [4]float32

// RGBA builds a color vector.
func RGBA(r, g, b, a float32) Vec4 {
	return Vec4{r, g, b, a}
}

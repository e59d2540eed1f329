package gfx

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Point is a projected screen coordinate.
type Point struct {
	X, Y int
}

// ShipVertices is the fixed wireframe model: a nose and four tail corners.
// The model is read-only and shared by all frames.
var ShipVertices = [5]Vec3{
	{0, 0, 1.8},
	{-1, -0.7, -1},
	{1, -0.7, -1},
	{1, 0.7, -1},
	{-1, 0.7, -1},
}

// ShipEdges are undirected index pairs into ShipVertices: four struts from
// the nose plus the tail ring.
var ShipEdges = [8][2]uint8{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {2, 3}, {3, 4}, {4, 1},
}

const (
	shipCamDist float32 = 4
	shipScale   float32 = 40
)

// ProjectShip rotates and projects the model for tick t onto a w×h screen.
// It is a pure function of its arguments: equal inputs give bit-identical
// output.
//
// Rotation order is pitch about X, then yaw about Y using the pitched
// depth, then roll about Z. The axes do not commute; the order is part of
// the model's look. The three angles and the screen-space drift come from
// sinusoids of t at different frequencies, so the tumble oscillates without
// visibly repeating.
func ProjectShip(t uint64, w, h int) [5]Point {
	ts := float32(t)
	pitch := 0.9 * sin32(ts*0.0011)
	yaw := 1.15 * sin32(ts*0.0007)
	roll := 0.65 * sin32(ts*0.0013)

	sp, cp := sincos32(pitch)
	sy, cy := sincos32(yaw)
	sr, cr := sincos32(roll)

	cx := float32(w)/2 + 9*sin32(ts*0.0009)
	cyc := float32(h)/2 + 5*sin32(ts*0.0005)

	var out [5]Point
	for i, v := range ShipVertices {
		// Pitch about X.
		y1 := v.Y*cp - v.Z*sp
		z1 := v.Y*sp + v.Z*cp
		// Yaw about Y.
		x2 := v.X*cy + z1*sy
		z2 := z1*cy - v.X*sy
		// Roll about Z.
		x3 := x2*cr - y1*sr
		y3 := x2*sr + y1*cr

		d := shipCamDist + z2
		out[i] = Point{
			X: int(cx + x3*shipScale/d),
			Y: int(cyc + y3*shipScale/d),
		}
	}
	return out
}

func sin32(v float32) float32 {
	return float32(math.Sin(float64(v)))
}

func sincos32(v float32) (s, c float32) {
	sv, cv := math.Sincos(float64(v))
	return float32(sv), float32(cv)
}

package vmath

import "math"

// Vec2 is a point or direction in court coordinates
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) LengthSq() float64 {
	return v.Dot(v)
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// FromAngle returns the unit vector for an angle in radians
func FromAngle(rad float64) Vec2 {
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// AngleBetween returns the unsigned angle in radians between a and b.
// Neither vector may be zero.
func AngleBetween(a, b Vec2) float64 {
	// atan2 of |cross| and dot stays exact near 0 and pi, where acos loses precision
	return math.Atan2(math.Abs(a.X*b.Y-a.Y*b.X), a.Dot(b))
}

// MapRange linearly maps input from [min0, max0] onto [min1, max1].
// The result is not clamped.
func MapRange(min0, max0, min1, max1, input float64) float64 {
	return (input-min0)/(max0-min0)*(max1-min1) + min1
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

func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rect is an axis aligned rectangle with its origin at the top-left corner
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// ClosestPoint clamps p onto the rectangle
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: Clamp(p.X, r.X, r.Right()),
		Y: Clamp(p.Y, r.Y, r.Bottom()),
	}
}

// ContainsStrict reports whether p lies inside r, excluding the border
func (r Rect) ContainsStrict(p Vec2) bool {
	return p.X > r.X && p.X < r.Right() && p.Y > r.Y && p.Y < r.Bottom()
}

// CircleRectOverlap reports whether a circle touches or overlaps r
func CircleRectOverlap(center Vec2, radius float64, r Rect) bool {
	return r.ClosestPoint(center).Sub(center).LengthSq() <= radius*radius
}

package geom

import (
	"math"

	"github.com/zooyer/dxfview/core"
)

// Ray 起点加单位方向
type Ray struct {
	Origin    core.Point
	Direction core.Point
}

func (r Ray) At(t float64) core.Point {
	return r.Origin.Add(r.Direction.Mul(t))
}

// DistanceSqToSegment 射线与线段 v0-v1 的最近距离平方，同时返回射线和线段上的最近点
func (r Ray) DistanceSqToSegment(v0, v1 core.Point) (distSq float64, onRay, onSegment core.Point) {
	segCenter := v0.Add(v1).Mul(0.5)
	segDir := v1.Sub(v0).Norm()
	diff := r.Origin.Sub(segCenter)

	segExtent := v0.Dist(v1) * 0.5
	a01 := -r.Direction.Dot(segDir)
	b0 := diff.Dot(r.Direction)
	b1 := -diff.Dot(segDir)
	c := diff.Dot(diff)
	det := math.Abs(1 - a01*a01)

	var s0, s1 float64
	if det > 0 {
		s0 = a01*b1 - b0
		s1 = a01*b0 - b1
		extDet := segExtent * det

		switch {
		case s0 >= 0 && s1 >= -extDet && s1 <= extDet:
			// 最近点在射线和线段内部
			invDet := 1 / det
			s0 *= invDet
			s1 *= invDet
			distSq = s0*(s0+a01*s1+2*b0) + s1*(a01*s0+s1+2*b1) + c
		case s0 >= 0 && s1 > extDet:
			s1 = segExtent
			s0 = math.Max(0, -(a01*s1 + b0))
			distSq = -s0*s0 + s1*(s1+2*b1) + c
		case s0 >= 0:
			s1 = -segExtent
			s0 = math.Max(0, -(a01*s1 + b0))
			distSq = -s0*s0 + s1*(s1+2*b1) + c
		case s1 <= -extDet:
			s0 = math.Max(0, -(-a01*segExtent + b0))
			if s0 > 0 {
				s1 = -segExtent
			} else {
				s1 = clamp(-b1, -segExtent, segExtent)
			}
			distSq = -s0*s0 + s1*(s1+2*b1) + c
		case s1 <= extDet:
			s0 = 0
			s1 = clamp(-b1, -segExtent, segExtent)
			distSq = s1*(s1+2*b1) + c
		default:
			s0 = math.Max(0, -(a01*segExtent + b0))
			if s0 > 0 {
				s1 = segExtent
			} else {
				s1 = clamp(-b1, -segExtent, segExtent)
			}
			distSq = -s0*s0 + s1*(s1+2*b1) + c
		}
	} else {
		// 射线与线段平行
		s1 = segExtent
		if a01 > 0 {
			s1 = -segExtent
		}
		s0 = math.Max(0, -(a01*s1 + b0))
		distSq = -s0*s0 + s1*(s1+2*b1) + c
	}

	onRay = r.At(s0)
	onSegment = segCenter.Add(segDir.Mul(s1))
	return
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

package geom

import (
	"math"

	"github.com/zooyer/dxfview/core"
)

// Curve 参数曲线，t 取值 [0, 1]
type Curve interface {
	Point(t float64) core.Point
}

// Sample 均匀采样 divisions+1 个点
func Sample(c Curve, divisions int) []core.Point {
	if divisions < 1 {
		divisions = 1
	}
	points := make([]core.Point, 0, divisions+1)
	for d := 0; d <= divisions; d++ {
		points = append(points, c.Point(float64(d)/float64(divisions)))
	}
	return points
}

type LineCurve struct {
	V1, V2 core.Point
}

func (l LineCurve) Point(t float64) core.Point {
	if t == 1 {
		return l.V2
	}
	return l.V1.Add(l.V2.Sub(l.V1).Mul(t))
}

// EllipseCurve XY 平面上的椭圆弧，圆弧是 RX == RY 的特例
type EllipseCurve struct {
	Center     core.Point
	RX, RY     float64
	Start, End float64 // 弧度
	Clockwise  bool
	Rotation   float64
}

func ArcCurve(center core.Point, radius, start, end float64, clockwise bool) EllipseCurve {
	return EllipseCurve{Center: center, RX: radius, RY: radius, Start: start, End: end, Clockwise: clockwise}
}

const epsilon = 2.220446049250313e-16

func (e EllipseCurve) Point(t float64) core.Point {
	const twoPi = 2 * math.Pi

	delta := e.End - e.Start
	samePoints := math.Abs(delta) < epsilon

	// 把角度差规范到 [0, 2π]
	for delta < 0 {
		delta += twoPi
	}
	for delta > twoPi {
		delta -= twoPi
	}
	if delta < epsilon {
		if samePoints {
			delta = 0
		} else {
			delta = twoPi
		}
	}

	if e.Clockwise && !samePoints {
		if delta == twoPi {
			delta = -twoPi
		} else {
			delta -= twoPi
		}
	}

	angle := e.Start + t*delta
	x := e.Center.X + e.RX*math.Cos(angle)
	y := e.Center.Y + e.RY*math.Sin(angle)

	if e.Rotation != 0 {
		cos, sin := math.Cos(e.Rotation), math.Sin(e.Rotation)
		tx, ty := x-e.Center.X, y-e.Center.Y
		x = tx*cos - ty*sin + e.Center.X
		y = tx*sin + ty*cos + e.Center.Y
	}
	return core.Point{X: x, Y: y}
}

// QuadraticBezier 二次贝塞尔曲线，Z 分量同样插值
type QuadraticBezier struct {
	V0, V1, V2 core.Point
}

func (q QuadraticBezier) Point(t float64) core.Point {
	k := 1 - t
	return q.V0.Mul(k * k).Add(q.V1.Mul(2 * k * t)).Add(q.V2.Mul(t * t))
}

// SplineCurve 经过所有控制点的 Catmull-Rom 曲线
type SplineCurve struct {
	Points []core.Point
}

func (s SplineCurve) Point(t float64) core.Point {
	n := len(s.Points)
	switch n {
	case 0:
		return core.Point{}
	case 1:
		return s.Points[0]
	}

	p := float64(n-1) * t
	i := int(math.Floor(p))
	weight := p - float64(i)

	at := func(k int) core.Point {
		return s.Points[max(0, min(n-1, k))]
	}
	p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)

	return core.Point{
		X: catmullRom(weight, p0.X, p1.X, p2.X, p3.X),
		Y: catmullRom(weight, p0.Y, p1.Y, p2.Y, p3.Y),
	}
}

func catmullRom(t, p0, p1, p2, p3 float64) float64 {
	v0 := (p2 - p0) * 0.5
	v1 := (p3 - p1) * 0.5
	t2 := t * t
	t3 := t * t2
	return (2*p1-2*p2+v0+v1)*t3 + (-3*p1+3*p2-2*v0-v1)*t2 + v0*t + p1
}

// BulgeArc 凸度圆弧参数
type BulgeArc struct {
	Center     core.Point
	Radius     float64
	Start, End float64 // 弧度
}

// BulgeToArc 把 start 到 end 的凸度转换为圆弧，bulge = tan(包含角/4)
func BulgeToArc(start, end core.Point, bulge float64) BulgeArc {
	half := 2 * math.Atan(bulge)

	distance := math.Hypot(end.X-start.X, end.Y-start.Y)
	radius := distance / 2 / math.Sin(half)

	between := math.Atan2(end.Y-start.Y, end.X-start.X)
	angle := math.Pi/2 - half + between

	center := core.Point{
		X: start.X + radius*math.Cos(angle),
		Y: start.Y + radius*math.Sin(angle),
	}

	return BulgeArc{
		Center: center,
		Radius: math.Abs(radius),
		Start:  math.Atan2(start.Y-center.Y, start.X-center.X),
		End:    math.Atan2(end.Y-center.Y, end.X-center.X),
	}
}

package geom

import (
	"math"
	"testing"

	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/golib/xmath"
)

const eps = 1e-9

func pointEqual(a, b core.Point) bool {
	return xmath.Equal(a.X, b.X, eps) && xmath.Equal(a.Y, b.Y, eps) && xmath.Equal(a.Z, b.Z, eps)
}

func TestBulgeToArc(t *testing.T) {
	tests := []struct {
		name       string
		start, end core.Point
		bulge      float64
		center     core.Point
		radius     float64
		from, to   float64
	}{
		{
			name:   "半圆",
			start:  core.Point{},
			end:    core.Point{X: 2},
			bulge:  1,
			center: core.Point{X: 1},
			radius: 1,
			from:   math.Pi,
			to:     0,
		},
		{
			name:   "四分之一圆",
			start:  core.Point{},
			end:    core.Point{X: 1, Y: 1},
			bulge:  math.Tan(math.Pi / 8),
			center: core.Point{Y: 1},
			radius: 1,
			from:   -math.Pi / 2,
			to:     0,
		},
		{
			name:   "负凸度半圆",
			start:  core.Point{},
			end:    core.Point{X: 2},
			bulge:  -1,
			center: core.Point{X: 1},
			radius: 1,
			from:   math.Pi,
			to:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arc := BulgeToArc(tt.start, tt.end, tt.bulge)
			if !pointEqual(arc.Center, tt.center) {
				t.Errorf("圆心不符: 期望 %+v, 得到 %+v", tt.center, arc.Center)
			}
			if !xmath.Equal(arc.Radius, tt.radius, eps) {
				t.Errorf("半径不符: 期望 %v, 得到 %v", tt.radius, arc.Radius)
			}
			if !xmath.Equal(arc.Start, tt.from, eps) || !xmath.Equal(arc.End, tt.to, eps) {
				t.Errorf("角度不符: 期望 %v..%v, 得到 %v..%v", tt.from, tt.to, arc.Start, arc.End)
			}
		})
	}
}

func TestEllipseCurve(t *testing.T) {
	arc := ArcCurve(core.Point{}, 1, 0, math.Pi/2, false)
	if p := arc.Point(1); !pointEqual(p, core.Point{Y: 1}) {
		t.Errorf("逆时针终点不符: %+v", p)
	}

	// 顺时针从 0 走到 π/2 需要绕 3/4 圈
	cw := ArcCurve(core.Point{}, 1, 0, math.Pi/2, true)
	if p := cw.Point(0.5); !pointEqual(p, core.Point{X: math.Cos(-3 * math.Pi / 4), Y: math.Sin(-3 * math.Pi / 4)}) {
		t.Errorf("顺时针中点不符: %+v", p)
	}

	full := ArcCurve(core.Point{X: 5}, 2, 0, 2*math.Pi, false)
	points := Sample(full, 16)
	if len(points) != 17 {
		t.Fatalf("采样点数不符: %d", len(points))
	}
	if !pointEqual(points[0], points[16]) {
		t.Errorf("整圆首尾应该重合: %+v %+v", points[0], points[16])
	}

	rotated := EllipseCurve{RX: 2, RY: 1, Start: 0, End: math.Pi, Rotation: math.Pi / 2}
	if p := rotated.Point(0); !pointEqual(p, core.Point{Y: 2}) {
		t.Errorf("旋转椭圆起点不符: %+v", p)
	}
}

func TestSplineCurve(t *testing.T) {
	s := SplineCurve{Points: []core.Point{{X: 0}, {X: 1, Y: 1}, {X: 2}}}
	if p := s.Point(0); !pointEqual(p, core.Point{}) {
		t.Errorf("起点不符: %+v", p)
	}
	if p := s.Point(0.5); !pointEqual(p, core.Point{X: 1, Y: 1}) {
		t.Errorf("应该经过控制点: %+v", p)
	}
	if p := s.Point(1); !pointEqual(p, core.Point{X: 2}) {
		t.Errorf("终点不符: %+v", p)
	}
}

func TestQuadraticBezier(t *testing.T) {
	q := QuadraticBezier{V0: core.Point{}, V1: core.Point{X: 1, Y: 2, Z: 2}, V2: core.Point{X: 2}}
	if p := q.Point(0.5); !pointEqual(p, core.Point{X: 1, Y: 1, Z: 1}) {
		t.Errorf("中点不符: %+v", p)
	}
}

func TestShape_ClosedBulge(t *testing.T) {
	// 带凸度的闭合轮廓：凸度为正，底边是向下的半圆
	s := NewShape().MoveTo(0, 0)
	arc := BulgeToArc(core.Point{}, core.Point{X: 2}, 1)
	s.AbsArc(arc.Center.X, arc.Center.Y, arc.Radius, arc.Start, arc.End, false)
	s.LineTo(2, 2).LineTo(0, 2).ClosePath()

	points := s.Points(8)
	if len(points) < 5 {
		t.Fatalf("点数过少: %d", len(points))
	}
	if !pointEqual(points[0], points[len(points)-1]) {
		t.Errorf("闭合轮廓首尾应该重合: %+v %+v", points[0], points[len(points)-1])
	}
	for i := 1; i < len(points); i++ {
		if points[i] == points[i-1] {
			t.Errorf("第 %d 个点重复", i)
		}
	}

	box, _ := s.BBox(8)
	if !xmath.Equal(box.Min.Y, -1, 1e-6) || !xmath.Equal(box.Max.Y, 2, 1e-6) {
		t.Errorf("半圆应该向下凸出: %+v", box)
	}

	// 凸度为负时顺时针，圆弧在上方
	arc = BulgeToArc(core.Point{}, core.Point{X: 2}, -1)
	top := NewShape().MoveTo(0, 0)
	top.AbsArc(arc.Center.X, arc.Center.Y, arc.Radius, arc.Start, arc.End, true)
	if box, _ = top.BBox(8); !xmath.Equal(box.Max.Y, 1, 1e-6) || box.Min.Y < -1e-6 {
		t.Errorf("半圆应该向上凸出: %+v", box)
	}
}

func TestPolygon(t *testing.T) {
	input := []core.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3}}
	points := Polygon(input).Points(16)
	if len(points) != len(input) {
		t.Fatalf("点数不符: 期望 %d, 得到 %d", len(input), len(points))
	}
	for i := range input {
		if points[i] != input[i] {
			t.Errorf("第 %d 个点不符: 期望 %+v, 得到 %+v", i, input[i], points[i])
		}
	}
	if !NewShape().MoveTo(1, 1).Empty() {
		t.Error("只有起点的轮廓应该为空")
	}
}

func TestMatrix(t *testing.T) {
	m := Translation(core.Point{X: 5, Y: 5}).
		Mul(RotationZ(math.Pi / 2)).
		Mul(Scaling(core.Point{X: 2, Y: 2, Z: 1}))

	p := m.Apply(core.Point{X: 1})
	if !pointEqual(p, core.Point{X: 5, Y: 7}) {
		t.Errorf("变换结果不符: %+v", p)
	}

	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("矩阵应该可逆")
	}
	if q := inv.Apply(p); !pointEqual(q, core.Point{X: 1}) {
		t.Errorf("逆变换结果不符: %+v", q)
	}

	if _, ok = Scaling(core.Point{X: 0, Y: 1, Z: 1}).Inverse(); ok {
		t.Error("缩放为 0 的矩阵不可逆")
	}

	shape := Polygon([]core.Point{{}, {X: 1}})
	moved := shape.Transformed(Translation(core.Point{X: 10}))
	if pts := moved.Points(4); pts[1] != (core.Point{X: 11}) {
		t.Errorf("轮廓变换结果不符: %+v", pts)
	}
	if pts := shape.Points(4); pts[1] != (core.Point{X: 1}) {
		t.Errorf("原轮廓不应该被修改: %+v", pts)
	}
}

func TestRay_DistanceSqToSegment(t *testing.T) {
	ray := Ray{Origin: core.Point{X: 1, Y: 0.5, Z: 1}, Direction: core.Point{Z: -1}}

	tests := []struct {
		name   string
		v0, v1 core.Point
		distSq float64
		onRay  core.Point
	}{
		{"穿过线段", core.Point{}, core.Point{X: 2}, 0.25, core.Point{X: 1, Y: 0.5}},
		{"落在端点外", core.Point{X: 3}, core.Point{X: 5}, 4.25, core.Point{X: 1, Y: 0.5}},
		{"退化线段", core.Point{X: 1, Y: 0.5}, core.Point{X: 1, Y: 0.5}, 0, core.Point{X: 1, Y: 0.5}},
		{"线段在射线背后", core.Point{Z: 3}, core.Point{X: 2, Z: 3}, 4.25, core.Point{X: 1, Y: 0.5, Z: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distSq, onRay, _ := ray.DistanceSqToSegment(tt.v0, tt.v1)
			if !xmath.Equal(distSq, tt.distSq, eps) {
				t.Errorf("距离不符: 期望 %v, 得到 %v", tt.distSq, distSq)
			}
			if !pointEqual(onRay, tt.onRay) {
				t.Errorf("射线最近点不符: 期望 %+v, 得到 %+v", tt.onRay, onRay)
			}
		})
	}
}

package geom

import "github.com/zooyer/dxfview/core"

// Shape 由直线和圆弧组成的二维轮廓
type Shape struct {
	curves  []Curve
	current core.Point
	matrix  *Matrix
}

func NewShape() *Shape {
	return &Shape{}
}

// Polygon 按顺序连接各点，第一个点为起点
func Polygon(points []core.Point) *Shape {
	s := NewShape()
	for i, p := range points {
		if i == 0 {
			s.MoveTo(p.X, p.Y)
		} else {
			s.LineTo(p.X, p.Y)
		}
	}
	return s
}

func (s *Shape) MoveTo(x, y float64) *Shape {
	s.current = core.Point{X: x, Y: y}
	return s
}

func (s *Shape) LineTo(x, y float64) *Shape {
	end := core.Point{X: x, Y: y}
	s.curves = append(s.curves, LineCurve{V1: s.current, V2: end})
	s.current = end
	return s
}

// AbsArc 以绝对圆心添加圆弧，起点和当前点不重合时先连一条直线
func (s *Shape) AbsArc(x, y, radius, start, end float64, clockwise bool) *Shape {
	return s.AbsEllipse(x, y, radius, radius, start, end, clockwise, 0)
}

func (s *Shape) AbsEllipse(x, y, rx, ry, start, end float64, clockwise bool, rotation float64) *Shape {
	curve := EllipseCurve{
		Center:    core.Point{X: x, Y: y},
		RX:        rx,
		RY:        ry,
		Start:     start,
		End:       end,
		Clockwise: clockwise,
		Rotation:  rotation,
	}

	if len(s.curves) > 0 {
		if first := curve.Point(0); first != s.current {
			s.LineTo(first.X, first.Y)
		}
	}

	s.curves = append(s.curves, curve)
	s.current = curve.Point(1)
	return s
}

// ClosePath 终点和起点不重合时补一条直线
func (s *Shape) ClosePath() *Shape {
	if len(s.curves) == 0 {
		return s
	}
	start := s.curves[0].Point(0)
	end := s.curves[len(s.curves)-1].Point(1)
	if start != end {
		s.curves = append(s.curves, LineCurve{V1: end, V2: start})
	}
	return s
}

func (s *Shape) Empty() bool {
	return len(s.curves) == 0
}

// Transformed 返回共享曲线、附加变换 m 的副本
func (s *Shape) Transformed(m Matrix) *Shape {
	if s.matrix != nil {
		m = m.Mul(*s.matrix)
	}
	if m.IsIdentity() {
		return s
	}
	return &Shape{curves: s.curves, current: s.current, matrix: &m}
}

// Points 采样轮廓，直线只取端点，椭圆加倍采样，相邻重复点只保留一个
func (s *Shape) Points(divisions int) []core.Point {
	var points []core.Point

	for _, curve := range s.curves {
		resolution := divisions
		switch c := curve.(type) {
		case EllipseCurve:
			resolution = divisions * 2
		case LineCurve:
			resolution = 1
		case SplineCurve:
			resolution = divisions * len(c.Points)
		}

		for _, p := range Sample(curve, resolution) {
			if n := len(points); n > 0 && points[n-1] == p {
				continue
			}
			points = append(points, p)
		}
	}

	if s.matrix != nil {
		return s.matrix.ApplyAll(points)
	}
	return points
}

// BBox 采样后的包围盒
func (s *Shape) BBox(divisions int) (core.BBox, bool) {
	return core.NewBBox(s.Points(divisions)...)
}

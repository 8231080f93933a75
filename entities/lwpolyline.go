package entities

import "github.com/zooyer/dxfview/core"

// Vertex 多段线顶点，Bulge 为到下一个顶点的凸度 tan(圆心角/4)
type Vertex struct {
	core.Point
	Bulge float64
}

type LWPolyline struct {
	BaseEntity
	Vertices  []Vertex
	Closed    bool    // 组码 70 第 1 位
	Elevation float64 // 组码 38
	Thickness float64 // 组码 39
	Width     float64 // 组码 43，固定线宽
}

func init() {
	Register("LWPOLYLINE", func() Entity { return &LWPolyline{BaseEntity: BaseEntity{TypeName: "LWPOLYLINE"}} })
}

func (l *LWPolyline) Parse(s *core.Scanner) error {
	parseTags(s, &l.BaseEntity, func(t core.Tag) {
		switch t.Code {
		case 10:
			// 每个 10 组码开始一个新顶点，后续 20/42 都属于它
			l.Vertices = append(l.Vertices, Vertex{Point: core.Point{X: t.AsFloat(), Z: l.Elevation}})
		case 20:
			if n := len(l.Vertices); n > 0 {
				l.Vertices[n-1].Y = t.AsFloat()
			}
		case 42:
			if n := len(l.Vertices); n > 0 {
				l.Vertices[n-1].Bulge = t.AsFloat()
			}
		case 38:
			l.Elevation = t.AsFloat()
		case 39:
			l.Thickness = t.AsFloat()
		case 43:
			l.Width = t.AsFloat()
		case 70:
			l.Closed = t.AsInt()&1 == 1
		}
	})
	return nil
}

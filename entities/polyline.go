package entities

import "github.com/zooyer/dxfview/core"

const (
	polylineClosed      = 1
	polylinePolygonMesh = 16
	polylinePolyface    = 64

	vertexSplineFrame  = 16
	vertexPolyfaceMesh = 64
	vertexFaceRecord   = 128
)

// Polyline 旧式多段线，顶点由后续的 VERTEX 实体给出，直到 SEQEND
type Polyline struct {
	BaseEntity
	Vertices     []Vertex
	Closed       bool
	PolygonMesh  bool
	PolyfaceMesh bool
	Flags        int
	Thickness    float64
}

// PolylineVertex 单独出现的 VERTEX 实体
type PolylineVertex struct {
	BaseEntity
	Location  core.Point
	Bulge     float64
	Flags     int
	Thickness float64
}

func init() {
	Register("POLYLINE", func() Entity { return &Polyline{BaseEntity: BaseEntity{TypeName: "POLYLINE"}} })
	Register("VERTEX", func() Entity { return &PolylineVertex{BaseEntity: BaseEntity{TypeName: "VERTEX"}} })
}

func (v *PolylineVertex) Parse(s *core.Scanner) error {
	parseTags(s, &v.BaseEntity, func(t core.Tag) {
		switch t.Code {
		case 10:
			v.Location.X = t.AsFloat()
		case 20:
			v.Location.Y = t.AsFloat()
		case 30:
			v.Location.Z = t.AsFloat()
		case 39:
			v.Thickness = t.AsFloat()
		case 42:
			v.Bulge = t.AsFloat()
		case 70:
			v.Flags = t.AsInt()
		}
	})
	return nil
}

func (p *Polyline) Parse(s *core.Scanner) error {
	parseTags(s, &p.BaseEntity, func(t core.Tag) {
		switch t.Code {
		case 39:
			p.Thickness = t.AsFloat()
		case 70:
			p.Flags = t.AsInt()
		}
	})

	p.Closed = p.Flags&polylineClosed != 0
	p.PolygonMesh = p.Flags&polylinePolygonMesh != 0
	p.PolyfaceMesh = p.Flags&polylinePolyface != 0

	// 和 INSERT 的 ATTRIB 一样，继续在当前流中抓取 VERTEX 直到 SEQEND
	for s.IsStart("VERTEX") {
		v := &PolylineVertex{BaseEntity: BaseEntity{TypeName: "VERTEX"}}
		if err := v.Parse(s); err != nil {
			return err
		}
		// 多面网格的面记录和样条线框架点不是轮廓上的点
		if v.Flags&vertexFaceRecord != 0 && v.Flags&vertexPolyfaceMesh == 0 {
			continue
		}
		if v.Flags&vertexSplineFrame != 0 {
			continue
		}
		p.Vertices = append(p.Vertices, Vertex{Point: v.Location, Bulge: v.Bulge})
	}

	if s.IsStart("SEQEND") {
		seqEnd := &Unknown{BaseEntity: BaseEntity{TypeName: "SEQEND"}}
		return seqEnd.Parse(s)
	}
	return nil
}

package handler

import (
	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/dxfview/entities"
	"github.com/zooyer/dxfview/geom"
	"github.com/zooyer/dxfview/scene"
)

func init() {
	Register("LWPOLYLINE", HandlerFunc(processPolyline))
	Register("POLYLINE", HandlerFunc(processPolyline))
}

func processPolyline(e entities.Entity, ctx *Context) (scene.ID, error) {
	var (
		vertices  []entities.Vertex
		closed    bool
		thickness float64
	)
	switch p := e.(type) {
	case *entities.LWPolyline:
		vertices, closed, thickness = p.Vertices, p.Closed, p.Thickness
	case *entities.Polyline:
		vertices, closed, thickness = p.Vertices, p.Closed, p.Thickness
	default:
		return unexpected(e)
	}

	shape, bulged := PolylineShape(vertices, closed)

	n := ctx.newNode(scene.KindLine, e)
	n.Width = widthOf(thickness)
	n.Points = shape.Points(ctx.Globals.divisions())

	if bulged && ctx.Cache != nil {
		ctx.Cache.Put(flatten(vertices), shape, n.ID)
	}
	if ctx.Index != nil {
		ctx.Index.Add(n.ID, shape)
	}
	return n.ID, nil
}

// PolylineShape 按顶点构造轮廓，非零凸度的顶点到下一个顶点之间是圆弧；闭合时补上第一个顶点
func PolylineShape(vertices []entities.Vertex, closed bool) (shape *geom.Shape, bulged bool) {
	points := flatten(vertices)
	bulges := make([]float64, len(vertices))
	for i, v := range vertices {
		bulges[i] = v.Bulge
	}
	if closed && len(vertices) > 0 {
		points = append(points, points[0])
		bulges = append(bulges, bulges[0])
	}

	shape = geom.NewShape()
	for i, p := range points {
		if i == 0 {
			shape.MoveTo(p.X, p.Y)
		}

		if bulge := bulges[i]; bulge != 0 && i < len(points)-1 {
			arc := geom.BulgeToArc(p, points[i+1], bulge)
			shape.AbsArc(arc.Center.X, arc.Center.Y, arc.Radius, arc.Start, arc.End, bulge < 0)
			bulged = true
		} else {
			shape.LineTo(p.X, p.Y)
		}
	}

	if closed {
		shape.ClosePath()
	}
	return shape, bulged
}

// flatten 多段线按平面处理，顶点的 Z 一律为 0
func flatten(vertices []entities.Vertex) []core.Point {
	points := make([]core.Point, len(vertices))
	for i, v := range vertices {
		points[i] = core.Point{X: v.X, Y: v.Y}
	}
	return points
}

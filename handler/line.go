package handler

import (
	"math"

	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/dxfview/entities"
	"github.com/zooyer/dxfview/geom"
	"github.com/zooyer/dxfview/scene"
)

func init() {
	Register("LINE", HandlerFunc(processLine))
	Register("ARC", HandlerFunc(processArc))
	Register("CIRCLE", HandlerFunc(processCircle))
	Register("ELLIPSE", HandlerFunc(processEllipse))
}

func processLine(e entities.Entity, ctx *Context) (scene.ID, error) {
	l, ok := e.(*entities.Line)
	if !ok {
		return unexpected(e)
	}

	n := ctx.newNode(scene.KindLine, e)
	n.Width = widthOf(l.Thickness)
	n.Points = []core.Point{l.Start, l.End}
	return n.ID, nil
}

// processArc 圆弧在原点采样，再平移到圆心
func processArc(e entities.Entity, ctx *Context) (scene.ID, error) {
	a, ok := e.(*entities.Arc)
	if !ok {
		return unexpected(e)
	}

	curve := geom.ArcCurve(core.Point{}, a.Radius, a.StartAngle, a.EndAngle, false)

	n := ctx.newNode(scene.KindLine, e)
	n.Width = widthOf(a.Thickness)
	n.Points = geom.Sample(curve, ctx.Globals.divisions())
	n.Transform = geom.Translation(a.Center)
	return n.ID, nil
}

func processCircle(e entities.Entity, ctx *Context) (scene.ID, error) {
	c, ok := e.(*entities.Circle)
	if !ok {
		return unexpected(e)
	}

	curve := geom.ArcCurve(core.Point{}, c.Radius, 0, 2*math.Pi, false)

	n := ctx.newNode(scene.KindLine, e)
	n.Width = widthOf(c.Thickness)
	n.Points = geom.Sample(curve, ctx.Globals.divisions())
	n.Transform = geom.Translation(c.Center)
	return n.ID, nil
}

// processEllipse 椭圆直接以绝对圆心采样，Z 为 0
func processEllipse(e entities.Entity, ctx *Context) (scene.ID, error) {
	el, ok := e.(*entities.Ellipse)
	if !ok {
		return unexpected(e)
	}

	rx := math.Hypot(el.MajorAxis.X, el.MajorAxis.Y)
	curve := geom.EllipseCurve{
		Center:   core.Point{X: el.Center.X, Y: el.Center.Y},
		RX:       rx,
		RY:       rx * el.AxisRatio,
		Start:    el.StartAngle,
		End:      el.EndAngle,
		Rotation: math.Atan2(el.MajorAxis.Y, el.MajorAxis.X),
	}

	n := ctx.newNode(scene.KindLine, e)
	n.Width = 1
	n.Points = geom.Sample(curve, ctx.Globals.divisions())
	return n.ID, nil
}

package handler

import (
	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/dxfview/entities"
	"github.com/zooyer/dxfview/scene"
)

func init() {
	Register("POINT", HandlerFunc(processPoint))
	Register("VERTEX", HandlerFunc(processPoint))
}

func processPoint(e entities.Entity, ctx *Context) (scene.ID, error) {
	var (
		location  core.Point
		thickness float64
	)
	switch p := e.(type) {
	case *entities.Point:
		location, thickness = p.Location, p.Thickness
	case *entities.PolylineVertex:
		location, thickness = p.Location, p.Thickness
	default:
		return unexpected(e)
	}

	n := ctx.newNode(scene.KindPoints, e)
	n.Width = widthOf(thickness)
	n.Points = []core.Point{location}
	return n.ID, nil
}

package handler

import (
	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/dxfview/entities"
	"github.com/zooyer/dxfview/geom"
	"github.com/zooyer/dxfview/scene"
)

func init() {
	Register("SPLINE", HandlerFunc(processSpline))
}

func processSpline(e entities.Entity, ctx *Context) (scene.ID, error) {
	s, ok := e.(*entities.Spline)
	if !ok {
		return unexpected(e)
	}

	n := ctx.newNode(scene.KindLine, e)
	n.Width = 1
	n.Points = SplinePoints(s, ctx.Globals.divisions())
	return n.ID, nil
}

// SplinePoints 2 次和 3 次样条每三个控制点一段二次贝塞尔（步长为 2），其他次数按控制点做插值曲线；结果投影到 XY 平面
func SplinePoints(s *entities.Spline, divisions int) []core.Point {
	var curves []geom.Curve
	cps := s.ControlPoints

	if s.Degree == 2 || s.Degree == 3 {
		for i := 0; i < len(cps)-2; i += 2 {
			q := geom.QuadraticBezier{V0: cps[i], V1: cps[i+1], V2: cps[i+2]}
			if s.Degree == 2 {
				q.V0.Z, q.V1.Z, q.V2.Z = 0, 0, 0
			}
			curves = append(curves, q)
		}
	} else {
		curves = append(curves, geom.SplineCurve{Points: cps})
	}

	var points []core.Point
	for _, c := range curves {
		for _, p := range geom.Sample(c, divisions) {
			points = append(points, core.Point{X: p.X, Y: p.Y})
		}
	}

	if s.Closed && len(points) > 0 {
		points = append(points, points[0])
	}
	return points
}

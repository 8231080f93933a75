package entities

import "github.com/zooyer/dxfview/core"

// Spline 组码 70 标志位：1 闭合，2 周期，4 有理，8 平面，16 线性
type Spline struct {
	BaseEntity
	ControlPoints         []core.Point
	FitPoints             []core.Point
	Knots                 []float64
	Degree                int
	Flags                 int
	Closed                bool
	KnotTolerance         float64
	ControlPointTolerance float64
	FitTolerance          float64
}

func init() {
	Register("SPLINE", func() Entity { return &Spline{BaseEntity: BaseEntity{TypeName: "SPLINE"}} })
}

func (sp *Spline) Parse(s *core.Scanner) error {
	parseTags(s, &sp.BaseEntity, func(t core.Tag) {
		switch t.Code {
		case 10:
			sp.ControlPoints = append(sp.ControlPoints, core.Point{X: t.AsFloat()})
		case 20:
			if n := len(sp.ControlPoints); n > 0 {
				sp.ControlPoints[n-1].Y = t.AsFloat()
			}
		case 30:
			if n := len(sp.ControlPoints); n > 0 {
				sp.ControlPoints[n-1].Z = t.AsFloat()
			}
		case 11:
			sp.FitPoints = append(sp.FitPoints, core.Point{X: t.AsFloat()})
		case 21:
			if n := len(sp.FitPoints); n > 0 {
				sp.FitPoints[n-1].Y = t.AsFloat()
			}
		case 31:
			if n := len(sp.FitPoints); n > 0 {
				sp.FitPoints[n-1].Z = t.AsFloat()
			}
		case 40:
			sp.Knots = append(sp.Knots, t.AsFloat())
		case 42:
			sp.KnotTolerance = t.AsFloat()
		case 43:
			sp.ControlPointTolerance = t.AsFloat()
		case 44:
			sp.FitTolerance = t.AsFloat()
		case 70:
			sp.Flags = t.AsInt()
		case 71:
			sp.Degree = t.AsInt()
		}
	})
	sp.Closed = sp.Flags&1 == 1
	return nil
}

package entities

import (
	"math"

	"github.com/zooyer/dxfview/core"
)

type Ellipse struct {
	BaseEntity
	Center     core.Point
	MajorAxis  core.Point // 组码 11/21/31，相对圆心的长轴端点
	AxisRatio  float64    // 组码 40，短轴/长轴
	StartAngle float64    // 组码 41，弧度
	EndAngle   float64    // 组码 42，弧度
}

func init() {
	Register("ELLIPSE", func() Entity {
		return &Ellipse{
			BaseEntity: BaseEntity{TypeName: "ELLIPSE"},
			AxisRatio:  1,
			EndAngle:   2 * math.Pi,
		}
	})
}

func (e *Ellipse) Parse(s *core.Scanner) error {
	parseTags(s, &e.BaseEntity, func(t core.Tag) {
		switch t.Code {
		case 10:
			e.Center.X = t.AsFloat()
		case 20:
			e.Center.Y = t.AsFloat()
		case 30:
			e.Center.Z = t.AsFloat()
		case 11:
			e.MajorAxis.X = t.AsFloat()
		case 21:
			e.MajorAxis.Y = t.AsFloat()
		case 31:
			e.MajorAxis.Z = t.AsFloat()
		case 40:
			e.AxisRatio = t.AsFloat()
		case 41:
			e.StartAngle = t.AsFloat()
		case 42:
			e.EndAngle = t.AsFloat()
		}
	})
	return nil
}

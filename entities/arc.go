package entities

import (
	"math"

	"github.com/zooyer/dxfview/core"
)

// Arc 圆弧，角度在解析时已经从角度制转为弧度制
type Arc struct {
	BaseEntity
	Center     core.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Thickness  float64
}

// Circle 整圆
type Circle struct {
	BaseEntity
	Center    core.Point
	Radius    float64
	Thickness float64
}

func init() {
	Register("ARC", func() Entity { return &Arc{BaseEntity: BaseEntity{TypeName: "ARC"}} })
	Register("CIRCLE", func() Entity { return &Circle{BaseEntity: BaseEntity{TypeName: "CIRCLE"}} })
}

func (a *Arc) Parse(s *core.Scanner) error {
	parseTags(s, &a.BaseEntity, func(t core.Tag) {
		switch t.Code {
		case 10:
			a.Center.X = t.AsFloat()
		case 20:
			a.Center.Y = t.AsFloat()
		case 30:
			a.Center.Z = t.AsFloat()
		case 39:
			a.Thickness = t.AsFloat()
		case 40:
			a.Radius = t.AsFloat()
		case 50:
			a.StartAngle = t.AsFloat() * math.Pi / 180.0
		case 51:
			a.EndAngle = t.AsFloat() * math.Pi / 180.0
		}
	})
	return nil
}

func (c *Circle) Parse(s *core.Scanner) error {
	parseTags(s, &c.BaseEntity, func(t core.Tag) {
		switch t.Code {
		case 10:
			c.Center.X = t.AsFloat()
		case 20:
			c.Center.Y = t.AsFloat()
		case 30:
			c.Center.Z = t.AsFloat()
		case 39:
			c.Thickness = t.AsFloat()
		case 40:
			c.Radius = t.AsFloat()
		}
	})
	return nil
}

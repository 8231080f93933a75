package entities

import "github.com/zooyer/dxfview/core"

type Point struct {
	BaseEntity
	Location  core.Point
	Thickness float64
}

func init() {
	Register("POINT", func() Entity { return &Point{BaseEntity: BaseEntity{TypeName: "POINT"}} })
}

func (p *Point) Parse(s *core.Scanner) error {
	parseTags(s, &p.BaseEntity, func(t core.Tag) {
		switch t.Code {
		case 10:
			p.Location.X = t.AsFloat()
		case 20:
			p.Location.Y = t.AsFloat()
		case 30:
			p.Location.Z = t.AsFloat()
		case 39:
			p.Thickness = t.AsFloat()
		}
	})
	return nil
}

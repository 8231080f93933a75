package entities

import "github.com/zooyer/dxfview/core"

type Line struct {
	BaseEntity
	Start, End core.Point
	Thickness  float64 // 组码 39，没有时为 0
}

func init() {
	Register("LINE", func() Entity { return &Line{BaseEntity: BaseEntity{TypeName: "LINE"}} })
}

func (l *Line) Parse(s *core.Scanner) error {
	parseTags(s, &l.BaseEntity, func(t core.Tag) {
		switch t.Code {
		case 10:
			l.Start.X = t.AsFloat()
		case 20:
			l.Start.Y = t.AsFloat()
		case 30:
			l.Start.Z = t.AsFloat()
		case 11:
			l.End.X = t.AsFloat()
		case 21:
			l.End.Y = t.AsFloat()
		case 31:
			l.End.Z = t.AsFloat()
		case 39:
			l.Thickness = t.AsFloat()
		}
	})
	return nil
}

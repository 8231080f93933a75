package entities

import "github.com/zooyer/dxfview/core"

type Attrib struct {
	BaseEntity
	Location  core.Point
	Tag       string // 属性标签，如 "序号"
	Text      string // 属性值
	Height    float64
	Rotation  float64 // 组码 50，角度制
	StyleName string
	Flags     int // 组码 70，1 表示不可见
}

func init() {
	Register("ATTRIB", func() Entity {
		return &Attrib{BaseEntity: BaseEntity{TypeName: "ATTRIB"}}
	})
}

func (a *Attrib) Parse(scanner *core.Scanner) error {
	parseTags(scanner, &a.BaseEntity, func(tag core.Tag) {
		switch tag.Code {
		case 10:
			a.Location.X = tag.AsFloat()
		case 20:
			a.Location.Y = tag.AsFloat()
		case 30:
			a.Location.Z = tag.AsFloat()
		case 40:
			a.Height = tag.AsFloat()
		case 50:
			a.Rotation = tag.AsFloat()
		case 1:
			a.Text = tag.AsString()
		case 2:
			a.Tag = tag.AsString()
		case 7:
			a.StyleName = tag.AsString()
		case 70:
			a.Flags = tag.AsInt()
		}
	})
	return nil
}

// Visible 属性是否需要显示
func (a *Attrib) Visible() bool {
	return a.Flags&1 == 0 && a.Text != ""
}

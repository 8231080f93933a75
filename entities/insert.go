package entities

import "github.com/zooyer/dxfview/core"

type Insert struct {
	BaseEntity
	BlockName      string
	InsertionPoint core.Point
	Scale          core.Point
	Rotation       float64 // 组码 50，角度制
	Attributes     []*Attrib
}

func init() {
	Register("INSERT", func() Entity {
		return &Insert{
			BaseEntity: BaseEntity{TypeName: "INSERT"},
			Scale:      core.Point{X: 1, Y: 1, Z: 1}, // 默认缩放为 1
			Attributes: []*Attrib{},
		}
	})
}

func (i *Insert) Parse(scanner *core.Scanner) error {
	hasAttributes := false

	parseTags(scanner, &i.BaseEntity, func(tag core.Tag) {
		switch tag.Code {
		case 2:
			i.BlockName = tag.AsString()
		case 10:
			i.InsertionPoint.X = tag.AsFloat()
		case 20:
			i.InsertionPoint.Y = tag.AsFloat()
		case 30:
			i.InsertionPoint.Z = tag.AsFloat()
		case 41:
			i.Scale.X = tag.AsFloat()
		case 42:
			i.Scale.Y = tag.AsFloat()
		case 43:
			i.Scale.Z = tag.AsFloat()
		case 50:
			i.Rotation = tag.AsFloat()
		case 66:
			if tag.AsInt() == 1 {
				hasAttributes = true
			}
		}
	})

	if !hasAttributes {
		return nil
	}

	// 核心逻辑：如果标记了有属性，则继续在当前流中抓取 ATTRIB 直到 SEQEND
	for scanner.IsStart("ATTRIB") {
		attr := CreateEntity("ATTRIB").(*Attrib)
		if err := attr.Parse(scanner); err != nil {
			return err
		}
		i.Attributes = append(i.Attributes, attr)
	}

	if scanner.IsStart("SEQEND") {
		seqEnd := &Unknown{BaseEntity: BaseEntity{TypeName: "SEQEND"}}
		return seqEnd.Parse(scanner)
	}
	return nil
}

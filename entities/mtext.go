package entities

import (
	"strings"

	"github.com/zooyer/dxfview/core"
)

type MText struct {
	BaseEntity
	Position          core.Point
	Text              string     // 组码 3 的分段 + 组码 1
	StyleName         string     // 组码 7
	NominalTextHeight float64    // 组码 40
	RefRectangleWidth float64    // 组码 41
	AttachmentPoint   int        // 组码 71，1~9 行优先：上/中/下 × 左/中/右
	DrawingDirection  int        // 组码 72
	XAxis             core.Point // 组码 11/21/31
	Rotation          float64    // 组码 50
}

func init() {
	Register("MTEXT", func() Entity {
		return &MText{BaseEntity: BaseEntity{TypeName: "MTEXT"}, AttachmentPoint: 1} // 缺省为左上
	})
}

func (m *MText) Parse(s *core.Scanner) error {
	var chunks, last strings.Builder
	parseTags(s, &m.BaseEntity, func(t core.Tag) {
		switch t.Code {
		case 1:
			last.WriteString(t.Value)
		case 3:
			chunks.WriteString(t.Value)
		case 7:
			m.StyleName = t.AsString()
		case 10:
			m.Position.X = t.AsFloat()
		case 20:
			m.Position.Y = t.AsFloat()
		case 30:
			m.Position.Z = t.AsFloat()
		case 11:
			m.XAxis.X = t.AsFloat()
		case 21:
			m.XAxis.Y = t.AsFloat()
		case 31:
			m.XAxis.Z = t.AsFloat()
		case 40:
			m.NominalTextHeight = t.AsFloat()
		case 41:
			m.RefRectangleWidth = t.AsFloat()
		case 50:
			m.Rotation = t.AsFloat()
		case 71:
			m.AttachmentPoint = t.AsInt()
		case 72:
			m.DrawingDirection = t.AsInt()
		}
	})
	m.Text = chunks.String() + last.String()
	return nil
}

// Lines 按段落标记 \P 拆分文字，同时去掉常见的格式控制
func (m *MText) Lines() []string {
	text := strings.NewReplacer(`\P`, "\n", `\p`, "\n", `\~`, " ", "{", "", "}", "").Replace(m.Text)
	return strings.Split(text, "\n")
}

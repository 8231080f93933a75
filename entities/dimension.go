package entities

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/zooyer/dxfview/core"
)

var (
	reFormat = regexp.MustCompile(`\\[A-Z].*?;`)
	reNum    = regexp.MustCompile(`[0-9.]+`)
)

type Dimension struct {
	BaseEntity
	BlockName         string     // 组码 2，标注的匿名块 (*D1 ...)
	DimType           int        // 组码 70 (关键：区分标注类型)
	StyleName         string     // 组码 3 (标注样式名称，用于关联 TABLES)
	ActualMeasurement float64    // 组码 42
	Text              string     // 组码 1
	Angle             float64    // 组码 50
	TextMidPoint      core.Point // 组码 11 (中间的点)
	DefPoint          core.Point // 组码 10 (标注线起点)
	MeasureStart      core.Point // 组码 13 (被测量的起点)
	MeasureEnd        core.Point // 组码 14 (被测量的终点)
}

func init() {
	Register("DIMENSION", func() Entity {
		return &Dimension{BaseEntity: BaseEntity{TypeName: "DIMENSION"}}
	})
}

func (d *Dimension) Parse(scanner *core.Scanner) error {
	parseTags(scanner, &d.BaseEntity, func(tag core.Tag) {
		switch tag.Code {
		case 2:
			d.BlockName = tag.AsString()
		case 3:
			d.StyleName = strings.ToUpper(tag.AsString())
		case 1:
			d.Text = tag.AsString()
		case 42:
			d.ActualMeasurement = tag.AsFloat()
		case 50:
			d.Angle = tag.AsFloat()
		case 10:
			d.DefPoint.X = tag.AsFloat()
		case 20:
			d.DefPoint.Y = tag.AsFloat()
		case 30:
			d.DefPoint.Z = tag.AsFloat()
		case 11:
			d.TextMidPoint.X = tag.AsFloat()
		case 21:
			d.TextMidPoint.Y = tag.AsFloat()
		case 13:
			d.MeasureStart.X = tag.AsFloat()
		case 23:
			d.MeasureStart.Y = tag.AsFloat()
		case 14:
			d.MeasureEnd.X = tag.AsFloat()
		case 24:
			d.MeasureEnd.Y = tag.AsFloat()
		case 70:
			// 组码 70 包含了很多信息，我们只需要低 3 位来判定类型
			d.DimType = tag.AsInt() & 0x07
		}
	})
	return nil
}

// GetExtensionPoints 计算标注线上的两个转角点
// 返回：对应 P13 的转角点, 对应 P14 的转角点
func (d *Dimension) GetExtensionPoints() (p13Corner, p14Corner core.Point) {
	rad := d.Angle * math.Pi / 180.0

	// 标注线的单位方向向量
	v := core.Point{X: math.Cos(rad), Y: math.Sin(rad)}

	// 向量 (P13 - P10) / (P14 - P10) 在方向向量 v 上的投影
	dot13 := d.MeasureStart.Sub(d.DefPoint).Dot(v)
	dot14 := d.MeasureEnd.Sub(d.DefPoint).Dot(v)

	p13Corner = d.DefPoint.Add(v.Mul(dot13))
	p14Corner = d.DefPoint.Add(v.Mul(dot14))
	p13Corner.Z, p14Corner.Z = d.DefPoint.Z, d.DefPoint.Z

	return
}

// GetCleanVal 正则提取数值
func (d *Dimension) GetCleanVal() float64 {
	val := d.ActualMeasurement
	if val <= 0 && d.Text != "" {
		cleanText := reFormat.ReplaceAllString(d.Text, "")
		if match := reNum.FindString(cleanText); match != "" {
			parsed, _ := strconv.ParseFloat(match, 64)
			val = parsed
		}
	}
	return val
}

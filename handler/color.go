package handler

import (
	"math"

	"github.com/zooyer/dxfview/entities"
)

// maxDistinctColorDiff 颜色和背景色的差值小于它时取反色
const maxDistinctColorDiff = 0x300000

// Distinct 保证颜色在背景上可见
func Distinct(color, background int) int {
	diff := color - background
	if diff < 0 {
		diff = -diff
	}
	if diff < maxDistinctColorDiff {
		return 0xFFFFFF - color
	}
	return color
}

// Color 颜色优先级：实体颜色 -> 图层颜色 -> 对比色，最后都要和背景色区分
func (c *Context) Color(e entities.Entity) int {
	color, ok := entityColor(e.Common())
	if !ok && c.Doc != nil {
		if layer, found := c.Doc.Layer(e.Layer()); found {
			color, ok = ACI(layer.ColorNumber)
		}
	}
	if !ok {
		color = c.Globals.ContrastColor
	}
	return Distinct(color, c.Globals.BackgroundColor)
}

func entityColor(b *entities.BaseEntity) (int, bool) {
	if b.HasTrueColor {
		return b.TrueColor, true
	}
	return ACI(b.ColorNumber)
}

var standardColors = [...]int{
	1: 0xFF0000,
	2: 0xFFFF00,
	3: 0x00FF00,
	4: 0x00FFFF,
	5: 0x0000FF,
	6: 0xFF00FF,
	7: 0xFFFFFF,
	8: 0x808080,
	9: 0xC0C0C0,
}

var greys = [...]int{0x333333, 0x505050, 0x696969, 0x828282, 0xBEBEBE, 0xFFFFFF}

// ACI 把 AutoCAD 颜色索引转换为 RGB，0 (随块) 和 256 (随层) 没有颜色；负数表示图层关闭，取绝对值
func ACI(index int) (int, bool) {
	if index < 0 {
		index = -index
	}
	switch {
	case index >= 1 && index <= 9:
		return standardColors[index], true
	case index >= 10 && index <= 249:
		return wheelColor(index), true
	case index >= 250 && index <= 255:
		return greys[index-250], true
	}
	return 0, false
}

// wheelColor 10~249 每 10 个一组对应 15° 色相，组内偶数为纯色、奇数为淡色，亮度逐级降低
func wheelColor(index int) int {
	var (
		hue        = float64(index/10-1) * 15
		shade      = index % 10
		saturation = 1.0
		values     = [...]float64{1, 0.8, 0.6, 0.5, 0.3}
		value      = values[shade/2]
	)
	if shade%2 == 1 {
		saturation = 0.5
	}

	return hsv(hue, saturation, value)
}

func hsv(h, s, v float64) int {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	to8 := func(f float64) int { return int(math.Round((f + m) * 255)) }
	return to8(r)<<16 | to8(g)<<8 | to8(b)
}

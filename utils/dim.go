package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/zooyer/dxfview"
	"github.com/zooyer/dxfview/entities"
)

func GetDimValue(doc *dxf.Document, dim *entities.Dimension) float64 {
	// 1. 如果有手动文字覆盖，直接按文字提取数字
	if dim.Text != "" && !strings.Contains(dim.Text, "<>") {
		return dim.GetCleanVal()
	}

	// 2. 查找标注样式定义的精度
	precision := GetDimPrecision(doc, dim)

	// 3. 根据精度进行四舍五入
	p := math.Pow(10, float64(precision))

	return math.Round(dim.ActualMeasurement*p) / p
}

// GetDimPrecision 标注样式的小数位数，没有样式时取整
func GetDimPrecision(doc *dxf.Document, dim *entities.Dimension) int {
	if style, ok := doc.DimStyles[strings.ToUpper(dim.StyleName)]; ok {
		return style.Precision
	}
	return 0
}

// GetDimText 标注显示的文字，<> 替换为测量值
func GetDimText(doc *dxf.Document, dim *entities.Dimension) string {
	value := strconv.FormatFloat(GetDimValue(doc, dim), 'f', GetDimPrecision(doc, dim), 64)
	switch {
	case dim.Text == "":
		return value
	case strings.Contains(dim.Text, "<>"):
		return strings.ReplaceAll(dim.Text, "<>", value)
	}
	return dim.Text
}

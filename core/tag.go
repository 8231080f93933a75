package core

import (
	"math"
	"strconv"
	"strings"
)

// Tag 代表 DXF 中的一组标签对
type Tag struct {
	Code  int
	Value string
}

// AsFloat 将值转换为 float64
func (t Tag) AsFloat() float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	return f
}

// AsInt 将值转换为 int，兼容 "1.0" 这类写法
func (t Tag) AsInt() int {
	v := strings.TrimSpace(t.Value)
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	f, _ := strconv.ParseFloat(v, 64)
	return int(f)
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// Point 代表三维空间中的一个点
type Point struct {
	X, Y, Z float64
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z} }

func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z} }

func (p Point) Mul(k float64) Point { return Point{X: p.X * k, Y: p.Y * k, Z: p.Z * k} }

func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }

// Cross 叉积
func (p Point) Cross(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

func (p Point) Len() float64 { return math.Sqrt(p.Dot(p)) }

// Norm 单位向量，零向量保持不变
func (p Point) Norm() Point {
	l := p.Len()
	if l == 0 {
		return p
	}
	return p.Mul(1 / l)
}

func (p Point) Dist(q Point) float64 { return p.Sub(q).Len() }

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}

// NewBBox 用一组点计算包围盒，没有点时返回 false
func NewBBox(points ...Point) (BBox, bool) {
	if len(points) == 0 {
		return BBox{}, false
	}
	box := BBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.Extend(p)
	}
	return box, true
}

// Extend 扩展包围盒以包含点 p
func (b BBox) Extend(p Point) BBox {
	b.Min.X, b.Max.X = math.Min(b.Min.X, p.X), math.Max(b.Max.X, p.X)
	b.Min.Y, b.Max.Y = math.Min(b.Min.Y, p.Y), math.Max(b.Max.Y, p.Y)
	b.Min.Z, b.Max.Z = math.Min(b.Min.Z, p.Z), math.Max(b.Max.Z, p.Z)
	return b
}

// Union 合并两个包围盒
func (b BBox) Union(o BBox) BBox {
	return b.Extend(o.Min).Extend(o.Max)
}

// Area 平面面积，用于挑选最小的房间轮廓
func (b BBox) Area() float64 {
	return (b.Max.X - b.Min.X) * (b.Max.Y - b.Min.Y)
}

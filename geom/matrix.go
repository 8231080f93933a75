// Package geom 提供场景需要的几何基础：仿射矩阵、曲线采样、轮廓和射线。
package geom

import (
	"math"

	"github.com/zooyer/dxfview/core"
)

// Matrix 行主序 4x4 仿射矩阵，m[r*4+c]
type Matrix [16]float64

func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Translation(v core.Point) Matrix {
	m := Identity()
	m[3], m[7], m[11] = v.X, v.Y, v.Z
	return m
}

func Scaling(v core.Point) Matrix {
	m := Identity()
	m[0], m[5], m[10] = v.X, v.Y, v.Z
	return m
}

// RotationZ 绕 Z 轴旋转，弧度
func RotationZ(rad float64) Matrix {
	cos, sin := math.Cos(rad), math.Sin(rad)
	m := Identity()
	m[0], m[1] = cos, -sin
	m[4], m[5] = sin, cos
	return m
}

// Mul 返回 m·n，先应用 n 再应用 m
func (m Matrix) Mul(n Matrix) Matrix {
	var r Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[i*4+k] * n[k*4+j]
			}
			r[i*4+j] = sum
		}
	}
	return r
}

func (m Matrix) Apply(p core.Point) core.Point {
	return core.Point{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		Y: m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		Z: m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
}

// ApplyAll 变换一组点，返回新切片
func (m Matrix) ApplyAll(points []core.Point) []core.Point {
	out := make([]core.Point, len(points))
	for i, p := range points {
		out[i] = m.Apply(p)
	}
	return out
}

func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Inverse 仿射矩阵求逆，不可逆时返回 false
func (m Matrix) Inverse() (Matrix, bool) {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[4], m[5], m[6]
	g, h, i := m[8], m[9], m[10]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if det == 0 || math.IsNaN(det) {
		return Matrix{}, false
	}
	inv := 1 / det

	r := Identity()
	r[0] = (e*i - f*h) * inv
	r[1] = (c*h - b*i) * inv
	r[2] = (b*f - c*e) * inv
	r[4] = (f*g - d*i) * inv
	r[5] = (a*i - c*g) * inv
	r[6] = (c*d - a*f) * inv
	r[8] = (d*h - e*g) * inv
	r[9] = (b*g - a*h) * inv
	r[10] = (a*e - b*d) * inv

	t := core.Point{X: m[3], Y: m[7], Z: m[11]}
	r[3] = -(r[0]*t.X + r[1]*t.Y + r[2]*t.Z)
	r[7] = -(r[4]*t.X + r[5]*t.Y + r[6]*t.Z)
	r[11] = -(r[8]*t.X + r[9]*t.Y + r[10]*t.Z)
	return r, true
}

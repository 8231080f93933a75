package utils

import (
	"math"

	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/dxfview/entities"
	"github.com/zooyer/dxfview/geom"
)

// InsertMatrix 块参照的变换矩阵：先移到块基点，再 缩放 -> 旋转 -> 平移
func InsertMatrix(ins *entities.Insert, base core.Point) geom.Matrix {
	rad := ins.Rotation * math.Pi / 180.0

	return geom.Translation(ins.InsertionPoint).
		Mul(geom.RotationZ(rad)).
		Mul(geom.Scaling(insertScale(ins.Scale))).
		Mul(geom.Translation(base.Mul(-1)))
}

// insertScale DXF 不允许缩放为 0，未设置的分量按 1 处理
func insertScale(scale core.Point) core.Point {
	for _, v := range []*float64{&scale.X, &scale.Y, &scale.Z} {
		if *v == 0 {
			*v = 1
		}
	}
	return scale
}

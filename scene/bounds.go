package scene

import (
	"fmt"

	"github.com/zooyer/dxfview/core"
)

// Range 单轴范围，Valid 为 false 表示还没有任何对象
type Range struct {
	Min, Max float64
	Valid    bool
}

func (r Range) Size() float64 {
	if !r.Valid {
		return 0
	}
	return r.Max - r.Min
}

func (r Range) extend(min, max float64) Range {
	if !r.Valid {
		return Range{Min: min, Max: max, Valid: true}
	}
	if min < r.Min {
		r.Min = min
	}
	if max > r.Max {
		r.Max = max
	}
	return r
}

func (r Range) String() string {
	if !r.Valid {
		return "[unset]"
	}
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

type Bounds3D struct {
	X, Y, Z Range
}

func (b Bounds3D) Valid() bool {
	return b.X.Valid && b.Y.Valid && b.Z.Valid
}

// Tracker 跟踪已绘制对象的整体包围盒，范围只会扩大
type Tracker struct {
	bounds Bounds3D
}

func (t *Tracker) Reset() {
	t.bounds = Bounds3D{}
}

func (t *Tracker) Update(box core.BBox) {
	t.bounds.X = t.bounds.X.extend(box.Min.X, box.Max.X)
	t.bounds.Y = t.bounds.Y.extend(box.Min.Y, box.Max.Y)
	t.bounds.Z = t.bounds.Z.extend(box.Min.Z, box.Max.Z)
}

// UpdateNode 用节点的世界包围盒更新，没有几何的节点不影响范围
func (t *Tracker) UpdateNode(s *Scene, id ID) {
	if box, ok := s.BBox(id); ok {
		t.Update(box)
	}
}

func (t *Tracker) Bounds() Bounds3D {
	return t.bounds
}

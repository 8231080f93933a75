package scene

import (
	"math"
	"testing"

	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/dxfview/geom"
	"github.com/zooyer/golib/xmath"
)

func TestScene_Tree(t *testing.T) {
	s := New()
	group := s.NewNode(KindGroup)
	group.Transform = geom.Translation(core.Point{X: 5, Y: 5})

	a := s.NewNode(KindLine)
	a.Points = []core.Point{{}, {X: 1}}
	b := s.NewNode(KindLine)
	b.Points = []core.Point{{}, {Y: 1}}

	s.AddChild(group.ID, a.ID)
	s.AddChild(group.ID, b.ID)
	s.Add(group.ID)
	s.Add(a.ID) // 已有父节点，不能再作为根节点

	if len(s.Roots()) != 1 || s.Roots()[0] != group.ID {
		t.Fatalf("根节点不符: %v", s.Roots())
	}
	if got := s.Children(group.ID); len(got) != 2 || got[0] != a.ID || got[1] != b.ID {
		t.Fatalf("子节点顺序不符: %v", got)
	}
	if a.Parent() != group.ID {
		t.Errorf("父节点不符: %v", a.Parent())
	}

	var endpoints []core.Point
	for _, id := range s.Children(group.ID) {
		endpoints = append(endpoints, s.WorldPoints(id)...)
	}
	expected := []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 6}}
	for i, p := range expected {
		if endpoints[i] != p {
			t.Errorf("第 %d 个端点不符: 期望 %+v, 得到 %+v", i, p, endpoints[i])
		}
	}

	box, ok := s.BBox(group.ID)
	if !ok || box.Min != (core.Point{X: 5, Y: 5}) || box.Max != (core.Point{X: 6, Y: 6}) {
		t.Errorf("包围盒不符: %+v %v", box, ok)
	}

	empty := s.NewNode(KindGroup)
	if _, ok = s.BBox(empty.ID); ok {
		t.Error("空组不应该有包围盒")
	}

	var visited int
	s.Walk(func(n *Node, world geom.Matrix) bool {
		visited++
		return true
	})
	if visited != 3 {
		t.Errorf("遍历节点数不符: %d", visited)
	}

	s.Reset()
	if s.Len() != 0 || len(s.Roots()) != 0 {
		t.Error("Reset 之后应该为空")
	}
}

func TestTracker_Monotonic(t *testing.T) {
	var tracker Tracker
	if tracker.Bounds().X.Valid {
		t.Fatal("初始范围应该未设置")
	}

	boxes := []core.BBox{
		{Min: core.Point{X: 0, Y: 0}, Max: core.Point{X: 10, Y: 5}},
		{Min: core.Point{X: 2, Y: -1, Z: -3}, Max: core.Point{X: 3, Y: 1}},
		{Min: core.Point{X: -4, Y: 2}, Max: core.Point{X: 1, Y: 20, Z: 7}},
	}

	prev := tracker.Bounds()
	for i, box := range boxes {
		tracker.Update(box)
		cur := tracker.Bounds()
		for axis, r := range map[string][2]Range{"x": {prev.X, cur.X}, "y": {prev.Y, cur.Y}, "z": {prev.Z, cur.Z}} {
			before, after := r[0], r[1]
			if before.Valid && (after.Min > before.Min || after.Max < before.Max) {
				t.Errorf("第 %d 次更新后 %s 轴范围缩小: %v -> %v", i, axis, before, after)
			}
		}
		prev = cur
	}

	got := tracker.Bounds()
	if got.X != (Range{Min: -4, Max: 10, Valid: true}) || got.Y != (Range{Min: -1, Max: 20, Valid: true}) || got.Z != (Range{Min: -3, Max: 7, Valid: true}) {
		t.Errorf("最终范围不符: %+v", got)
	}

	tracker.Reset()
	if tracker.Bounds() != (Bounds3D{}) {
		t.Errorf("Reset 之后应该未设置: %+v", tracker.Bounds())
	}
}

func TestOrthographicCamera(t *testing.T) {
	cam := NewOrthographicCamera(-50, 50, 25, -25, 0, 2000)
	cam.Position = core.Point{X: 100, Y: 200, Z: 1}
	cam.Zoom = 0.5

	world := core.Point{X: 130, Y: 190}
	ndc := cam.Project(world)
	if !xmath.Equal(ndc.X, 0.3, 1e-9) || !xmath.Equal(ndc.Y, -0.2, 1e-9) {
		t.Fatalf("投影结果不符: %+v", ndc)
	}

	ray := cam.Ray(ndc)
	if !xmath.Equal(ray.Origin.X, world.X, 1e-9) || !xmath.Equal(ray.Origin.Y, world.Y, 1e-9) {
		t.Errorf("射线起点不符: %+v", ray.Origin)
	}
	if ray.Direction != (core.Point{Z: -1}) {
		t.Errorf("射线方向不符: %+v", ray.Direction)
	}
}

func TestPerspectiveCamera(t *testing.T) {
	cam := NewPerspectiveCamera(90, 2, 0.1, 1000)
	cam.Position = core.Point{X: 1, Y: 1, Z: 10}

	world := core.Point{X: 6, Y: -2}
	ray := cam.Ray(cam.Project(world))

	// 射线应该经过原始点
	t0 := (world.Z - ray.Origin.Z) / ray.Direction.Z
	hit := ray.At(t0)
	if !xmath.Equal(hit.X, world.X, 1e-9) || !xmath.Equal(hit.Y, world.Y, 1e-9) {
		t.Errorf("射线没有经过原始点: %+v", hit)
	}
	if !xmath.Equal(ray.Direction.Len(), 1, 1e-12) || math.IsNaN(ray.Direction.X) {
		t.Errorf("方向应该是单位向量: %+v", ray.Direction)
	}
}

// Package scene 保存绘制结果：按编号寻址的节点树、包围盒跟踪和相机。
package scene

import (
	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/dxfview/geom"
)

// ID 节点在场景中的编号，创建时分配，一次绘制内不变
type ID int

// NoID 表示没有节点
const NoID ID = -1

type Kind int

const (
	KindGroup Kind = iota
	KindLine
	KindPoints
	KindMesh
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindLine:
		return "line"
	case KindPoints:
		return "points"
	case KindMesh:
		return "mesh"
	case KindText:
		return "text"
	}
	return "unknown"
}

type Node struct {
	ID     ID
	Kind   Kind
	Entity string // 来源实体类型
	Layer  string
	Color  int     // 0xRRGGBB
	Width  float64 // 线宽或点大小

	Points []core.Point // 局部坐标
	Faces  [][3]int     // 三角面，下标指向 Points

	Text     []string // 文字行
	TextSize float64

	Transform geom.Matrix // 相对父节点

	parent   ID
	children []ID
}

func (n *Node) Parent() ID { return n.parent }

type Scene struct {
	nodes []*Node
	roots []ID
}

func New() *Scene {
	return &Scene{}
}

// NewNode 创建一个游离节点，需要再通过 Add 或 AddChild 挂到树上
func (s *Scene) NewNode(kind Kind) *Node {
	n := &Node{
		ID:        ID(len(s.nodes)),
		Kind:      kind,
		Transform: geom.Identity(),
		parent:    NoID,
	}
	s.nodes = append(s.nodes, n)
	return n
}

// Add 把节点作为根节点加入场景
func (s *Scene) Add(id ID) {
	if n := s.Node(id); n != nil && n.parent == NoID {
		s.roots = append(s.roots, id)
	}
}

func (s *Scene) AddChild(parent, child ID) {
	p, c := s.Node(parent), s.Node(child)
	if p == nil || c == nil || c.parent != NoID || parent == child {
		return
	}
	c.parent = parent
	p.children = append(p.children, child)
}

func (s *Scene) Node(id ID) *Node {
	if id < 0 || int(id) >= len(s.nodes) {
		return nil
	}
	return s.nodes[id]
}

func (s *Scene) Roots() []ID {
	return s.roots
}

func (s *Scene) Children(id ID) []ID {
	if n := s.Node(id); n != nil {
		return n.children
	}
	return nil
}

// Len 已创建的节点数量，包含未挂载的节点
func (s *Scene) Len() int {
	return len(s.nodes)
}

func (s *Scene) Reset() {
	s.nodes, s.roots = nil, nil
}

// World 节点的世界变换矩阵
func (s *Scene) World(id ID) geom.Matrix {
	m := geom.Identity()
	for n := s.Node(id); n != nil; n = s.Node(n.parent) {
		m = n.Transform.Mul(m)
	}
	return m
}

// WorldPoints 节点自身的点变换到世界坐标，不含子节点
func (s *Scene) WorldPoints(id ID) []core.Point {
	n := s.Node(id)
	if n == nil {
		return nil
	}
	return s.World(id).ApplyAll(n.Points)
}

// BBox 节点及其所有子节点的世界包围盒，没有几何时返回 false
func (s *Scene) BBox(id ID) (core.BBox, bool) {
	n := s.Node(id)
	if n == nil {
		return core.BBox{}, false
	}
	return s.bbox(n, s.World(id))
}

func (s *Scene) bbox(n *Node, world geom.Matrix) (box core.BBox, ok bool) {
	if len(n.Points) > 0 {
		box, ok = core.NewBBox(world.ApplyAll(n.Points)...)
	}
	for _, id := range n.children {
		child := s.nodes[id]
		cb, cok := s.bbox(child, world.Mul(child.Transform))
		switch {
		case !cok:
		case !ok:
			box, ok = cb, true
		default:
			box = box.Union(cb)
		}
	}
	return
}

// Walk 深度优先遍历所有根节点，fn 返回 false 时不再进入该节点的子节点
func (s *Scene) Walk(fn func(n *Node, world geom.Matrix) bool) {
	for _, id := range s.roots {
		s.walk(s.nodes[id], s.nodes[id].Transform, fn)
	}
}

// WalkFrom 从指定节点开始遍历
func (s *Scene) WalkFrom(id ID, fn func(n *Node, world geom.Matrix) bool) {
	if n := s.Node(id); n != nil {
		s.walk(n, s.World(id), fn)
	}
}

func (s *Scene) walk(n *Node, world geom.Matrix, fn func(n *Node, world geom.Matrix) bool) {
	if !fn(n, world) {
		return
	}
	for _, id := range n.children {
		child := s.nodes[id]
		s.walk(child, world.Mul(child.Transform), fn)
	}
}

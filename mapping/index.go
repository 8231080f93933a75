package mapping

import (
	"math"
	"slices"

	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/dxfview/geom"
	"github.com/zooyer/dxfview/scene"
)

// Index 可映射的候选节点及其轮廓，按注册顺序保存
type Index struct {
	order  []scene.ID
	shapes map[scene.ID]*geom.Shape
}

func NewIndex() *Index {
	return &Index{shapes: make(map[scene.ID]*geom.Shape)}
}

func (x *Index) Add(id scene.ID, shape *geom.Shape) {
	if _, ok := x.shapes[id]; !ok {
		x.order = append(x.order, id)
	}
	x.shapes[id] = shape
}

func (x *Index) Shape(id scene.ID) (*geom.Shape, bool) {
	s, ok := x.shapes[id]
	return s, ok
}

func (x *Index) Candidates() []scene.ID {
	return x.order
}

func (x *Index) Len() int {
	return len(x.order)
}

func (x *Index) Reset() {
	x.order = nil
	clear(x.shapes)
}

// VertexHash 单个顶点的哈希，round(31*(31*x + y) + z)
func VertexHash(p core.Point) int64 {
	return int64(math.Round(31*(31*p.X+p.Y) + p.Z))
}

// Hash 顶点序列的多项式哈希，溢出时按 int64 回绕
func Hash(points []core.Point) int64 {
	h := int64(1)
	for _, p := range points {
		h = 31*h + VertexHash(p)
	}
	return h
}

type Entry struct {
	Vertices []core.Point // 原始顶点，用于哈希冲突时比较
	Shape    *geom.Shape  // 展开凸度后的轮廓
	Node     scene.ID
}

// Cache 原始顶点到展开轮廓的缓存
type Cache struct {
	entries map[int64][]Entry
	size    int
}

func NewCache() *Cache {
	return &Cache{entries: make(map[int64][]Entry)}
}

// Put 保存轮廓，相同顶点序列的旧记录被覆盖
func (c *Cache) Put(vertices []core.Point, shape *geom.Shape, node scene.ID) {
	key := Hash(vertices)
	entry := Entry{Vertices: slices.Clone(vertices), Shape: shape, Node: node}

	bucket := c.entries[key]
	for i := range bucket {
		if slices.Equal(bucket[i].Vertices, vertices) {
			bucket[i] = entry
			return
		}
	}
	c.entries[key] = append(bucket, entry)
	c.size++
}

func (c *Cache) Get(vertices []core.Point) (Entry, bool) {
	for _, e := range c.entries[Hash(vertices)] {
		if slices.Equal(e.Vertices, vertices) {
			return e, true
		}
	}
	return Entry{}, false
}

func (c *Cache) Len() int {
	return c.size
}

func (c *Cache) Reset() {
	clear(c.entries)
	c.size = 0
}

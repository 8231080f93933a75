package mapping

import (
	"sort"

	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/dxfview/geom"
	"github.com/zooyer/dxfview/scene"
)

// DefaultTolerance 绘制完成前使用的拾取容差
const DefaultTolerance = 1.0

// Match 房间映射的匹配方式
type Match int

const (
	MatchNone    Match = iota // 没有可显示的几何
	MatchShape                // 命中已绘制的轮廓
	MatchCached               // 使用多段线缓存的凸度轮廓
	MatchLiteral              // 直接用映射自身的顶点
)

func (m Match) String() string {
	switch m {
	case MatchNone:
		return "none"
	case MatchShape:
		return "shape"
	case MatchCached:
		return "cached"
	case MatchLiteral:
		return "literal"
	}
	return "unknown"
}

type Result struct {
	Shape *geom.Shape // 世界坐标
	Match Match
	Node  scene.ID // 命中或缓存对应的节点，字面多边形为 NoID
}

// Hit 射线与候选节点的一次相交
type Hit struct {
	Node     scene.ID
	Distance float64
	Point    core.Point
}

type Resolver struct {
	Scene     *scene.Scene
	Index     *Index
	Cache     *Cache
	Tolerance float64
}

func NewResolver(sc *scene.Scene, index *Index, cache *Cache, tolerance float64) *Resolver {
	return &Resolver{Scene: sc, Index: index, Cache: cache, Tolerance: tolerance}
}

// MapToRoom 返回映射对应的轮廓，无法显示时返回 nil
func (r *Resolver) MapToRoom(m RoomMapping, cam scene.Camera) *geom.Shape {
	return r.Resolve(m, cam).Shape
}

func (r *Resolver) Resolve(m RoomMapping, cam scene.Camera) Result {
	none := Result{Match: MatchNone, Node: scene.NoID}

	switch {
	case m.MappingVertex != nil:
		if id, ok := r.Pick(m.MappingVertex.X, m.MappingVertex.Y, cam); ok {
			if res, found := r.shapeOf(id); found {
				return res
			}
		}
		return none
	case len(m.Vertices) > 0:
		if id, ok := r.pickAll(m.Vertices, cam); ok {
			if res, found := r.shapeOf(id); found {
				return res
			}
		}

		points := m.Points()
		if r.Cache != nil {
			// 缓存按多段线自身的顶点建立，轮廓与映射顶点在同一坐标系，原样返回
			if entry, ok := r.Cache.Get(points); ok {
				return Result{Shape: entry.Shape, Match: MatchCached, Node: entry.Node}
			}
		}
		return Result{Shape: geom.Polygon(points), Match: MatchLiteral, Node: scene.NoID}
	}
	return none
}

func (r *Resolver) shapeOf(id scene.ID) (Result, bool) {
	shape, ok := r.Index.Shape(id)
	if !ok {
		return Result{}, false
	}
	return Result{Shape: shape.Transformed(r.Scene.World(id)), Match: MatchShape, Node: id}, true
}

// pickAll 最多取前三个顶点，未命中的顶点忽略，命中不同节点时放弃
func (r *Resolver) pickAll(vertices []Vertex, cam scene.Camera) (scene.ID, bool) {
	first := scene.NoID
	for _, v := range vertices[:min(3, len(vertices))] {
		id, ok := r.Pick(v.X, v.Y, cam)
		if !ok {
			continue
		}
		if first == scene.NoID {
			first = id
		} else if first != id {
			return scene.NoID, false
		}
	}
	return first, first != scene.NoID
}

// Pick 拾取经过 (x, y) 的节点，多个节点距离不超过最近距离时取面积最小的
func (r *Resolver) Pick(x, y float64, cam scene.Camera) (scene.ID, bool) {
	ndc := cam.Project(core.Point{X: x, Y: y})
	hits := r.Intersect(cam.Ray(ndc))
	if len(hits) == 0 {
		return scene.NoID, false
	}

	best := hits[0]
	nearest := best.Distance
	minSize := r.area(best.Node)
	for _, hit := range hits[1:] {
		if hit.Distance > nearest {
			continue
		}
		if size := r.area(hit.Node); size < minSize {
			minSize, best = size, hit
		}
	}
	return best.Node, true
}

func (r *Resolver) area(id scene.ID) float64 {
	box, _ := r.Scene.BBox(id)
	return box.Area()
}

// Intersect 射线与所有候选节点（含子节点）的线段求交，按距离升序
func (r *Resolver) Intersect(ray geom.Ray) []Hit {
	tolerance := r.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	thresholdSq := tolerance * tolerance

	var hits []Hit
	for _, id := range r.Index.Candidates() {
		r.Scene.WalkFrom(id, func(n *scene.Node, world geom.Matrix) bool {
			if n.Kind != scene.KindLine {
				return true
			}
			points := world.ApplyAll(n.Points)
			for i := 0; i+1 < len(points); i++ {
				distSq, onRay, onSegment := ray.DistanceSqToSegment(points[i], points[i+1])
				if distSq > thresholdSq {
					continue
				}
				hits = append(hits, Hit{
					Node:     n.ID,
					Distance: ray.Origin.Dist(onRay),
					Point:    onSegment,
				})
			}
			return true
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

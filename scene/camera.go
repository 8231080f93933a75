package scene

import (
	"math"

	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/dxfview/geom"
)

// Camera 沿 -Z 方向观察的相机
type Camera interface {
	// Project 世界坐标转换为标准化设备坐标
	Project(p core.Point) core.Point
	// Ray 经过标准化设备坐标 (x, y) 的拾取射线
	Ray(ndc core.Point) geom.Ray
}

type OrthographicCamera struct {
	Left, Right, Top, Bottom float64
	Near, Far                float64
	Zoom                     float64
	Position                 core.Point
}

func NewOrthographicCamera(left, right, top, bottom, near, far float64) *OrthographicCamera {
	return &OrthographicCamera{
		Left:   left,
		Right:  right,
		Top:    top,
		Bottom: bottom,
		Near:   near,
		Far:    far,
		Zoom:   1,
	}
}

// frustum 缩放后的视锥范围
func (c *OrthographicCamera) frustum() (left, right, top, bottom float64) {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1
	}
	dx := (c.Right - c.Left) / (2 * zoom)
	dy := (c.Top - c.Bottom) / (2 * zoom)
	cx := (c.Right + c.Left) / 2
	cy := (c.Top + c.Bottom) / 2
	return cx - dx, cx + dx, cy + dy, cy - dy
}

func (c *OrthographicCamera) Project(p core.Point) core.Point {
	left, right, top, bottom := c.frustum()
	v := p.Sub(c.Position)
	return core.Point{
		X: 2*(v.X-left)/(right-left) - 1,
		Y: 2*(v.Y-bottom)/(top-bottom) - 1,
		Z: (-2*v.Z - (c.Far + c.Near)) / (c.Far - c.Near),
	}
}

// Ray 起点在相机所在平面上，方向固定为 -Z
func (c *OrthographicCamera) Ray(ndc core.Point) geom.Ray {
	left, right, top, bottom := c.frustum()
	return geom.Ray{
		Origin: core.Point{
			X: c.Position.X + left + (ndc.X+1)/2*(right-left),
			Y: c.Position.Y + bottom + (ndc.Y+1)/2*(top-bottom),
			Z: c.Position.Z,
		},
		Direction: core.Point{Z: -1},
	}
}

type PerspectiveCamera struct {
	FOV       float64 // 垂直视角，角度制
	Aspect    float64
	Near, Far float64
	Zoom      float64
	Position  core.Point
}

func NewPerspectiveCamera(fov, aspect, near, far float64) *PerspectiveCamera {
	return &PerspectiveCamera{FOV: fov, Aspect: aspect, Near: near, Far: far, Zoom: 1}
}

func (c *PerspectiveCamera) tangents() (tx, ty float64) {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1
	}
	ty = math.Tan(c.FOV*math.Pi/360) / zoom
	return ty * c.Aspect, ty
}

func (c *PerspectiveCamera) Project(p core.Point) core.Point {
	tx, ty := c.tangents()
	v := p.Sub(c.Position)
	depth := -v.Z
	if depth == 0 {
		depth = math.SmallestNonzeroFloat64
	}
	f, n := c.Far, c.Near
	return core.Point{
		X: v.X / depth / tx,
		Y: v.Y / depth / ty,
		Z: ((f+n)/(f-n)*depth - 2*f*n/(f-n)) / depth,
	}
}

// Ray 起点为相机位置
func (c *PerspectiveCamera) Ray(ndc core.Point) geom.Ray {
	tx, ty := c.tangents()
	dir := core.Point{X: ndc.X * tx, Y: ndc.Y * ty, Z: -1}
	return geom.Ray{Origin: c.Position, Direction: dir.Norm()}
}

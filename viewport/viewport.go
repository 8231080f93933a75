// Package viewport 根据绘制范围计算二维视口和正交相机。
package viewport

import (
	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/dxfview/scene"
)

// DefaultZoom 初始缩放，四周留出一点空白
const DefaultZoom = 0.9

const (
	near = 0
	far  = 2000
)

// Bounds2D 二维视口，Left/Top 是 X/Y 方向的最小值
type Bounds2D struct {
	Left, Top     float64
	Width, Height float64
}

// Center 视口中心
func (b Bounds2D) Center() core.Point {
	return core.Point{X: b.Left + b.Width/2, Y: b.Top + b.Height/2}
}

// BBox 视口对应的平面包围盒
func (b Bounds2D) BBox() core.BBox {
	return core.BBox{
		Min: core.Point{X: b.Left, Y: b.Top},
		Max: core.Point{X: b.Left + b.Width, Y: b.Top + b.Height},
	}
}

func To2D(bounds scene.Bounds3D) Bounds2D {
	return Bounds2D{
		Left:   bounds.X.Min,
		Top:    bounds.Y.Min,
		Width:  bounds.X.Size(),
		Height: bounds.Y.Size(),
	}
}

// Fit 把视口按宽高比向两侧扩展，中心不变
func Fit(bounds scene.Bounds3D, aspect float64) Bounds2D {
	vp := To2D(bounds)
	if aspect <= 0 || (vp.Width == 0 && vp.Height == 0) {
		return vp
	}

	switch {
	case vp.Width < vp.Height*aspect:
		width := vp.Height * aspect
		vp.Left -= (width - vp.Width) / 2
		vp.Width = width
	case vp.Width > vp.Height*aspect:
		height := vp.Width / aspect
		vp.Top -= (height - vp.Height) / 2
		vp.Height = height
	}
	return vp
}

// Camera 对准视口中心的正交相机
func Camera(vp Bounds2D) *scene.OrthographicCamera {
	cam := scene.NewOrthographicCamera(-vp.Width/2, vp.Width/2, vp.Height/2, -vp.Height/2, near, far)
	center := vp.Center()
	cam.Position = core.Point{X: center.X, Y: center.Y, Z: 1}
	cam.Zoom = DefaultZoom
	return cam
}

// Zoom 按相机缩放换算成实际可见的范围，中心不变
func (b Bounds2D) Zoom(zoom float64) Bounds2D {
	if zoom <= 0 {
		return b
	}
	c := b.Center()
	w, h := b.Width/zoom, b.Height/zoom
	return Bounds2D{Left: c.X - w/2, Top: c.Y - h/2, Width: w, Height: h}
}

// Package export 把场景和房间映射导出为静态图片。
package export

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/dxfview/geom"
	"github.com/zooyer/dxfview/handler"
	"github.com/zooyer/dxfview/scene"
	"github.com/zooyer/dxfview/utils"
	"github.com/zooyer/dxfview/viewport"
)

const (
	roomOpacity  = 0.5
	labelDivisor = 25
	fontFamily   = "sans-serif"
)

// Room 已经解析出轮廓的房间，轮廓为世界坐标
type Room struct {
	Name     string
	Category int
	Shape    *geom.Shape
}

type Options struct {
	Width, Height int // 像素
	Background    int
	Contrast      int // 房间名称颜色
	Divisions     int
	Colors        map[int]int // 房间类别颜色
	Font          font.Face   // 测量房间名称宽度
	DefaultColor  int         // 没有类别颜色时使用
}

func (o Options) font() font.Face {
	if o.Font == nil {
		return basicfont.Face7x13
	}
	return o.Font
}

func (o Options) divisions() int {
	if o.Divisions < 1 {
		return 16
	}
	return o.Divisions
}

type writer struct {
	w   *bufio.Writer
	vp  viewport.Bounds2D
	px  float64 // 一个像素对应的世界长度
	err error
}

func (w *writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

// xy 世界坐标转 SVG 坐标，Y 轴向下
func (w *writer) xy(p core.Point) (float64, float64) {
	return p.X, 2*w.vp.Top + w.vp.Height - p.Y
}

func (w *writer) points(points []core.Point) string {
	var b strings.Builder
	for i, p := range points {
		if i > 0 {
			b.WriteByte(' ')
		}
		x, y := w.xy(p)
		fmt.Fprintf(&b, "%g,%g", x, y)
	}
	return b.String()
}

func color(c int) string {
	return fmt.Sprintf("#%06X", c&0xFFFFFF)
}

// SVG 输出视口范围内的场景和房间映射
func SVG(out io.Writer, sc *scene.Scene, vp viewport.Bounds2D, rooms []Room, opts Options) error {
	if vp.Width <= 0 || vp.Height <= 0 {
		return fmt.Errorf("export: empty viewport %+v", vp)
	}
	if opts.Width < 1 || opts.Height < 1 {
		return fmt.Errorf("export: invalid image size %dx%d", opts.Width, opts.Height)
	}

	w := &writer{w: bufio.NewWriter(out), vp: vp, px: vp.Width / float64(opts.Width)}
	w.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%g %g %g %g" preserveAspectRatio="xMidYMid meet">`+"\n",
		opts.Width, opts.Height, vp.Left, vp.Top, vp.Width, vp.Height)
	w.printf(`<rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>`+"\n", vp.Left, vp.Top, vp.Width, vp.Height, color(opts.Background))

	view := vp.BBox()
	for _, root := range sc.Roots() {
		box, ok := sc.BBox(root)
		if !ok || utils.IsSeparate(box, view, 0) {
			continue
		}
		sc.WalkFrom(root, func(n *scene.Node, world geom.Matrix) bool {
			w.node(n, world)
			return true
		})
	}

	for _, room := range rooms {
		w.room(room, opts)
	}

	w.printf("</svg>\n")
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

func (w *writer) node(n *scene.Node, world geom.Matrix) {
	switch n.Kind {
	case scene.KindLine:
		if len(n.Points) < 2 {
			return
		}
		w.printf(`<polyline points="%s" fill="none" stroke="%s" stroke-width="%g" vector-effect="non-scaling-stroke"/>`+"\n",
			w.points(world.ApplyAll(n.Points)), color(n.Color), math.Max(1, n.Width))
	case scene.KindPoints:
		r := math.Max(n.Width, 1) * w.px
		for _, p := range world.ApplyAll(n.Points) {
			x, y := w.xy(p)
			w.printf(`<circle cx="%g" cy="%g" r="%g" fill="%s"/>`+"\n", x, y, r, color(n.Color))
		}
	case scene.KindMesh:
		points := world.ApplyAll(n.Points)
		for _, f := range n.Faces {
			tri := []core.Point{points[f[0]], points[f[1]], points[f[2]]}
			w.printf(`<polygon points="%s" fill="%s"/>`+"\n", w.points(tri), color(n.Color))
		}
	case scene.KindText:
		w.text(n, world)
	}
}

// text 文字按节点的旋转和缩放摆放，第 i 行在局部 Y=-i*size 处
func (w *writer) text(n *scene.Node, world geom.Matrix) {
	scale := math.Hypot(world[0], world[4])
	angle := math.Atan2(world[4], world[0]) * 180 / math.Pi
	size := n.TextSize * scale
	if size <= 0 {
		return
	}

	for i, line := range n.Text {
		if line == "" {
			continue
		}
		x, y := w.xy(world.Apply(core.Point{Y: -float64(i) * n.TextSize}))
		w.printf(`<text x="%g" y="%g" font-family="%s" font-size="%g" fill="%s" transform="rotate(%g %g %g)">%s</text>`+"\n",
			x, y, fontFamily, size, color(n.Color), -angle, x, y, html.EscapeString(line))
	}
}

// room 半透明填充房间轮廓，名称居中，字号为轮廓高度的 1/25
func (w *writer) room(room Room, opts Options) {
	if room.Shape == nil {
		return
	}
	points := room.Shape.Points(opts.divisions())
	box, ok := core.NewBBox(points...)
	if !ok {
		return
	}

	fill, ok := opts.Colors[room.Category]
	if !ok {
		fill = opts.DefaultColor
	}
	w.printf(`<polygon points="%s" fill="%s" fill-opacity="%g" stroke="none"/>`+"\n", w.points(points), color(fill), roomOpacity)

	if room.Name == "" {
		return
	}
	size := (box.Max.Y - box.Min.Y) / labelDivisor
	if size <= 0 {
		return
	}
	width := handler.MeasureText(opts.font(), room.Name, size)
	x, y := w.xy(core.Point{
		X: box.Min.X + (box.Max.X-box.Min.X)/2 - width/2,
		Y: box.Min.Y + (box.Max.Y-box.Min.Y)/2 - size/2,
	})
	w.printf(`<text x="%g" y="%g" font-family="%s" font-size="%g" fill="%s">%s</text>`+"\n",
		x, y, fontFamily, size, color(opts.Contrast), html.EscapeString(room.Name))
}

package handler

import (
	"math"

	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/dxfview/entities"
	"github.com/zooyer/dxfview/geom"
	"github.com/zooyer/dxfview/scene"
	"github.com/zooyer/dxfview/utils"
)

func init() {
	Register("DIMENSION", HandlerFunc(processDimension))
}

// processDimension 优先绘制标注的匿名块，块不存在时按定义点合成尺寸线和文字
func processDimension(e entities.Entity, ctx *Context) (scene.ID, error) {
	d, ok := e.(*entities.Dimension)
	if !ok {
		return unexpected(e)
	}

	group := ctx.newNode(scene.KindGroup, e)

	if d.BlockName != "" {
		if block, found := ctx.Doc.Block(d.BlockName); found {
			// 匿名块中的坐标已经是世界坐标
			if err := ctx.expand(e, group.ID, block.Entities); err != nil {
				return scene.NoID, err
			}
			return group.ID, nil
		}
	}

	p13, p14 := d.GetExtensionPoints()
	segments := [][2]core.Point{
		{d.MeasureStart, p13},
		{d.MeasureEnd, p14},
		{p13, p14},
	}
	for _, seg := range segments {
		line := ctx.newNode(scene.KindLine, e)
		line.Width = 1
		line.Points = []core.Point{seg[0], seg[1]}
		ctx.Scene.AddChild(group.ID, line.ID)
	}

	height := dimTextHeight(ctx, d)
	label, width := textNode(ctx, e, []string{utils.GetDimText(ctx.Doc, d)}, height*textScale)
	position, err := AlignText(5, d.TextMidPoint, width, height)
	if err != nil {
		return scene.NoID, err
	}
	label.Transform = geom.Translation(position).Mul(rotateAbout(d.Angle, width, height))
	ctx.Scene.AddChild(group.ID, label.ID)

	return group.ID, nil
}

// dimTextHeight 标注文字高度取 DIMSCALE 倍的 2.5 个单位
func dimTextHeight(ctx *Context, d *entities.Dimension) float64 {
	scale := 1.0
	if style, ok := ctx.Doc.DimStyles[d.StyleName]; ok && style.Scale > 0 {
		scale = style.Scale
	}
	return 2.5 * scale
}

// rotateAbout 绕文字中心旋转
func rotateAbout(deg, width, height float64) geom.Matrix {
	if deg == 0 {
		return geom.Identity()
	}
	center := core.Point{X: width / 2, Y: height / 2}
	return geom.Translation(center).
		Mul(geom.RotationZ(deg * math.Pi / 180)).
		Mul(geom.Translation(center.Mul(-1)))
}

package handler

import (
	"math"
	"strconv"

	"golang.org/x/image/font"

	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/dxfview/entities"
	"github.com/zooyer/dxfview/geom"
	"github.com/zooyer/dxfview/scene"
)

func init() {
	Register("MTEXT", HandlerFunc(processMText))
	Register("ATTRIB", HandlerFunc(processAttrib))
}

// textScale 字形大小相对名义字高的比例
const textScale = 4.0 / 5.0

// MeasureText 按字体度量计算文字宽度，size 为字高
func MeasureText(face font.Face, line string, size float64) float64 {
	if face == nil || line == "" {
		return 0
	}
	height := float64(face.Metrics().Height) / 64
	if height == 0 {
		return 0
	}
	advance := float64(font.MeasureString(face, line)) / 64
	return advance * size / height
}

// textNode 文字节点，局部原点在第一行左下角，Points 为文字所占矩形
func textNode(ctx *Context, e entities.Entity, lines []string, size float64) (*scene.Node, float64) {
	var width float64
	for _, line := range lines {
		width = math.Max(width, MeasureText(ctx.Font, line, size))
	}

	bottom := -float64(len(lines)-1) * size
	n := ctx.newNode(scene.KindText, e)
	n.Text = lines
	n.TextSize = size
	n.Points = []core.Point{{Y: bottom}, {X: width, Y: bottom}, {X: width, Y: size}, {Y: size}}
	return n, width
}

func processMText(e entities.Entity, ctx *Context) (scene.ID, error) {
	m, ok := e.(*entities.MText)
	if !ok {
		return unexpected(e)
	}

	n, width := textNode(ctx, e, m.Lines(), m.NominalTextHeight*textScale)

	position, err := AlignText(m.AttachmentPoint, m.Position, width, m.NominalTextHeight)
	if err != nil {
		return scene.NoID, malformed(e, "%v", err)
	}
	n.Transform = geom.Translation(position)
	return n.ID, nil
}

// AlignText 按 1~9 的附着点计算文字原点，行优先：上/中/下 × 左/中/右
func AlignText(attachment int, p core.Point, width, height float64) (core.Point, error) {
	if attachment < 1 || attachment > 9 {
		return core.Point{}, &AttachmentError{Value: attachment}
	}

	row, col := (attachment-1)/3, (attachment-1)%3
	out := p
	out.X -= width * float64(col) / 2
	switch row {
	case 0:
		out.Y -= height
	case 1:
		out.Y -= height / 2
	}
	return out, nil
}

type AttachmentError struct {
	Value int
}

func (e *AttachmentError) Error() string {
	return "attachmentPoint with value " + strconv.Itoa(e.Value) + " is unknown"
}

// processAttrib 属性值按插入点左下对齐，支持旋转
func processAttrib(e entities.Entity, ctx *Context) (scene.ID, error) {
	a, ok := e.(*entities.Attrib)
	if !ok {
		return unexpected(e)
	}

	n, _ := textNode(ctx, e, []string{a.Text}, a.Height*textScale)
	n.Transform = geom.Translation(a.Location).Mul(geom.RotationZ(a.Rotation * math.Pi / 180))
	return n.ID, nil
}

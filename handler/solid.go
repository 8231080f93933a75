package handler

import (
	"slices"

	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/dxfview/entities"
	"github.com/zooyer/dxfview/scene"
)

func init() {
	Register("SOLID", HandlerFunc(processSolid))
	Register("3DFACE", HandlerFunc(processFace))
}

// processSolid 四边形拆成两个三角形，按叉积方向决定顶点顺序使法向朝 +Z
func processSolid(e entities.Entity, ctx *Context) (scene.ID, error) {
	s, ok := e.(*entities.Solid)
	if !ok {
		return unexpected(e)
	}

	n := ctx.newNode(scene.KindMesh, e)
	n.Points = slices.Clone(s.Corners[:])
	n.Faces = SolidFaces(s.Corners)
	return n.ID, nil
}

// SolidFaces SOLID 的两个三角面
func SolidFaces(corners [4]core.Point) [][3]int {
	cross := corners[1].Sub(corners[0]).Cross(corners[2].Sub(corners[0]))
	if cross.Z < 0 {
		return [][3]int{{2, 1, 0}, {2, 3, 0}}
	}
	return [][3]int{{0, 1, 2}, {1, 3, 2}}
}

// processFace 平面多边形按扇形三角化，不参与房间映射
func processFace(e entities.Entity, ctx *Context) (scene.ID, error) {
	f, ok := e.(*entities.Face3D)
	if !ok {
		return unexpected(e)
	}
	if len(f.Vertices) < 3 {
		return scene.NoID, malformed(e, "has %d vertices", len(f.Vertices))
	}

	n := ctx.newNode(scene.KindMesh, e)
	n.Points = slices.Clone(f.Vertices)
	for i := 1; i+1 < len(f.Vertices); i++ {
		n.Faces = append(n.Faces, [3]int{0, i, i + 1})
	}
	return n.ID, nil
}

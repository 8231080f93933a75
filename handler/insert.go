package handler

import (
	"errors"

	"github.com/zooyer/dxfview/entities"
	"github.com/zooyer/dxfview/scene"
	"github.com/zooyer/dxfview/utils"
)

func init() {
	Register("INSERT", HandlerFunc(processInsert))
}

// processInsert 块参照展开为组节点，块内实体按声明顺序作为子节点
func processInsert(e entities.Entity, ctx *Context) (scene.ID, error) {
	ins, ok := e.(*entities.Insert)
	if !ok {
		return unexpected(e)
	}

	block, ok := ctx.Doc.Block(ins.BlockName)
	if !ok {
		return scene.NoID, malformed(e, "references unknown block '%s'", ins.BlockName)
	}

	group := ctx.newNode(scene.KindGroup, e)
	group.Transform = utils.InsertMatrix(ins, block.Origin)

	if err := ctx.expand(e, group.ID, block.Entities); err != nil {
		return scene.NoID, err
	}

	// 属性的坐标是父级坐标，需要换算到组内
	inverse, ok := group.Transform.Inverse()
	if !ok {
		return group.ID, nil
	}
	for _, attr := range ins.Attributes {
		if !attr.Visible() {
			continue
		}
		id, err := processAttrib(attr, ctx)
		if err != nil {
			return scene.NoID, err
		}
		n := ctx.Scene.Node(id)
		n.Transform = inverse.Mul(n.Transform)
		ctx.Scene.AddChild(group.ID, id)
	}

	return group.ID, nil
}

// expand 处理块内实体并挂到 parent 下，不支持的类型记录后跳过
func (c *Context) expand(owner entities.Entity, parent scene.ID, list []entities.Entity) error {
	if c.depth >= maxDepth {
		return malformed(owner, "nested deeper than %d blocks", maxDepth)
	}
	c.depth++
	defer func() { c.depth-- }()

	for _, child := range list {
		id, err := Process(child, c)
		if errors.Is(err, ErrUnsupportedEntity) {
			c.Log.Printf("skip block entity: %v", err)
			continue
		}
		if err != nil {
			return err
		}
		c.Scene.AddChild(parent, id)
	}
	return nil
}

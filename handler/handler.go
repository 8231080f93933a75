// Package handler 把解析好的 DXF 实体转换成场景节点，每种实体类型一个处理器。
package handler

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/zooyer/dxfview"
	"github.com/zooyer/dxfview/entities"
	"github.com/zooyer/dxfview/mapping"
	"github.com/zooyer/dxfview/scene"
)

var (
	// ErrUnsupportedEntity 没有对应的处理器，调用方记录后跳过
	ErrUnsupportedEntity = errors.New("entity type is not supported")
	// ErrMalformedEntity 实体数据不合法，终止本次绘制
	ErrMalformedEntity = errors.New("malformed entity")
)

// maxDepth 块嵌套的最大深度，超过时认为块引用了自身
const maxDepth = 32

type Handler interface {
	Process(e entities.Entity, ctx *Context) (scene.ID, error)
}

type HandlerFunc func(e entities.Entity, ctx *Context) (scene.ID, error)

func (f HandlerFunc) Process(e entities.Entity, ctx *Context) (scene.ID, error) {
	return f(e, ctx)
}

var handlers = map[string]Handler{}

// Register 注册实体处理器，类型名不区分大小写
func Register(typeName string, h Handler) {
	handlers[strings.ToUpper(typeName)] = h
}

func Get(typeName string) (Handler, bool) {
	h, ok := handlers[strings.ToUpper(strings.TrimSpace(typeName))]
	return h, ok
}

// Types 已注册的实体类型，按名称排序
func Types() []string {
	types := make([]string, 0, len(handlers))
	for t := range handlers {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Process 按实体类型分发到处理器，返回的节点还没有挂到场景树上
func Process(e entities.Entity, ctx *Context) (scene.ID, error) {
	h, ok := Get(e.Type())
	if !ok {
		return scene.NoID, fmt.Errorf("%w: entity type '%s'", ErrUnsupportedEntity, e.Type())
	}
	return h.Process(e, ctx)
}

// Context 一次绘制中所有处理器共享的状态
type Context struct {
	Doc     *dxf.Document
	Scene   *scene.Scene
	Globals *Globals
	Font    font.Face
	Index   *mapping.Index
	Cache   *mapping.Cache
	Log     *log.Logger

	depth int
}

// NewContext 创建绘制上下文，未指定的字段使用默认值
func NewContext(doc *dxf.Document, sc *scene.Scene, globals *Globals) *Context {
	if globals == nil {
		globals = DefaultGlobals()
	}
	return &Context{
		Doc:     doc,
		Scene:   sc,
		Globals: globals,
		Font:    basicfont.Face7x13,
		Index:   mapping.NewIndex(),
		Cache:   mapping.NewCache(),
		Log:     log.Default(),
	}
}

// newNode 创建节点并填充实体通用属性
func (c *Context) newNode(kind scene.Kind, e entities.Entity) *scene.Node {
	n := c.Scene.NewNode(kind)
	n.Entity = e.Type()
	n.Layer = e.Layer()
	n.Color = c.Color(e)
	return n
}

func malformed(e entities.Entity, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrMalformedEntity, e.Type(), fmt.Sprintf(format, args...))
}

// unexpected 注册表里的类型和实体结构体对不上
func unexpected(e entities.Entity) (scene.ID, error) {
	return scene.NoID, malformed(e, "has unexpected type %T", e)
}

// widthOf 线宽，没有厚度时为 1
func widthOf(thickness float64) float64 {
	if thickness == 0 {
		return 1
	}
	return thickness
}

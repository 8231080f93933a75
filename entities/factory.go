package entities

import (
	"strings"

	"github.com/zooyer/dxfview/core"
)

// Entity 是一切几何实体的接口
type Entity interface {
	Parse(scanner *core.Scanner) error
	Type() string
	Layer() string
	Common() *BaseEntity
}

// BaseEntity 存放所有实体通用的属性（如 Layer, Color, Handle）
type BaseEntity struct {
	TypeName     string
	LayerName    string
	LineTypeName string
	Handle       string
	ColorNumber  int // 组码 62，ACI 颜色索引，0/256 表示随块/随层
	TrueColor    int // 组码 420，24 位真彩色
	HasTrueColor bool
}

func (b *BaseEntity) Type() string { return b.TypeName }

func (b *BaseEntity) Layer() string { return b.LayerName }

func (b *BaseEntity) Common() *BaseEntity { return b }

// parseCommon 处理所有实体共有的组码，返回是否已处理
func (b *BaseEntity) parseCommon(t core.Tag) bool {
	switch t.Code {
	case 5:
		b.Handle = t.AsString()
	case 6:
		b.LineTypeName = t.AsString()
	case 8:
		b.LayerName = t.AsString()
	case 62:
		b.ColorNumber = t.AsInt()
	case 420:
		b.TrueColor, b.HasTrueColor = t.AsInt()&0xFFFFFF, true
	default:
		return false
	}
	return true
}

// parseTags 逐个读取标签直到下一个 0 组码，scanner 停在下一个实体的起始标签上
func parseTags(s *core.Scanner, base *BaseEntity, fn func(t core.Tag)) {
	for {
		t := s.LastTag
		if t.Code != 0 && !base.parseCommon(t) {
			fn(t)
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
}

// EntityFactory 定义了如何从标签流中创建一个实体
type EntityFactory func() Entity

var registry = map[string]EntityFactory{}

// Register 允许以后动态扩展新的实体类型
func Register(typeName string, factory EntityFactory) {
	registry[typeName] = factory
}

// CreateEntity 根据实体名称生产对应的结构体，未注册的类型返回 Unknown
func CreateEntity(typeName string) Entity {
	typeName = strings.ToUpper(strings.TrimSpace(typeName))
	if factory, ok := registry[typeName]; ok {
		return factory()
	}
	return &Unknown{BaseEntity: BaseEntity{TypeName: typeName}}
}

// Unknown 保留不认识的实体，只解析通用属性
type Unknown struct {
	BaseEntity
}

func (u *Unknown) Parse(s *core.Scanner) error {
	parseTags(s, &u.BaseEntity, func(core.Tag) {})
	return nil
}

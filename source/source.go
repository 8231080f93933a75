// Package source 把 DXF 文档绘制到场景中，并负责后续的房间映射。
package source

import (
	"errors"
	"log"
	"math"

	"golang.org/x/image/font"

	"github.com/zooyer/dxfview"
	"github.com/zooyer/dxfview/entities"
	"github.com/zooyer/dxfview/geom"
	"github.com/zooyer/dxfview/handler"
	"github.com/zooyer/dxfview/mapping"
	"github.com/zooyer/dxfview/scene"
)

// ProgressFunc 接收 [0, 100] 的进度，返回 false 表示停止绘制
type ProgressFunc func(progress float64) bool

// toleranceRatio 拾取容差为 X 方向范围的十万分之一
const toleranceRatio = 100000

type Option func(*Source)

func WithGlobals(g *handler.Globals) Option {
	return func(s *Source) { s.globals = g }
}

func WithFont(face font.Face) Option {
	return func(s *Source) { s.font = face }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Source) { s.log = l }
}

type Source struct {
	doc     *dxf.Document
	globals *handler.Globals
	font    font.Face
	log     *log.Logger

	sink      *scene.Scene
	tracker   scene.Tracker
	index     *mapping.Index
	cache     *mapping.Cache
	tolerance float64
}

func New(doc *dxf.Document, opts ...Option) *Source {
	s := &Source{
		doc:       doc,
		globals:   handler.DefaultGlobals(),
		log:       log.Default(),
		index:     mapping.NewIndex(),
		cache:     mapping.NewCache(),
		tolerance: mapping.DefaultTolerance,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Source) Document() *dxf.Document { return s.doc }

func (s *Source) Globals() *handler.Globals { return s.globals }

// Draw 绘制所有实体，回调要求停止时返回已经累计的范围
func (s *Source) Draw(sink *scene.Scene, progress ProgressFunc) (scene.Bounds3D, error) {
	p := s.Begin(sink)
	for p.Next() {
		if progress != nil && !progress(p.Progress()) {
			p.Stop()
		}
	}
	return p.Finish(), p.Err()
}

// Begin 开始一次新的绘制，清空上一次的范围、候选轮廓和缓存
func (s *Source) Begin(sink *scene.Scene) *Pass {
	s.sink = sink
	s.tracker.Reset()
	s.index.Reset()
	s.cache.Reset()

	ctx := handler.NewContext(s.doc, sink, s.globals)
	ctx.Index, ctx.Cache, ctx.Log = s.index, s.cache, s.log
	if s.font != nil {
		ctx.Font = s.font
	}

	total := len(s.doc.Entities)
	return &Pass{
		src:      s,
		ctx:      ctx,
		entities: s.doc.Entities,
		every:    max(1, int(math.Round(float64(total)/1000))),
	}
}

// Bounds 最近一次绘制的范围
func (s *Source) Bounds() scene.Bounds3D {
	return s.tracker.Bounds()
}

// Tolerance 最近一次绘制后确定的拾取容差
func (s *Source) Tolerance() float64 {
	return s.tolerance
}

func (s *Source) Index() *mapping.Index { return s.index }

func (s *Source) Cache() *mapping.Cache { return s.cache }

// Resolver 基于最近一次绘制结果的房间映射解析器
func (s *Source) Resolver() *mapping.Resolver {
	return mapping.NewResolver(s.sink, s.index, s.cache, s.tolerance)
}

// MapToRoom 把房间映射转换为可显示的轮廓，无法显示时返回 nil
func (s *Source) MapToRoom(m mapping.RoomMapping, cam scene.Camera) *geom.Shape {
	if s.sink == nil {
		return nil
	}
	return s.Resolver().MapToRoom(m, cam)
}

// Pass 一次绘制过程，每到进度点暂停，由调用方决定继续还是停止
type Pass struct {
	src      *Source
	ctx      *handler.Context
	entities []entities.Entity

	next     int
	every    int
	skipped  int
	err      error
	stopped  bool
	finished bool
}

// Next 继续处理实体直到下一个进度点，返回 false 表示已经结束
func (p *Pass) Next() bool {
	if p.stopped || p.err != nil || p.next >= len(p.entities) {
		return false
	}

	for p.next < len(p.entities) {
		e := p.entities[p.next]
		p.next++

		if err := p.draw(e); err != nil {
			p.err = err
			return false
		}

		if p.next%p.every == 0 {
			return true
		}
	}
	return false
}

func (p *Pass) draw(e entities.Entity) error {
	id, err := handler.Process(e, p.ctx)
	if errors.Is(err, handler.ErrUnsupportedEntity) {
		p.skipped++
		p.ctx.Log.Printf("skip entity: %v", err)
		return nil
	}
	if err != nil {
		return err
	}

	p.src.sink.Add(id)
	p.src.tracker.UpdateNode(p.src.sink, id)
	return nil
}

// Progress 已处理实体的百分比
func (p *Pass) Progress() float64 {
	if len(p.entities) == 0 {
		return 100
	}
	return float64(p.next) * 100 / float64(len(p.entities))
}

// Processed 已处理（含跳过）的实体数量
func (p *Pass) Processed() int { return p.next }

// Skipped 因类型不支持而跳过的实体数量
func (p *Pass) Skipped() int { return p.skipped }

// Stop 放弃剩余实体，已有结果保留
func (p *Pass) Stop() { p.stopped = true }

func (p *Pass) Err() error { return p.err }

// Finish 结束绘制并返回范围；正常结束或被停止时设置拾取容差
func (p *Pass) Finish() scene.Bounds3D {
	bounds := p.src.tracker.Bounds()
	if !p.finished && p.err == nil {
		p.finished = true
		p.src.tolerance = bounds.X.Size() / toleranceRatio
	}
	return bounds
}

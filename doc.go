package dxf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/dxfview/entities"
)

type DimStyle struct {
	Name      string
	Precision int     // 对应组码 271 DIMDEC，显示的小数位数
	ExLimit   float64 // 对应组码 44 DIMEXE，标注线超出延伸线的长度
	Scale     float64 // 对应组码 40 DIMSCALE，全局比例，影响所有标注特征)
}

type Layer struct {
	Name         string
	ColorNumber  int // 组码 62，负数表示图层关闭
	LineTypeName string
	Flags        int
}

type Style struct {
	Name                string
	FixedTextHeight     float64
	WidthFactor         float64
	ObliqueAngle        float64
	PrimaryFontFileName string
	BigFontFileName     string
	Flags               int
}

type Tables struct {
	Layers    map[string]*Layer
	Styles    map[string]*Style
	DimStyles map[string]*DimStyle
}

type Header struct {
	ExtMin      core.Point // $EXTMIN
	ExtMax      core.Point // $EXTMAX
	InsUnits    int        // $INSUNITS
	Measurement int        // $MEASUREMENT，0 英制 1 公制
	CodePage    string     // $DWGCODEPAGE
}

type Block struct {
	Name     string
	Origin   core.Point // 组码 10/20/30，块基点
	XRef     string     // 组码 1，外部参照路径
	Entities []entities.Entity
}

type Document struct {
	Header   Header
	Tables   Tables
	Blocks   []*Block
	Entities []entities.Entity

	// DimStyles 与 Tables.DimStyles 相同
	DimStyles map[string]*DimStyle

	blocksByName map[string]*Block
}

// Block 按名称查找块，名称不区分大小写
func (d *Document) Block(name string) (*Block, bool) {
	if d.blocksByName == nil {
		d.indexBlocks()
	}
	b, ok := d.blocksByName[strings.ToUpper(strings.TrimSpace(name))]
	return b, ok
}

// Layer 按名称查找图层
func (d *Document) Layer(name string) (*Layer, bool) {
	l, ok := d.Tables.Layers[strings.ToUpper(strings.TrimSpace(name))]
	return l, ok
}

func (d *Document) indexBlocks() {
	d.blocksByName = make(map[string]*Block, len(d.Blocks))
	for _, b := range d.Blocks {
		d.blocksByName[strings.ToUpper(b.Name)] = b
	}
}

func (d *Document) parseHeader(scanner *core.Scanner) {
	var variable string
	for scanner.Next() {
		tag := scanner.LastTag
		if scanner.IsStart("ENDSEC") {
			break
		}
		if tag.Code == 9 {
			variable = strings.ToUpper(tag.AsString())
			continue
		}

		switch variable {
		case "$EXTMIN":
			setCoord(&d.Header.ExtMin, tag)
		case "$EXTMAX":
			setCoord(&d.Header.ExtMax, tag)
		case "$INSUNITS":
			d.Header.InsUnits = tag.AsInt()
		case "$MEASUREMENT":
			d.Header.Measurement = tag.AsInt()
		case "$DWGCODEPAGE":
			d.Header.CodePage = tag.AsString()
		}
	}
}

func setCoord(p *core.Point, tag core.Tag) {
	switch tag.Code {
	case 10:
		p.X = tag.AsFloat()
	case 20:
		p.Y = tag.AsFloat()
	case 30:
		p.Z = tag.AsFloat()
	}
}

func (d *Document) parseBlocks(scanner *core.Scanner) error {
	var currentBlock *Block
	scanner.Next()
	for {
		tag := scanner.LastTag
		if tag.Code == -1 || scanner.IsStart("ENDSEC") {
			return nil
		}
		if tag.Code != 0 {
			scanner.Next()
			continue
		}

		switch name := strings.ToUpper(tag.AsString()); name {
		case "BLOCK":
			currentBlock = &Block{Entities: []entities.Entity{}}
			for scanner.Next() && scanner.LastTag.Code != 0 {
				t := scanner.LastTag
				switch t.Code {
				case 2:
					currentBlock.Name = t.AsString()
				case 1:
					currentBlock.XRef = t.AsString()
				case 10, 20, 30:
					setCoord(&currentBlock.Origin, t)
				}
			}
			d.Blocks = append(d.Blocks, currentBlock)
		case "ENDBLK":
			currentBlock = nil
			skip(scanner)
		default:
			ent := entities.CreateEntity(name)
			if err := ent.Parse(scanner); err != nil {
				return fmt.Errorf("line %d: parse %s: %w", scanner.Line(), name, err)
			}
			if currentBlock != nil {
				currentBlock.Entities = append(currentBlock.Entities, ent)
			}
		}
	}
}

func (d *Document) parseEntities(scanner *core.Scanner) error {
	scanner.Next()
	for {
		tag := scanner.LastTag
		if tag.Code == -1 || scanner.IsStart("ENDSEC") {
			return nil
		}
		if tag.Code != 0 {
			scanner.Next()
			continue
		}

		ent := entities.CreateEntity(tag.Value)
		if err := ent.Parse(scanner); err != nil {
			return fmt.Errorf("line %d: parse %s: %w", scanner.Line(), ent.Type(), err)
		}
		d.Entities = append(d.Entities, ent)
	}
}

func (d *Document) parseTables(scanner *core.Scanner) {
	scanner.Next()
	for {
		if scanner.LastTag.Code == -1 || scanner.IsStart("ENDSEC") {
			return
		}
		if !scanner.IsStart("TABLE") {
			scanner.Next()
			continue
		}

		scanner.Next()
		tableName := strings.ToUpper(scanner.LastTag.AsString())
		skip(scanner)
		for scanner.LastTag.Code == 0 && !scanner.IsStart("ENDTAB") {
			switch {
			case tableName == "LAYER" && scanner.IsStart("LAYER"):
				d.parseLayer(scanner)
			case tableName == "STYLE" && scanner.IsStart("STYLE"):
				d.parseStyle(scanner)
			case tableName == "DIMSTYLE" && scanner.IsStart("DIMSTYLE"):
				d.parseDimStyle(scanner)
			default:
				skip(scanner)
			}
		}
	}
}

// skip 跳过当前记录的剩余标签，停在下一个 0 组码上
func skip(scanner *core.Scanner) {
	for scanner.Next() && scanner.LastTag.Code != 0 {
	}
}

func (d *Document) parseLayer(scanner *core.Scanner) {
	var layer Layer
	for scanner.Next() && scanner.LastTag.Code != 0 {
		t := scanner.LastTag
		switch t.Code {
		case 2:
			layer.Name = t.AsString()
		case 6:
			layer.LineTypeName = t.AsString()
		case 62:
			layer.ColorNumber = t.AsInt()
		case 70:
			layer.Flags = t.AsInt()
		}
	}
	if layer.Name != "" {
		d.Tables.Layers[strings.ToUpper(layer.Name)] = &layer
	}
}

func (d *Document) parseStyle(scanner *core.Scanner) {
	var style = Style{WidthFactor: 1}
	for scanner.Next() && scanner.LastTag.Code != 0 {
		t := scanner.LastTag
		switch t.Code {
		case 2:
			style.Name = t.AsString()
		case 3:
			style.PrimaryFontFileName = t.AsString()
		case 4:
			style.BigFontFileName = t.AsString()
		case 40:
			style.FixedTextHeight = t.AsFloat()
		case 41:
			style.WidthFactor = t.AsFloat()
		case 50:
			style.ObliqueAngle = t.AsFloat()
		case 70:
			style.Flags = t.AsInt()
		}
	}
	if style.Name != "" {
		d.Tables.Styles[strings.ToUpper(style.Name)] = &style
	}
}

func (d *Document) parseDimStyle(scanner *core.Scanner) {
	currentStyle := &DimStyle{
		Precision: 0,
		ExLimit:   0.0,
		Scale:     1.0, // 默认为 1.0，防止乘法归零
	}

	for scanner.Next() && scanner.LastTag.Code != 0 {
		t := scanner.LastTag
		switch t.Code {
		case 2: // 样式名称
			currentStyle.Name = strings.ToUpper(t.AsString())
		case 271: // 精度
			currentStyle.Precision = t.AsInt()
		case 44: // 标注线超出延伸线长度 (DIMEXE)
			currentStyle.ExLimit = t.AsFloat()
		case 40: // 全局标注比例 (DIMSCALE)
			currentStyle.Scale = t.AsFloat()
		}
	}

	if currentStyle.Name != "" {
		d.Tables.DimStyles[currentStyle.Name] = currentStyle
	}
}

func newDocument() *Document {
	dimStyles := make(map[string]*DimStyle)
	return &Document{
		Tables: Tables{
			Layers:    make(map[string]*Layer),
			Styles:    make(map[string]*Style),
			DimStyles: dimStyles,
		},
		Blocks:    make([]*Block, 0, 16),
		Entities:  make([]entities.Entity, 0, 1024),
		DimStyles: dimStyles,
	}
}

// Open 读取文件并按 charset 解码，charset 为空时按 UTF-8 处理
func Open(filename, charset string) (*Document, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(raw, charset)
}

// Parse 按 charset 解码原始字节并解析为 Document
func Parse(raw []byte, charset string) (*Document, error) {
	reader, err := NewDecoder(bytes.NewReader(raw), charset)
	if err != nil {
		return nil, err
	}
	return Load(reader)
}

// Load 解析 UTF-8 文本流
func Load(reader io.Reader) (*Document, error) {
	var (
		scanner  = core.NewScanner(reader)
		document = newDocument()
		sections int
	)

	for scanner.Next() {
		if !scanner.IsStart("SECTION") {
			continue
		}
		if !scanner.Next() {
			break
		}
		sections++

		var err error
		switch strings.ToUpper(scanner.LastTag.AsString()) {
		case "HEADER":
			document.parseHeader(scanner)
		case "TABLES":
			document.parseTables(scanner)
		case "BLOCKS":
			err = document.parseBlocks(scanner)
		case "ENTITIES":
			err = document.parseEntities(scanner)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if sections == 0 {
		return nil, ErrNoSections
	}

	document.indexBlocks()
	return document, nil
}

// ErrNoSections 输入中没有任何 SECTION，通常说明不是 DXF 文件
var ErrNoSections = errors.New("dxf: no sections found")

package dxf

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/dxfview/entities"
)

// tags 把 组码,值 列表拼成 DXF 文本
func tags(pairs ...any) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(&b, "%v\n%v\n", pairs[i], pairs[i+1])
	}
	return b.String()
}

func sampleDXF() string {
	return tags(
		0, "SECTION", 2, "HEADER",
		9, "$EXTMIN", 10, -1, 20, -2, 30, 0,
		9, "$INSUNITS", 70, 4,
		9, "$DWGCODEPAGE", 3, "ANSI_936",
		0, "ENDSEC",

		0, "SECTION", 2, "TABLES",
		0, "TABLE", 2, "LAYER", 70, 1,
		0, "LAYER", 2, "Walls", 70, 0, 62, 1, 6, "CONTINUOUS",
		0, "ENDTAB",
		0, "TABLE", 2, "DIMSTYLE", 70, 1,
		0, "DIMSTYLE", 2, "iso-25", 271, 2, 40, 10,
		0, "ENDTAB",
		0, "TABLE", 2, "STYLE", 70, 1,
		0, "STYLE", 2, "Standard", 40, 0, 41, 0.8, 3, "txt",
		0, "ENDTAB",
		0, "ENDSEC",

		0, "SECTION", 2, "BLOCKS",
		0, "BLOCK", 2, "Door", 70, 0, 10, 1, 20, 2, 30, 0,
		0, "LINE", 8, "0", 10, 0, 20, 0, 11, 1, 21, 0,
		0, "ENDBLK",
		0, "ENDSEC",

		0, "SECTION", 2, "ENTITIES",
		0, "INSERT", 8, "Walls", 66, 1, 2, "DOOR", 10, 5, 20, 6, 41, 2, 50, 90,
		0, "ATTRIB", 10, 5, 20, 7, 40, 2.5, 2, "序号", 1, "A-01", 70, 0,
		0, "ATTRIB", 10, 5, 20, 8, 40, 2.5, 2, "HIDDEN", 1, "x", 70, 1,
		0, "SEQEND",
		0, "POLYLINE", 8, "0", 66, 1, 70, 1,
		0, "VERTEX", 10, 0, 20, 0, 42, 0.5,
		0, "VERTEX", 10, 10, 20, 0,
		0, "VERTEX", 10, 10, 20, 10,
		0, "SEQEND",
		0, "LINE", 8, "walls", 62, 3, 10, 0, 20, 0, 11, 10, 21, 5,
		0, "ENDSEC",
		0, "EOF",
	)
}

func TestParse_Sections(t *testing.T) {
	doc, err := Parse([]byte(sampleDXF()), "")
	if err != nil {
		t.Fatal(err)
	}

	if doc.Header.ExtMin != (core.Point{X: -1, Y: -2}) || doc.Header.InsUnits != 4 || doc.Header.CodePage != "ANSI_936" {
		t.Errorf("文件头不符: %+v", doc.Header)
	}

	layer, ok := doc.Layer("walls")
	if !ok || layer.Name != "Walls" || layer.ColorNumber != 1 || layer.LineTypeName != "CONTINUOUS" {
		t.Errorf("图层不符: %+v", layer)
	}
	if style := doc.DimStyles["ISO-25"]; style == nil || style.Precision != 2 || style.Scale != 10 {
		t.Errorf("标注样式不符: %+v", style)
	}
	if style := doc.Tables.Styles["STANDARD"]; style == nil || style.WidthFactor != 0.8 || style.PrimaryFontFileName != "txt" {
		t.Errorf("文字样式不符: %+v", style)
	}

	block, ok := doc.Block("door")
	if !ok || block.Origin != (core.Point{X: 1, Y: 2}) || len(block.Entities) != 1 {
		t.Fatalf("块不符: %+v", block)
	}

	if len(doc.Entities) != 3 {
		t.Fatalf("实体数量不符: %d", len(doc.Entities))
	}

	ins, ok := doc.Entities[0].(*entities.Insert)
	if !ok {
		t.Fatalf("第一个实体应该是 INSERT: %T", doc.Entities[0])
	}
	if ins.BlockName != "DOOR" || ins.InsertionPoint != (core.Point{X: 5, Y: 6}) || ins.Scale != (core.Point{X: 2, Y: 1, Z: 1}) || ins.Rotation != 90 {
		t.Errorf("INSERT 不符: %+v", ins)
	}
	if len(ins.Attributes) != 2 || ins.Attributes[0].Tag != "序号" || ins.Attributes[0].Text != "A-01" {
		t.Fatalf("属性不符: %+v", ins.Attributes)
	}
	if !ins.Attributes[0].Visible() || ins.Attributes[1].Visible() {
		t.Error("属性可见性不符")
	}

	pl, ok := doc.Entities[1].(*entities.Polyline)
	if !ok {
		t.Fatalf("第二个实体应该是 POLYLINE: %T", doc.Entities[1])
	}
	if !pl.Closed || len(pl.Vertices) != 3 || pl.Vertices[0].Bulge != 0.5 || pl.Vertices[2].Point != (core.Point{X: 10, Y: 10}) {
		t.Errorf("POLYLINE 不符: %+v", pl)
	}

	line, ok := doc.Entities[2].(*entities.Line)
	if !ok || line.End != (core.Point{X: 10, Y: 5}) || line.ColorNumber != 3 || line.Layer() != "walls" {
		t.Errorf("LINE 不符: %+v", doc.Entities[2])
	}
}

func TestParse_Charset(t *testing.T) {
	text := tags(
		0, "SECTION", 2, "TABLES",
		0, "TABLE", 2, "LAYER",
		0, "LAYER", 2, "墙体", 62, 7,
		0, "ENDTAB",
		0, "ENDSEC",
		0, "SECTION", 2, "ENTITIES",
		0, "MTEXT", 10, 0, 20, 0, 40, 2.5, 1, "卧室\\P客厅",
		0, "ENDSEC",
	)
	raw, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatal(err)
	}

	doc, err := Parse(raw, "ANSI_936")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := doc.Layer("墙体"); !ok {
		t.Errorf("GBK 图层名解码失败: %v", doc.Tables.Layers)
	}
	m, ok := doc.Entities[0].(*entities.MText)
	if !ok {
		t.Fatalf("应该是 MTEXT: %T", doc.Entities[0])
	}
	if lines := m.Lines(); len(lines) != 2 || lines[0] != "卧室" || lines[1] != "客厅" {
		t.Errorf("多行文字不符: %q", lines)
	}

	if _, err = Parse(raw, "no-such-charset"); err == nil {
		t.Error("未知字符集应该报错")
	}
}

func TestEncoding(t *testing.T) {
	tests := []struct {
		charset string
		raw     []byte
		want    string
	}{
		{"", []byte("€"), "€"},
		{"ANSI_1252", []byte{0x80}, "€"},
		{"windows-1252", []byte{0x80}, "€"},
		{"gbk", []byte{0xD6, 0xD0}, "中"},
		{"ansi_936", []byte{0xD6, 0xD0}, "中"},
		{"ANSI_950", []byte{0xA4, 0xA4}, "中"},
	}

	for _, tt := range tests {
		r, err := NewDecoder(strings.NewReader(string(tt.raw)), tt.charset)
		if err != nil {
			t.Errorf("%q: %v", tt.charset, err)
			continue
		}
		got, err := io.ReadAll(r)
		if err != nil || string(got) != tt.want {
			t.Errorf("%q: 期望 %q, 得到 %q (%v)", tt.charset, tt.want, got, err)
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(strings.NewReader("999\ncomment\n")); !errors.Is(err, ErrNoSections) {
		t.Errorf("期望 ErrNoSections, 得到 %v", err)
	}

	_, err := Load(strings.NewReader(tags(0, "SECTION", 2, "ENTITIES") + "abc\nLINE\n"))
	if err == nil || !strings.Contains(err.Error(), "line 5") {
		t.Errorf("错误信息应该包含行号: %v", err)
	}
}

func TestDocument_BlockIndex(t *testing.T) {
	doc := &Document{Blocks: []*Block{{Name: "A"}, {Name: "b"}}}
	if _, ok := doc.Block(" B "); !ok {
		t.Error("块名应该不区分大小写")
	}
	if _, ok := doc.Block("C"); ok {
		t.Error("不存在的块不应该找到")
	}
}

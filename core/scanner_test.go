package core

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestScanner_Basic(t *testing.T) {
	// 模拟一个简单的 DXF 片段
	dxfData := "0\nSECTION\n2\nHEADER\n0\nENDSEC\n"
	r := strings.NewReader(dxfData)
	scanner := NewScanner(r)

	expected := []Tag{
		{0, "SECTION"},
		{2, "HEADER"},
		{0, "ENDSEC"},
	}

	for i, exp := range expected {
		if !scanner.Next() {
			t.Fatalf("第 %d 步读取失败: %v", i, scanner.Err())
		}
		if scanner.LastTag.Code != exp.Code || scanner.LastTag.Value != exp.Value {
			t.Errorf("第 %d 步数据不符: 期望 %+v, 得到 %+v", i, exp, scanner.LastTag)
		}
	}

	if scanner.Next() {
		t.Errorf("读取结束后仍然返回 true: %+v", scanner.LastTag)
	}
	if scanner.Err() != nil {
		t.Errorf("正常结束不应该有错误: %v", scanner.Err())
	}
}

func TestScanner_CRLFAndBlankLines(t *testing.T) {
	dxfData := "  0\r\nLINE\r\n\r\n 10\r\n1.5\r\n  1\r\n  text\r\n0\r\nEOF"
	scanner := NewScanner(strings.NewReader(dxfData))

	var tags []Tag
	for scanner.Next() {
		tags = append(tags, scanner.LastTag)
	}
	if scanner.Err() != nil {
		t.Fatalf("读取失败: %v", scanner.Err())
	}

	expected := []Tag{{0, "LINE"}, {10, "1.5"}, {1, "  text"}, {0, "EOF"}}
	if len(tags) != len(expected) {
		t.Fatalf("标签数量不符: 期望 %d, 得到 %d (%+v)", len(expected), len(tags), tags)
	}
	for i := range expected {
		if tags[i] != expected[i] {
			t.Errorf("第 %d 个标签不符: 期望 %+v, 得到 %+v", i, expected[i], tags[i])
		}
	}
}

func TestScanner_Errors(t *testing.T) {
	scanner := NewScanner(strings.NewReader("abc\nLINE\n"))
	if scanner.Next() {
		t.Fatal("非法组码应该失败")
	}
	if scanner.Err() == nil || !strings.Contains(scanner.Err().Error(), "line 1") {
		t.Errorf("错误信息应该包含行号: %v", scanner.Err())
	}

	scanner = NewScanner(strings.NewReader("0\n"))
	if scanner.Next() {
		t.Fatal("缺少 Value 行应该失败")
	}
	if !errors.Is(scanner.Err(), io.ErrUnexpectedEOF) {
		t.Errorf("期望 ErrUnexpectedEOF, 得到 %v", scanner.Err())
	}
}

func TestTag_Conversions(t *testing.T) {
	if v := (Tag{Value: " 2.5 "}).AsFloat(); v != 2.5 {
		t.Errorf("AsFloat: 得到 %v", v)
	}
	if v := (Tag{Value: " 71"}).AsInt(); v != 71 {
		t.Errorf("AsInt: 得到 %v", v)
	}
	if v := (Tag{Value: "3.0"}).AsInt(); v != 3 {
		t.Errorf("AsInt 小数: 得到 %v", v)
	}
	if v := (Tag{Value: "  LAYER  "}).AsString(); v != "LAYER" {
		t.Errorf("AsString: 得到 %q", v)
	}
}

func TestBBox(t *testing.T) {
	box, ok := NewBBox(Point{X: 1, Y: 2}, Point{X: -1, Y: 5, Z: 3})
	if !ok {
		t.Fatal("NewBBox 返回 false")
	}
	if box.Min != (Point{X: -1, Y: 2}) || box.Max != (Point{X: 1, Y: 5, Z: 3}) {
		t.Errorf("包围盒不符: %+v", box)
	}
	if box.Area() != 6 {
		t.Errorf("面积不符: %v", box.Area())
	}
	if _, ok = NewBBox(); ok {
		t.Error("空点集应该返回 false")
	}
}

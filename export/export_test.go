package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zooyer/dxfview/core"
	"github.com/zooyer/dxfview/geom"
	"github.com/zooyer/dxfview/scene"
	"github.com/zooyer/dxfview/viewport"
)

func TestShades(t *testing.T) {
	colors, err := Shades("jet", 6)
	if err != nil {
		t.Fatal(err)
	}
	expected := []int{0x000083, 0x003CAA, 0x05FFFF, 0x82FF80, 0xFFFF00, 0xFA0000}
	if len(colors) != len(expected) {
		t.Fatalf("颜色数量不符: %x", colors)
	}
	for i := range expected {
		if colors[i] != expected[i] {
			t.Errorf("第 %d 个颜色不符: 期望 %06X, 得到 %06X", i, expected[i], colors[i])
		}
	}

	if colors, _ = Shades("greys", 10); len(colors) != 10 || colors[0] != 0 {
		t.Errorf("灰度色表不符: %x", colors)
	}
	if _, err = Shades("rainbow", 6); err == nil {
		t.Error("未知色表应该报错")
	}
}

func TestColors(t *testing.T) {
	colors, err := Colors([]int{3, 1, 1, 2}, "jet")
	if err != nil {
		t.Fatal(err)
	}
	expected := map[int]int{1: 0x000083, 2: 0x003CAA, 3: 0x05FFFF}
	if len(colors) != len(expected) {
		t.Fatalf("类别数量不符: %v", colors)
	}
	for category, c := range expected {
		if colors[category] != c {
			t.Errorf("类别 %d 颜色不符: 期望 %06X, 得到 %06X", category, c, colors[category])
		}
	}

	// 类别比关键色多时按类别数量插值
	var many []int
	for i := 0; i < 20; i++ {
		many = append(many, i)
	}
	if colors, _ = Colors(many, "jet"); len(colors) != 20 || colors[19] == colors[18] {
		t.Errorf("类别颜色应该各不相同: %v", colors)
	}
}

func TestSVG(t *testing.T) {
	sc := scene.New()

	line := sc.NewNode(scene.KindLine)
	line.Points = []core.Point{{X: 0, Y: 0}, {X: 10, Y: 5}}
	line.Color = 0xFF0000
	sc.Add(line.ID)

	text := sc.NewNode(scene.KindText)
	text.Text = []string{"A<B"}
	text.TextSize = 1
	text.Points = []core.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1}, {X: 0, Y: 1}}
	text.Transform = geom.Translation(core.Point{X: 2, Y: 2})
	sc.Add(text.ID)

	// 视口外的对象不输出
	far := sc.NewNode(scene.KindLine)
	far.Points = []core.Point{{X: 1000, Y: 1000}, {X: 1001, Y: 1000}}
	far.Color = 0x00FF00
	sc.Add(far.ID)

	rooms := []Room{{
		Name:     "101",
		Category: 2,
		Shape:    geom.Polygon([]core.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}, {X: 0, Y: 5}}),
	}}

	var buf bytes.Buffer
	vp := viewport.Bounds2D{Left: 0, Top: 0, Width: 10, Height: 5}
	err := SVG(&buf, sc, vp, rooms, Options{
		Width:      200,
		Height:     100,
		Background: 0xFFFFFF,
		Contrast:   0x000000,
		Colors:     map[int]int{2: 0x003CAA},
	})
	if err != nil {
		t.Fatal(err)
	}

	svg := buf.String()
	for _, want := range []string{
		`width="200" height="100" viewBox="0 0 10 5"`,
		`<polyline points="0,5 10,0" fill="none" stroke="#FF0000"`,
		`>A&lt;B</text>`,
		`fill="#003CAA" fill-opacity="0.5"`,
		`>101</text>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("输出中缺少 %q:\n%s", want, svg)
		}
	}
	if strings.Contains(svg, "#00FF00") {
		t.Errorf("视口外的对象不应该输出:\n%s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("输出不完整")
	}

	if err = SVG(&buf, sc, viewport.Bounds2D{}, nil, Options{Width: 1, Height: 1}); err == nil {
		t.Error("空视口应该报错")
	}
}

package config

import (
	"testing"

	"github.com/zooyer/dxfview/handler"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	want := Config{Divisions: 16, Colormap: "jet", ExportWidth: 1920, ExportHeight: 1080}
	if *cfg != want {
		t.Errorf("默认配置不符: 期望 %+v, 得到 %+v", want, *cfg)
	}

	g, err := cfg.Globals()
	if err != nil {
		t.Fatal(err)
	}
	if *g != *handler.DefaultGlobals() {
		t.Errorf("没有主题时应该使用默认配色: %+v", g)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("DXFVIEW_THEME", "dark")
	t.Setenv("DXFVIEW_DIVISIONS", "32")
	t.Setenv("DXFVIEW_CHARSET", "ANSI_936")
	t.Setenv("DXFVIEW_EXPORT_WIDTH", "800")
	t.Setenv("DXFVIEW_EXPORT_HEIGHT", "400")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "dark" || cfg.Divisions != 32 || cfg.Charset != "ANSI_936" || cfg.Aspect() != 2 {
		t.Errorf("环境变量没有生效: %+v", cfg)
	}

	g, err := cfg.Globals()
	if err != nil {
		t.Fatal(err)
	}
	if g.ContrastColor != 0xFAFAFA || g.BackgroundColor != 0x2C2C2C || g.Divisions != 32 {
		t.Errorf("绘制参数不符: %+v", g)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("DXFVIEW_DIVISIONS", "abc")
	if _, err := Load(); err == nil {
		t.Error("非数字的段数应该报错")
	}

	t.Setenv("DXFVIEW_DIVISIONS", "0")
	if _, err := Load(); err == nil {
		t.Error("段数为 0 应该报错")
	}

	cfg := Config{Theme: "blue", Divisions: 1, ExportWidth: 1, ExportHeight: 1}
	if _, err := cfg.Globals(); err == nil {
		t.Error("未知主题应该报错")
	}
}

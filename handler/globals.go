package handler

import "fmt"

// Globals 绘制参数，处理器每次调用时读取当前值
type Globals struct {
	ContrastColor   int
	BackgroundColor int
	Divisions       int // 曲线插值段数
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

func DefaultGlobals() *Globals {
	return &Globals{
		ContrastColor:   0x000000,
		BackgroundColor: 0xFFFFFF,
		Divisions:       16,
	}
}

// ApplyTheme 切换配色，只应在两次绘制之间调用
func (g *Globals) ApplyTheme(name string) error {
	switch name {
	case ThemeLight:
		g.ContrastColor, g.BackgroundColor = 0x2C2C2C, 0xFAFAFA
	case ThemeDark:
		g.ContrastColor, g.BackgroundColor = 0xFAFAFA, 0x2C2C2C
	default:
		return fmt.Errorf("unknown theme %q", name)
	}
	return nil
}

func (g *Globals) divisions() int {
	if g.Divisions < 1 {
		return 1
	}
	return g.Divisions
}

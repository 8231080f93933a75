// Package config 从 DXFVIEW_ 开头的环境变量读取默认配置，命令行参数可以覆盖。
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/zooyer/dxfview/handler"
)

const prefix = "dxfview"

type Config struct {
	Theme        string `envconfig:"THEME"`
	Divisions    int    `envconfig:"DIVISIONS" default:"16"`
	Charset      string `envconfig:"CHARSET"`
	Colormap     string `envconfig:"COLORMAP" default:"jet"`
	ExportWidth  int    `envconfig:"EXPORT_WIDTH" default:"1920"`
	ExportHeight int    `envconfig:"EXPORT_HEIGHT" default:"1080"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Divisions < 1 {
		return fmt.Errorf("config: divisions must be positive, got %d", c.Divisions)
	}
	if c.ExportWidth < 1 || c.ExportHeight < 1 {
		return fmt.Errorf("config: invalid export size %dx%d", c.ExportWidth, c.ExportHeight)
	}
	return nil
}

// Globals 按配置生成绘制参数，主题为空时使用默认配色
func (c *Config) Globals() (*handler.Globals, error) {
	g := handler.DefaultGlobals()
	g.Divisions = c.Divisions
	if c.Theme != "" {
		if err := g.ApplyTheme(c.Theme); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Aspect 导出图片的宽高比
func (c *Config) Aspect() float64 {
	return float64(c.ExportWidth) / float64(c.ExportHeight)
}

// Usage 打印所有可用的环境变量
func Usage() error {
	var cfg Config
	return envconfig.Usage(prefix, &cfg)
}

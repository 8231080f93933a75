package cmd

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/zooyer/dxfview/config"
	"github.com/zooyer/dxfview/handler"
)

var (
	// 全局参数，没有指定时使用环境变量
	charset   string
	theme     string
	divisions int
	verbose   bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dxfview",
	Short: "DXF drawing viewer and room mapping tool",
	Long: `Parse DXF drawings into a scene, map rooms onto drawn polylines and export images.

Environment:
  DXFVIEW_THEME, DXFVIEW_DIVISIONS, DXFVIEW_CHARSET, DXFVIEW_COLORMAP,
  DXFVIEW_EXPORT_WIDTH, DXFVIEW_EXPORT_HEIGHT

Examples:
  dxfview info plan.dxf                          # Show drawing summary
  dxfview map plan.dxf rooms.json --csv out.csv  # Resolve room mappings
  dxfview export plan.dxf -m rooms.json -o a.png # Render to an image`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&charset, "charset", "c", "", "text encoding of the drawing, e.g. ANSI_936, gbk (default UTF-8)")
	rootCmd.PersistentFlags().StringVarP(&theme, "theme", "t", "", "colour theme: light or dark")
	rootCmd.PersistentFlags().IntVarP(&divisions, "divisions", "d", 0, "curve divisions")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig 读取环境变量，再用命令行参数覆盖
func loadConfig(cmd *cobra.Command, _ []string) error {
	var err error
	if cfg, err = config.Load(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("charset") {
		cfg.Charset = charset
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("divisions") {
		cfg.Divisions = divisions
	}
	return cfg.Validate()
}

func globals() (*handler.Globals, error) {
	return cfg.Globals()
}

// logger 跳过的实体只在 verbose 时输出
func logger() *log.Logger {
	if verbose {
		return log.New(os.Stderr, "dxfview: ", 0)
	}
	return log.New(io.Discard, "", 0)
}

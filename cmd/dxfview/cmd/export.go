package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zooyer/dxfview/export"
	"github.com/zooyer/dxfview/mapping"
	"github.com/zooyer/dxfview/viewport"
)

const renderTimeout = time.Minute

var (
	mappingFile string
	outputFile  string
	width       int
	height      int
	colormap    string
)

var exportCmd = &cobra.Command{
	Use:   "export [file.dxf]",
	Short: "Render a drawing and its room mappings to SVG or PNG",
	Long: `Render a drawing to SVG, or to PNG through headless Chrome.

The output format follows the extension of --output; without --output the
SVG is written next to the drawing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&mappingFile, "mappings", "m", "", "room mappings JSON file")
	exportCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (.svg or .png)")
	exportCmd.Flags().IntVar(&width, "width", 0, "image width in pixels")
	exportCmd.Flags().IntVar(&height, "height", 0, "image height in pixels")
	exportCmd.Flags().StringVar(&colormap, "colormap", "", "room category colormap ("+strings.Join(export.Colormaps(), ", ")+")")
}

func runExport(cmd *cobra.Command, args []string) error {
	filename, err := dxfFile(args)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.ExportWidth = width
	}
	if flags.Changed("height") {
		cfg.ExportHeight = height
	}
	if flags.Changed("colormap") {
		cfg.Colormap = colormap
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	d, err := draw(filename)
	if err != nil {
		return err
	}
	if !d.bounds.Valid() {
		return fmt.Errorf("%s: nothing to draw", filename)
	}

	g, err := globals()
	if err != nil {
		return err
	}
	fit := viewport.Fit(d.bounds, cfg.Aspect())
	opts := export.Options{
		Width:      cfg.ExportWidth,
		Height:     cfg.ExportHeight,
		Background: g.BackgroundColor,
		Contrast:   g.ContrastColor,
		Divisions:  cfg.Divisions,
	}

	var rooms []export.Room
	if mappingFile != "" {
		if rooms, opts.Colors, err = resolveRooms(d, fit); err != nil {
			return err
		}
	}

	var svg bytes.Buffer
	if err = export.SVG(&svg, d.sc, fit.Zoom(viewport.DefaultZoom), rooms, opts); err != nil {
		return err
	}

	output := outputFile
	if output == "" {
		output = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".svg"
	}

	file, err := os.Create(output)
	if err != nil {
		return err
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(output), ".png") {
		ctx, cancel := context.WithTimeout(cmd.Context(), renderTimeout)
		defer cancel()
		err = export.PNG(ctx, file, svg.Bytes(), opts)
	} else {
		_, err = svg.WriteTo(file)
	}
	if err != nil {
		return err
	}

	fmt.Println("写入文件:", output)
	return nil
}

// resolveRooms 解析房间映射，返回可显示的房间和类别颜色
func resolveRooms(d *drawing, fit viewport.Bounds2D) ([]export.Room, map[int]int, error) {
	mappings, err := mapping.LoadFile(mappingFile)
	if err != nil {
		return nil, nil, err
	}

	var (
		categories []int
		rooms      []export.Room
		cam        = viewport.Camera(fit)
	)
	for _, m := range mappings {
		categories = append(categories, m.Category)
		if shape := d.src.MapToRoom(m, cam); shape != nil {
			rooms = append(rooms, export.Room{Name: m.RoomName, Category: m.Category, Shape: shape})
		}
	}

	colors, err := export.Colors(categories, cfg.Colormap)
	if err != nil {
		return nil, nil, err
	}
	return rooms, colors, nil
}

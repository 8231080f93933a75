package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/ncruces/zenity"

	"github.com/zooyer/dxfview"
	"github.com/zooyer/dxfview/scene"
	"github.com/zooyer/dxfview/source"
)

// dxfFile 取命令行中的图纸路径，没有时弹出文件选择框
func dxfFile(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	filename, err := zenity.SelectFile(
		zenity.Title("选择 DXF 图纸"),
		zenity.FileFilters{{Name: "DXF", Patterns: []string{"*.dxf"}, CaseFold: true}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", errors.New("no drawing selected")
	}
	return filename, err
}

type drawing struct {
	filename string
	doc      *dxf.Document
	src      *source.Source
	sc       *scene.Scene
	bounds   scene.Bounds3D
	skipped  int
}

// draw 解析并绘制图纸，verbose 时打印进度
func draw(filename string) (*drawing, error) {
	g, err := globals()
	if err != nil {
		return nil, err
	}

	doc, err := dxf.Open(filename, cfg.Charset)
	if err != nil {
		return nil, err
	}

	d := &drawing{
		filename: filename,
		doc:      doc,
		src:      source.New(doc, source.WithGlobals(g), source.WithLogger(logger())),
		sc:       scene.New(),
	}

	pass := d.src.Begin(d.sc)
	last := -1
	for pass.Next() {
		if progress := int(pass.Progress()) / 10; verbose && progress != last {
			last = progress
			fmt.Fprintf(os.Stderr, "绘制中... %d%%\n", progress*10)
		}
	}
	d.bounds, d.skipped = pass.Finish(), pass.Skipped()
	if err = pass.Err(); err != nil {
		return nil, fmt.Errorf("draw %s: %w", filename, err)
	}
	return d, nil
}

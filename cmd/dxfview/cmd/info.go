package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zooyer/dxfview/geom"
	"github.com/zooyer/dxfview/handler"
	"github.com/zooyer/dxfview/scene"
)

var infoCmd = &cobra.Command{
	Use:   "info [file.dxf]",
	Short: "Show a summary of a drawing",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(_ *cobra.Command, args []string) error {
	filename, err := dxfFile(args)
	if err != nil {
		return err
	}
	d, err := draw(filename)
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, e := range d.doc.Entities {
		counts[e.Type()]++
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)

	fmt.Println("文件:", filename)
	fmt.Printf("图层: %d 块: %d 实体: %d 节点: %d\n", len(d.doc.Tables.Layers), len(d.doc.Blocks), len(d.doc.Entities), d.sc.Len())
	for _, t := range types {
		mark := ""
		if _, ok := handler.Get(t); !ok {
			mark = " (跳过)"
		}
		fmt.Printf("    %-12s %d%s\n", t, counts[t], mark)
	}
	kinds := make(map[scene.Kind]int)
	d.sc.Walk(func(n *scene.Node, _ geom.Matrix) bool {
		kinds[n.Kind]++
		return true
	})
	fmt.Print("节点:")
	for k := scene.KindGroup; k <= scene.KindText; k++ {
		fmt.Printf(" %s=%d", k, kinds[k])
	}
	fmt.Println()

	fmt.Printf("范围: X%s Y%s Z%s\n", d.bounds.X, d.bounds.Y, d.bounds.Z)
	fmt.Printf("跳过: %d 拾取容差: %g\n", d.skipped, d.src.Tolerance())
	if verbose {
		fmt.Println("支持的实体:", strings.Join(handler.Types(), " "))
	}
	return nil
}

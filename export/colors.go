package export

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

type stop struct {
	index   float64
	r, g, b float64
}

var colormaps = map[string][]stop{
	"jet": {
		{0, 0, 0, 131},
		{0.125, 0, 60, 170},
		{0.375, 5, 255, 255},
		{0.625, 255, 255, 0},
		{0.875, 250, 0, 0},
		{1, 128, 0, 0},
	},
	"hot": {
		{0, 0, 0, 0},
		{0.3, 230, 0, 0},
		{0.6, 255, 210, 0},
		{1, 255, 255, 255},
	},
	"greys": {
		{0, 0, 0, 0},
		{1, 255, 255, 255},
	},
}

// Colormaps 支持的色表名称
func Colormaps() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Shades 在色表的关键色之间线性插值出 n 个颜色
func Shades(name string, n int) ([]int, error) {
	stops, ok := colormaps[name]
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q", name)
	}

	indices := make([]int, len(stops))
	for i, s := range stops {
		indices[i] = int(math.Round(s.index * float64(n)))
	}

	var colors []int
	for i := 0; i+1 < len(stops); i++ {
		from, to := stops[i], stops[i+1]
		steps := indices[i+1] - indices[i]
		for j := 0; j < steps; j++ {
			k := float64(j) / float64(steps)
			r := math.Round(from.r + (to.r-from.r)*k)
			g := math.Round(from.g + (to.g-from.g)*k)
			b := math.Round(from.b + (to.b-from.b)*k)
			colors = append(colors, int(r)<<16|int(g)<<8|int(b))
		}
	}
	return colors, nil
}

// Colors 房间类别到颜色的映射，类别从小到大依次取色，色数不少于色表的关键色数
func Colors(categories []int, name string) (map[int]int, error) {
	sorted := slices.Clone(categories)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	stops, ok := colormaps[name]
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q", name)
	}
	shades, err := Shades(name, max(len(stops), len(sorted)))
	if err != nil {
		return nil, err
	}

	colors := make(map[int]int, len(sorted))
	for i, category := range sorted {
		colors[category] = shades[i]
	}
	return colors, nil
}

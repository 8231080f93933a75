// Package mapping 把外部提供的房间映射匹配到已经绘制的多段线轮廓上。
package mapping

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/zooyer/dxfview/core"
)

type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vertex) Point() core.Point {
	return core.Point{X: v.X, Y: v.Y}
}

// RoomMapping 房间映射，MappingVertex 和 Vertices 二选一
type RoomMapping struct {
	RoomName      string   `json:"roomName"`
	Category      int      `json:"category"`
	Description   string   `json:"description,omitempty"`
	MappingVertex *Vertex  `json:"mappingVertex,omitempty"`
	Vertices      []Vertex `json:"vertices,omitempty"`
}

func (m RoomMapping) Points() []core.Point {
	points := make([]core.Point, len(m.Vertices))
	for i, v := range m.Vertices {
		points[i] = v.Point()
	}
	return points
}

// Load 读取 JSON 数组格式的房间映射
func Load(r io.Reader) ([]RoomMapping, error) {
	var mappings []RoomMapping
	if err := json.NewDecoder(r).Decode(&mappings); err != nil {
		return nil, fmt.Errorf("decode room mappings: %w", err)
	}
	return mappings, nil
}

func LoadFile(filename string) ([]RoomMapping, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Load(file)
}

package entities

import "github.com/zooyer/dxfview/core"

// Solid 填充的四边形，第 4 个角缺省时与第 3 个相同
type Solid struct {
	BaseEntity
	Corners   [4]core.Point
	Thickness float64
}

// Face3D 三维面，3 或 4 个顶点
type Face3D struct {
	BaseEntity
	Vertices []core.Point
}

func init() {
	Register("SOLID", func() Entity { return &Solid{BaseEntity: BaseEntity{TypeName: "SOLID"}} })
	Register("3DFACE", func() Entity { return &Face3D{BaseEntity: BaseEntity{TypeName: "3DFACE"}} })
}

// parseCorners 读取 10~13 / 20~23 / 30~33 组码，返回实际出现过的角
func parseCorners(t core.Tag, corners *[4]core.Point, seen *[4]bool) {
	switch {
	case t.Code >= 10 && t.Code <= 13:
		corners[t.Code-10].X = t.AsFloat()
		seen[t.Code-10] = true
	case t.Code >= 20 && t.Code <= 23:
		corners[t.Code-20].Y = t.AsFloat()
	case t.Code >= 30 && t.Code <= 33:
		corners[t.Code-30].Z = t.AsFloat()
	}
}

func (s *Solid) Parse(sc *core.Scanner) error {
	var seen [4]bool
	parseTags(sc, &s.BaseEntity, func(t core.Tag) {
		if t.Code == 39 {
			s.Thickness = t.AsFloat()
			return
		}
		parseCorners(t, &s.Corners, &seen)
	})
	if !seen[3] {
		s.Corners[3] = s.Corners[2]
	}
	return nil
}

func (f *Face3D) Parse(sc *core.Scanner) error {
	var (
		corners [4]core.Point
		seen    [4]bool
	)
	parseTags(sc, &f.BaseEntity, func(t core.Tag) {
		parseCorners(t, &corners, &seen)
	})

	for i, p := range corners {
		if !seen[i] {
			continue
		}
		// 三角面的第 4 个点和第 3 个点重合
		if i == 3 && seen[2] && p == corners[2] {
			continue
		}
		f.Vertices = append(f.Vertices, p)
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zooyer/golib/xos"

	"github.com/zooyer/dxfview/cmd/dxfview/cmd"
)

func main() {
	// 把 DXF 文件拖到程序上时直接导出，结束后等待按键
	dropped := len(os.Args) == 2 && strings.EqualFold(filepath.Ext(os.Args[1]), ".dxf")
	if dropped {
		os.Args = []string{os.Args[0], "export", os.Args[1]}
	}

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	if dropped {
		xos.PauseExit()
	}
	if err != nil {
		os.Exit(1)
	}
}

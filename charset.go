package dxf

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// codePages DXF $DWGCODEPAGE 里不能直接转换成 windows-xxxx 的代码页
var codePages = map[string]encoding.Encoding{
	"ANSI_932": japanese.ShiftJIS,
	"ANSI_936": simplifiedchinese.GBK,
	"ANSI_949": korean.EUCKR,
	"ANSI_950": traditionalchinese.Big5,
	"GB18030":  simplifiedchinese.GB18030,
}

// Encoding 解析字符集名称，支持 WHATWG 名称和 DXF 的 ANSI_xxxx 代码页
func Encoding(charset string) (encoding.Encoding, error) {
	name := strings.TrimSpace(charset)
	if name == "" {
		return unicode.UTF8, nil
	}

	upper := strings.ToUpper(name)
	if enc, ok := codePages[upper]; ok {
		return enc, nil
	}
	if page, ok := strings.CutPrefix(upper, "ANSI_"); ok {
		name = "windows-" + page
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("dxf: unsupported charset %q: %w", charset, err)
	}
	return enc, nil
}

// NewDecoder 把输入流转换为 UTF-8
func NewDecoder(r io.Reader, charset string) (io.Reader, error) {
	enc, err := Encoding(charset)
	if err != nil {
		return nil, err
	}
	if enc == unicode.UTF8 {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Scanner struct {
	reader  *bufio.Reader
	LastTag Tag
	line    int
	err     error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

// readLine 读取一行，最后一行没有换行符也算完整
func (s *Scanner) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	s.line++
	return strings.TrimRight(line, "\r\n"), nil
}

// Next 读取下一组标签，结束或出错后 LastTag.Code 为 -1
func (s *Scanner) Next() bool {
	if s.err != nil || !s.next() {
		s.LastTag = Tag{Code: -1}
		return false
	}
	return true
}

func (s *Scanner) next() bool {
	for {
		// 1. 读取 Code 行
		codeLine, err := s.readLine()
		if err != nil {
			if err != io.EOF {
				s.err = err
			}
			return false
		}

		codeStr := strings.TrimSpace(codeLine)
		if codeStr == "" { // 跳过空行
			continue
		}

		code, err := strconv.Atoi(codeStr)
		if err != nil {
			s.err = fmt.Errorf("line %d: invalid group code %q: %w", s.line, codeStr, err)
			return false
		}

		// 2. 读取 Value 行，EOF 说明标签不完整
		value, err := s.readLine()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			s.err = fmt.Errorf("line %d: group code %d without value: %w", s.line, code, err)
			return false
		}

		// 保留 Value 开头的空格（DXF 规范要求）
		s.LastTag = Tag{Code: code, Value: value}
		return true
	}
}

// Line 返回最后读取的行号
func (s *Scanner) Line() int {
	return s.line
}

// IsStart 判断当前标签是否为 0 组码的指定名称
func (s *Scanner) IsStart(name string) bool {
	return s.LastTag.Code == 0 && strings.EqualFold(strings.TrimSpace(s.LastTag.Value), name)
}

func (s *Scanner) Err() error {
	return s.err
}

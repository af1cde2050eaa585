//go:build !mobile

// Package mobile 是 ebitenmobile 绑定入口
//
// 普通构建只编译本文件；mobile.go 和 embed.go 需要 -tags mobile。
package mobile

// Dummy 让 ebitenmobile bind 之外的构建也能引用本包
func Dummy() {}

//go:build mobile

package utils

// IsMobile 移动端构建（ebitenmobile）始终返回 true
// 移动端只有触摸输入，不显示键盘提示
func IsMobile() bool {
	return true
}

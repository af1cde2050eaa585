//go:build !(js && wasm)

package utils

// IsBrowser 是否运行在浏览器中
func IsBrowser() bool {
	return false
}

// MirrorOverlayMarkup 非浏览器平台没有页面可镜像（空实现）
func MirrorOverlayMarkup(markup string) {}

// PageURL 非浏览器平台原样返回路径
func PageURL(rel string) string {
	return rel
}

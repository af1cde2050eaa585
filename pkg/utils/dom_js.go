//go:build js && wasm

package utils

import (
	"net/url"
	"syscall/js"
)

// MessageContainerID 页面中用于镜像浮层内容的元素ID
const MessageContainerID = "gameMessages"

// IsBrowser 是否运行在浏览器中
func IsBrowser() bool {
	return true
}

// MirrorOverlayMarkup 把浮层的转义 HTML 写入页面容器，供屏幕阅读器读取
// 传入空字符串清空容器；页面没有该容器时忽略
func MirrorOverlayMarkup(markup string) {
	doc := js.Global().Get("document")
	if doc.IsUndefined() || doc.IsNull() {
		return
	}
	el := doc.Call("getElementById", MessageContainerID)
	if el.IsUndefined() || el.IsNull() {
		return
	}
	el.Set("innerHTML", markup)
}

// PageURL 把相对路径解析为相对于当前页面的绝对 URL
func PageURL(rel string) string {
	loc := js.Global().Get("location")
	if loc.IsUndefined() || loc.IsNull() {
		return rel
	}
	base, err := url.Parse(loc.Get("href").String())
	if err != nil {
		return rel
	}
	ref, err := url.Parse(rel)
	if err != nil {
		return rel
	}
	return base.ResolveReference(ref).String()
}

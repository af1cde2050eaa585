package widget

import "strings"

// CloseGlyph 关闭按钮上显示的字符
const CloseGlyph = "✕"

// Overlay 当前显示的消息浮层
//
// Title 和 Items 保留原文供绘制使用；Markup 是转义后的 HTML 片段，
// 浏览器构建会把它同步到页面的消息容器中。
type Overlay struct {
	Title  string
	Items  []string
	Markup string
}

// NewOverlay 根据消息构建浮层
func NewOverlay(msg Message) *Overlay {
	items := make([]string, len(msg.Content))
	copy(items, msg.Content)

	return &Overlay{
		Title:  msg.Title,
		Items:  items,
		Markup: renderMarkup(msg),
	}
}

// renderMarkup 生成 <h3>标题</h3><ul><li>...</li></ul><button> 结构
func renderMarkup(msg Message) string {
	var b strings.Builder
	b.WriteString("<h3>")
	b.WriteString(EscapeText(msg.Title))
	b.WriteString("</h3><ul>")
	for _, item := range msg.Content {
		b.WriteString("<li>")
		b.WriteString(EscapeText(item))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	b.WriteString(`<button class="close-btn">`)
	b.WriteString(CloseGlyph)
	b.WriteString("</button>")
	return b.String()
}

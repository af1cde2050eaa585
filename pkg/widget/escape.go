package widget

import "strings"

// html.EscapeString 把单引号写成 &#39;，浮层标记需要 &#039;
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeText 转义五个 HTML 特殊字符，防止数据文件中的文本被当作标记注入
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

package components

import (
	"github.com/decker502/coinblock/pkg/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MessagePanelComponent 消息浮层面板
//
// 一个实体对应一个挂载的 widget.Overlay，卸载时实体被销毁。
// 文字在创建时按面板宽度换行，渲染时直接使用。
type MessagePanelComponent struct {
	Overlay *widget.Overlay

	TitleFont *text.GoTextFace
	BodyFont  *text.GoTextFace

	// TitleLines 换行后的标题
	TitleLines []string
	// ItemLines 每个条目换行后的文字
	ItemLines [][]string

	Width  float64
	Height float64

	// CloseHovered 指针是否悬停在关闭按钮上
	CloseHovered bool
	// OnClose 点击关闭按钮的回调
	OnClose func()
}

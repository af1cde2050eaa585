package systems

import (
	"github.com/decker502/coinblock/pkg/components"
	"github.com/decker502/coinblock/pkg/config"
	"github.com/decker502/coinblock/pkg/utils"
)

// titleCloseGap 标题与关闭按钮之间的距离
const titleCloseGap = 8.0

// LayoutMessagePanel 按面板宽度对标题和条目换行，并计算面板高度
// 面板宽度为 0 时使用 config.PanelWidth()
func LayoutMessagePanel(panel *components.MessagePanelComponent) {
	if panel.Width <= 0 {
		panel.Width = config.PanelWidth()
	}
	if panel.Overlay == nil {
		panel.TitleLines = nil
		panel.ItemLines = nil
		panel.Height = 2 * config.PanelPadding
		return
	}

	contentWidth := panel.Width - 2*config.PanelPadding
	titleWidth := contentWidth - config.PanelCloseSize - titleCloseGap
	itemWidth := contentWidth - config.PanelBulletIndent

	panel.TitleLines = utils.WrapText(panel.Overlay.Title, panel.TitleFont, titleWidth)
	panel.ItemLines = make([][]string, len(panel.Overlay.Items))
	for i, item := range panel.Overlay.Items {
		panel.ItemLines[i] = utils.WrapText(item, panel.BodyFont, itemWidth)
	}

	height := 2 * config.PanelPadding
	height += float64(len(panel.TitleLines)) * titleLineHeight()
	if len(panel.ItemLines) > 0 {
		height += config.PanelLineSpacing * 2
	}
	for _, lines := range panel.ItemLines {
		height += float64(len(lines)) * bodyLineHeight()
	}

	// 至少能放下关闭按钮
	minHeight := 2*config.PanelPadding + config.PanelCloseSize
	if height < minHeight {
		height = minHeight
	}
	panel.Height = height
}

// PanelCloseBounds 返回关闭按钮的矩形（右上角）
func PanelCloseBounds(pos *components.PositionComponent, panel *components.MessagePanelComponent) (x, y, w, h float64) {
	size := config.PanelCloseSize
	x = pos.X + panel.Width - config.PanelPadding - size
	y = pos.Y + config.PanelPadding - 4
	return x, y, size, size
}

func titleLineHeight() float64 {
	return config.PanelTitleFontSize + config.PanelLineSpacing
}

func bodyLineHeight() float64 {
	return config.PanelBodyFontSize + config.PanelLineSpacing
}

package config

// 布局配置常量
// 所有坐标都是逻辑屏幕坐标（左上角为原点），Ebitengine 负责缩放到实际窗口

// 逻辑屏幕
const (
	// WidgetScreenWidth 逻辑屏幕宽度
	WidgetScreenWidth = 480

	// WidgetScreenHeight 逻辑屏幕高度
	WidgetScreenHeight = 360

	// GroundY 地面顶边的 Y 坐标
	GroundY = 300.0
)

// 角色与砖块
const (
	// CharacterWidth 角色宽度
	CharacterWidth = 32.0

	// CharacterHeight 角色高度
	CharacterHeight = 48.0

	// CharacterX 角色左上角 X（与砖块水平居中对齐）
	CharacterX = BlockX + (BlockSize-CharacterWidth)/2

	// CharacterY 角色站在地面时的左上角 Y
	CharacterY = GroundY - CharacterHeight

	// JumpHeight 跳跃最高点相对地面的高度
	// 取值使角色头顶在最高点恰好碰到砖块底边
	JumpHeight = CharacterY - (BlockY + BlockSize)

	// BlockSize 砖块边长
	BlockSize = 40.0

	// BlockX 砖块左上角 X
	BlockX = (WidgetScreenWidth - BlockSize) / 2

	// BlockY 砖块左上角 Y
	BlockY = 150.0

	// BlockBumpHeight 砖块被顶中时向上弹起的最大距离
	BlockBumpHeight = 10.0
)

// 跳跃按钮
const (
	JumpButtonWidth  = 120.0
	JumpButtonHeight = 36.0
	JumpButtonX      = (WidgetScreenWidth - JumpButtonWidth) / 2
	JumpButtonY      = GroundY + 12.0
)

// 消息浮层
const (
	// PanelMargin 浮层距屏幕边缘的距离
	PanelMargin = 24.0

	// PanelY 浮层顶边
	PanelY = 16.0

	// PanelPadding 浮层内边距
	PanelPadding = 14.0

	// PanelTitleFontSize 标题字号
	PanelTitleFontSize = 18.0

	// PanelBodyFontSize 正文字号
	PanelBodyFontSize = 14.0

	// PanelLineSpacing 行间距
	PanelLineSpacing = 4.0

	// PanelCloseSize 关闭按钮边长
	PanelCloseSize = 22.0

	// PanelBulletIndent 要点缩进
	PanelBulletIndent = 14.0
)

// PanelWidth 返回浮层宽度
func PanelWidth() float64 {
	return WidgetScreenWidth - 2*PanelMargin
}

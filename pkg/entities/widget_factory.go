package entities

import (
	"image/color"

	"github.com/decker502/coinblock/pkg/components"
	"github.com/decker502/coinblock/pkg/config"
	"github.com/decker502/coinblock/pkg/ecs"
	"github.com/decker502/coinblock/pkg/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	colorGround      = color.RGBA{R: 200, G: 76, B: 12, A: 255}
	colorGrass       = color.RGBA{R: 0, G: 168, B: 0, A: 255}
	colorBlock       = color.RGBA{R: 252, G: 152, B: 56, A: 255}
	colorBlockAccent = color.RGBA{R: 120, G: 50, B: 0, A: 255}
	colorCharacter   = color.RGBA{R: 0, G: 88, B: 248, A: 255}
	colorCap         = color.RGBA{R: 228, G: 0, B: 88, A: 255}
)

// BlockMaxScale 砖块脉冲的最大缩放
const BlockMaxScale = 1.1

// NewGroundEntity 创建地面实体（铺满 GroundY 以下区域）
func NewGroundEntity(em *ecs.EntityManager) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: 0, Y: config.GroundY})
	ecs.AddComponent(em, entity, &components.ShapeComponent{
		Kind:   components.ShapeGround,
		Width:  config.WidgetScreenWidth,
		Height: config.WidgetScreenHeight - config.GroundY,
		Fill:   colorGround,
		Accent: colorGrass,
		Scale:  1,
	})
	return entity
}

// NewCoinBlockEntity 创建问号砖块实体
//
// 参数：
//   - em: 实体管理器
//   - pulse: 被顶中时脉冲动画的时长（秒）
func NewCoinBlockEntity(em *ecs.EntityManager, pulse float64) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: config.BlockX, Y: config.BlockY})
	ecs.AddComponent(em, entity, &components.ShapeComponent{
		Kind:   components.ShapeBlock,
		Width:  config.BlockSize,
		Height: config.BlockSize,
		Fill:   colorBlock,
		Accent: colorBlockAccent,
		Scale:  1,
	})
	ecs.AddComponent(em, entity, components.NewStateClassComponent(widget.TargetBlock))
	ecs.AddComponent(em, entity, &components.BumpComponent{
		BaseY:    config.BlockY,
		Height:   config.BlockBumpHeight,
		Duration: pulse,
		MaxScale: BlockMaxScale,
	})
	return entity
}

// NewCharacterEntity 创建角色实体
// jump 是一次完整跳跃（起跳到落地）的时长（秒）
func NewCharacterEntity(em *ecs.EntityManager, jump float64) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: config.CharacterX, Y: config.CharacterY})
	ecs.AddComponent(em, entity, &components.ShapeComponent{
		Kind:   components.ShapeCharacter,
		Width:  config.CharacterWidth,
		Height: config.CharacterHeight,
		Fill:   colorCharacter,
		Accent: colorCap,
		Scale:  1,
	})
	ecs.AddComponent(em, entity, components.NewStateClassComponent(widget.TargetCharacter))
	ecs.AddComponent(em, entity, &components.JumpMotionComponent{
		BaseY:    config.CharacterY,
		Height:   config.JumpHeight,
		Duration: jump,
	})
	return entity
}

// NewButtonEntity 创建文字按钮实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 按钮左上角（屏幕坐标）
//   - label: 按钮文字
//   - font: 文字字体，可为 nil（不绘制文字）
//   - width, height: 按钮尺寸
//   - onClick: 点击回调函数
func NewButtonEntity(
	em *ecs.EntityManager,
	x, y float64,
	label string,
	font *text.GoTextFace,
	width, height float64,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Text:    label,
		Font:    font,
		Width:   width,
		Height:  height,
		State:   components.UINormal,
		Enabled: true,
		OnClick: onClick,
	})
	return entity
}

// NewMessagePanelEntity 为浮层创建消息面板实体
// 面板尺寸和换行由调用方通过 systems.LayoutMessagePanel 预先计算
func NewMessagePanelEntity(em *ecs.EntityManager, panel *components.MessagePanelComponent) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: config.PanelMargin, Y: config.PanelY})
	ecs.AddComponent(em, entity, panel)
	return entity
}

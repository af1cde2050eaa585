package systems

import (
	"time"

	"github.com/decker502/coinblock/pkg/components"
	"github.com/decker502/coinblock/pkg/ecs"
	"github.com/decker502/coinblock/pkg/utils"
	"github.com/decker502/coinblock/pkg/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyHandler 接收按键的对象（widget.Controller 实现了此接口）
type KeyHandler interface {
	HandleKey(k widget.Key) bool
}

// InputSystem 输入处理系统
//
// 职责：
//   - 指针（鼠标/触摸）释放时触发关闭按钮或跳跃按钮
//   - 空格触发跳跃，Esc 关闭浮层
//   - 连续两次触摸间隔不超过 DoubleTapWindow 时丢弃第二次
//   - 更新按钮和关闭按钮的悬停状态
type InputSystem struct {
	entityManager *ecs.EntityManager
	keys          KeyHandler
	tapFilter     *utils.TapFilter
	clock         time.Duration
}

// NewInputSystem 创建输入系统
// 参数：
//   - em: 实体管理器
//   - keys: 按键接收者，可为 nil
//   - doubleTapWindow: 双击抑制窗口（通常 300ms）
func NewInputSystem(em *ecs.EntityManager, keys KeyHandler, doubleTapWindow time.Duration) *InputSystem {
	return &InputSystem{
		entityManager: em,
		keys:          keys,
		tapFilter:     utils.NewTapFilter(doubleTapWindow),
	}
}

// Update 读取本帧输入并分发
func (s *InputSystem) Update(deltaTime float64) {
	s.Advance(deltaTime)
	utils.UpdateLastTouchPosition()

	x, y := utils.GetPointerPosition()
	s.UpdateHover(float64(x), float64(y), utils.IsPointerPressed())

	if ev, ok := utils.PollPointerRelease(); ok {
		s.HandlePointer(ev)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.HandleKey(widget.KeyJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.HandleKey(widget.KeyClose)
	}
}

// Advance 推进系统内部时钟（用于双击判断）
func (s *InputSystem) Advance(deltaTime float64) {
	s.clock += time.Duration(deltaTime * float64(time.Second))
}

// HandleKey 把按键转发给接收者
func (s *InputSystem) HandleKey(k widget.Key) bool {
	if s.keys == nil {
		return false
	}
	return s.keys.HandleKey(k)
}

// HandlePointer 处理一次指针点击，返回是否命中了可交互元素
// 浮层覆盖在按钮上方，因此先检查浮层的关闭按钮
func (s *InputSystem) HandlePointer(ev utils.PointerEvent) bool {
	if ev.Touch && !s.tapFilter.Accept(s.clock) {
		return false
	}

	px, py := float64(ev.X), float64(ev.Y)

	panels := ecs.GetEntitiesWith2[*components.MessagePanelComponent, *components.PositionComponent](s.entityManager)
	for _, entity := range panels {
		panel, _ := ecs.GetComponent[*components.MessagePanelComponent](s.entityManager, entity)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entity)

		cx, cy, cw, ch := PanelCloseBounds(pos, panel)
		if utils.PointInRect(px, py, cx, cy, cw, ch) {
			if panel.OnClose != nil {
				panel.OnClose()
			}
			return true
		}
	}

	buttons := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entity := range buttons {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entity)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entity)

		if !button.Enabled {
			continue
		}
		if utils.PointInRect(px, py, pos.X, pos.Y, button.Width, button.Height) {
			if button.OnClick != nil {
				button.OnClick()
			}
			return true
		}
	}

	return false
}

// UpdateHover 根据指针位置更新按钮和关闭按钮的显示状态
func (s *InputSystem) UpdateHover(px, py float64, pressed bool) {
	buttons := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entity := range buttons {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entity)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entity)

		switch {
		case !button.Enabled:
			button.State = components.UIDisabled
		case utils.PointInRect(px, py, pos.X, pos.Y, button.Width, button.Height):
			if pressed {
				button.State = components.UIClicked
			} else {
				button.State = components.UIHovered
			}
		default:
			button.State = components.UINormal
		}
	}

	panels := ecs.GetEntitiesWith2[*components.MessagePanelComponent, *components.PositionComponent](s.entityManager)
	for _, entity := range panels {
		panel, _ := ecs.GetComponent[*components.MessagePanelComponent](s.entityManager, entity)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entity)

		cx, cy, cw, ch := PanelCloseBounds(pos, panel)
		panel.CloseHovered = utils.PointInRect(px, py, cx, cy, cw, ch)
	}
}

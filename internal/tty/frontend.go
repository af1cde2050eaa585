package tty

import (
	"context"
	"log"
	"time"

	"github.com/decker502/coinblock/pkg/widget"
	"github.com/gdamore/tcell/v2"
)

// FrameInterval 终端前端的帧间隔
const FrameInterval = 16 * time.Millisecond

// Muter 可切换静音的音效播放器
type Muter interface {
	ToggleMute() bool
	IsMuted() bool
}

// Frontend 终端前端：把 tcell 事件转发给控制器并按固定帧率重绘
type Frontend struct {
	screen     tcell.Screen
	controller *widget.Controller
	view       *View
	muter      Muter // 可为 nil
	pressed    bool  // 左键是否处于按下状态
}

// NewFrontend 创建终端前端并把视图绑定到控制器
func NewFrontend(screen tcell.Screen, controller *widget.Controller, timings widget.Timings, muter Muter) *Frontend {
	view := NewView(timings.ResetDelay, timings.PulseDuration)
	controller.SetView(view)
	if o := controller.ActiveOverlay(); o != nil {
		view.MountOverlay(o)
	}
	return &Frontend{
		screen:     screen,
		controller: controller,
		view:       view,
		muter:      muter,
	}
}

// View 返回终端视图
func (f *Frontend) View() *View {
	return f.view
}

// Step 推进控制器和动画时钟
func (f *Frontend) Step(dt time.Duration) {
	f.view.Advance(dt)
	f.controller.Update(dt.Seconds())
}

// Draw 重绘画面
func (f *Frontend) Draw() {
	muted := f.muter != nil && f.muter.IsMuted()
	f.view.Draw(f.screen, muted)
}

// HandleEvent 处理一个终端事件，返回 false 表示应退出
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		f.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

func (f *Frontend) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		f.controller.HandleKey(widget.KeyJump)
		return true
	case tcell.KeyEscape:
		f.controller.HandleKey(widget.KeyClose)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r {
	case ' ':
		f.controller.HandleKey(widget.KeyJump)
	case 'x', 'X':
		f.controller.HandleKey(widget.KeyClose)
	case 'm', 'M':
		if f.muter != nil {
			f.muter.ToggleMute()
		}
	case 'q', 'Q':
		return false
	}
	return true
}

// handleMouse 与图形前端一致，在左键松开时才触发点击
// 按住拖动产生的事件只更新按下状态
func (f *Frontend) handleMouse(x, y int, buttons tcell.ButtonMask) {
	if buttons&tcell.Button1 != 0 {
		f.pressed = true
		return
	}
	if !f.pressed {
		return
	}
	f.pressed = false
	f.handleClick(x, y)
}

// handleClick 关闭按钮优先于跳跃按钮
func (f *Frontend) handleClick(x, y int) {
	if f.view.closeRect.contains(x, y) {
		f.controller.CloseMessage()
		return
	}
	if f.view.jumpRect.contains(x, y) {
		f.controller.TriggerJump()
	}
}

// Run 运行事件循环直到退出键或 ctx 取消
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	last := time.Now()
	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !f.HandleEvent(ev) {
				log.Printf("[Frontend] quit requested")
				return nil
			}
		case now := <-ticker.C:
			f.Step(now.Sub(last))
			last = now
			f.Draw()
		}
	}
}

package widget

import (
	"context"
	"log"
	"math"
	"time"
)

// Timings 跳跃序列的固定时长
type Timings struct {
	HitDelay      time.Duration // 起跳后多久顶到砖块
	ResetDelay    time.Duration // 起跳后多久回到地面、允许再次跳跃
	PulseDuration time.Duration // 砖块被顶中的脉冲持续时间
}

// DefaultTimings 返回默认时长：400ms 顶砖块，800ms 落地，500ms 脉冲
func DefaultTimings() Timings {
	return Timings{
		HitDelay:      400 * time.Millisecond,
		ResetDelay:    800 * time.Millisecond,
		PulseDuration: 500 * time.Millisecond,
	}
}

// ControllerConfig 控制器构造参数
type ControllerConfig struct {
	Source    MessageSource // 消息来源（Load 使用）
	View      View          // 界面边界，为 nil 时依赖界面的操作均为空操作
	Sound     SoundPlayer   // 音效边界，可为 nil
	Scheduler *Scheduler    // 为 nil 时自动创建
	Timings   Timings       // 零值时使用 DefaultTimings
}

// Controller 交互控制器
//
// 持有全部可变状态：消息列表、循环指针、跳跃标志和当前浮层。
// 所有方法都应在游戏循环所在的 goroutine 中调用。
type Controller struct {
	source    MessageSource
	view      View
	sound     SoundPlayer
	scheduler *Scheduler
	timings   Timings

	messages MessageList
	cursor   MessageCursor
	jumping  bool
	overlay  *Overlay
}

// NewController 创建控制器
func NewController(cfg ControllerConfig) *Controller {
	scheduler := cfg.Scheduler
	if scheduler == nil {
		scheduler = NewScheduler()
	}

	timings := cfg.Timings
	if timings == (Timings{}) {
		timings = DefaultTimings()
	}

	return &Controller{
		source:    cfg.Source,
		view:      cfg.View,
		sound:     cfg.Sound,
		scheduler: scheduler,
		timings:   timings,
		messages:  MessageList{},
	}
}

// SetView 绑定界面（场景创建完成后调用）
func (c *Controller) SetView(v View) {
	c.view = v
}

// SetSound 绑定音效播放器
func (c *Controller) SetSound(p SoundPlayer) {
	c.sound = p
}

// Load 同步加载消息列表，失败时替换为兜底列表
func (c *Controller) Load(ctx context.Context) {
	c.SetMessages(LoadMessages(ctx, c.source))
}

// SetMessages 整体替换消息列表，循环指针保持不变
func (c *Controller) SetMessages(list MessageList) {
	if list == nil {
		list = MessageList{}
	}
	c.messages = list
}

// Messages 返回当前消息列表
func (c *Controller) Messages() MessageList {
	return c.messages
}

// Cursor 返回循环指针的当前位置
func (c *Controller) Cursor() int {
	return c.cursor.Index()
}

// IsJumping 返回跳跃序列是否进行中
func (c *Controller) IsJumping() bool {
	return c.jumping
}

// ActiveOverlay 返回当前浮层，没有时返回 nil
func (c *Controller) ActiveOverlay() *Overlay {
	return c.overlay
}

// Scheduler 返回控制器使用的调度器
func (c *Controller) Scheduler() *Scheduler {
	return c.scheduler
}

// Update 推进调度器时钟
// 参数：
//   - deltaTime: 距上一帧的时间（秒）
func (c *Controller) Update(deltaTime float64) {
	c.scheduler.Advance(time.Duration(math.Round(deltaTime * float64(time.Second))))
}

// TriggerJump 触发一次跳跃
//
// 跳跃中、列表为空或没有绑定界面时为空操作，返回 false。
// 否则立即开始跳跃动画和音效，并在起跳时同时调度两个独立的延迟任务：
// HitDelay 后顶砖块，ResetDelay 后落地复位。
func (c *Controller) TriggerJump() bool {
	if c.jumping || len(c.messages) == 0 {
		return false
	}
	if c.view == nil {
		return false
	}

	c.jumping = true
	c.view.SetClass(TargetCharacter, ClassJumping, true)
	c.playSound(SoundJump)

	c.scheduler.After(c.timings.HitDelay, c.HitEffect)
	c.scheduler.After(c.timings.ResetDelay, func() {
		if c.view != nil {
			c.view.SetClass(TargetCharacter, ClassJumping, false)
		}
		c.jumping = false
	})
	return true
}

// HitEffect 砖块被顶中：脉冲、音效、显示下一条消息
func (c *Controller) HitEffect() {
	if c.view != nil {
		c.view.SetClass(TargetBlock, ClassHit, true)
	}
	c.playSound(SoundCoin)

	if msg, ok := c.NextMessage(); ok {
		c.ShowMessage(msg)
	}

	c.scheduler.After(c.timings.PulseDuration, func() {
		if c.view != nil {
			c.view.SetClass(TargetBlock, ClassHit, false)
		}
	})
}

// NextMessage 返回指针处的消息并前进；列表为空时返回 false
func (c *Controller) NextMessage() (Message, bool) {
	return c.cursor.Next(c.messages)
}

// ShowMessage 移除已有浮层并显示新消息
func (c *Controller) ShowMessage(msg Message) {
	if c.overlay != nil {
		if c.view != nil {
			c.view.UnmountOverlay(c.overlay)
		}
		c.overlay = nil
	}

	overlay := NewOverlay(msg)
	if c.view != nil {
		c.view.MountOverlay(overlay)
	}
	c.overlay = overlay
}

// CloseMessage 关闭当前浮层；不影响尚未执行的延迟任务
func (c *Controller) CloseMessage() {
	if c.overlay == nil {
		return
	}
	if c.view != nil {
		c.view.UnmountOverlay(c.overlay)
	}
	c.overlay = nil
}

// playSound 播放音效，失败只记录日志
func (c *Controller) playSound(id string) {
	if c.sound == nil {
		return
	}
	if err := c.sound.PlaySound(id); err != nil {
		log.Printf("[Controller] Failed to play sound %s: %v", id, err)
	}
}

// HandleKey 处理前端转发的按键，返回按键是否被消费
//
// 跳跃键总是被消费，即使本次跳跃被忽略，避免浏览器把空格当作滚动。
// 关闭键只有在有浮层时才被消费。
func (c *Controller) HandleKey(k Key) bool {
	switch k {
	case KeyJump:
		c.TriggerJump()
		return true
	case KeyClose:
		if c.overlay == nil {
			return false
		}
		c.CloseMessage()
		return true
	default:
		return false
	}
}

// Package utils 提供通用工具函数
package utils

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerEvent 一次指针点击（鼠标或触摸）
type PointerEvent struct {
	X, Y int
	// Touch 是否来自触摸输入
	Touch bool
}

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var lastTouchX, lastTouchY int

// UpdateLastTouchPosition 更新最后一次触摸位置
// 应该在每帧更新时调用
func UpdateLastTouchPosition() {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
	}
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// IsPointerPressed 检查是否有指针按下（鼠标左键或触摸）
func IsPointerPressed() bool {
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// PollPointerRelease 检查本帧是否有指针释放（即一次点击完成）
// 触摸释放时使用保存的最后触摸位置
func PollPointerRelease() (PointerEvent, bool) {
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return PointerEvent{X: lastTouchX, Y: lastTouchY, Touch: true}, true
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return PointerEvent{X: x, Y: y}, true
	}

	return PointerEvent{}, false
}

// TapFilter 双击抑制
//
// 距离上一次触摸结束不超过 Window 的触摸被丢弃。
// 被丢弃的触摸同样刷新"上一次触摸结束"的时间，
// 因此连续快速点击只有第一下生效。
type TapFilter struct {
	Window time.Duration

	last time.Duration
	seen bool
}

// NewTapFilter 创建双击抑制过滤器
func NewTapFilter(window time.Duration) *TapFilter {
	return &TapFilter{Window: window}
}

// Accept 记录一次发生在 now 的触摸结束，返回这次触摸是否应被处理
// now 是单调递增的时间（例如场景累计运行时间）
func (f *TapFilter) Accept(now time.Duration) bool {
	suppressed := f.seen && now-f.last <= f.Window
	f.last = now
	f.seen = true
	return !suppressed
}

// Reset 清除记录的触摸时间
func (f *TapFilter) Reset() {
	f.seen = false
	f.last = 0
}

// PointInRect 判断点是否位于矩形内（左上闭、右下开）
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}

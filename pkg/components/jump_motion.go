package components

// JumpMotionComponent 角色跳跃动画
// 状态类 jumping 生效期间沿抛物线上升再落下
type JumpMotionComponent struct {
	// BaseY 站在地面时的 Y 坐标
	BaseY float64
	// Height 最高点相对地面的高度（像素）
	Height float64
	// Duration 完整一次起落的时长（秒）
	Duration float64
	// Elapsed 本次跳跃已经过的时间（秒）
	Elapsed float64
	// IsActive 动画是否进行中
	IsActive bool
}

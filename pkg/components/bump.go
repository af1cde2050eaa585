package components

// BumpComponent 砖块被顶中时的脉冲动画
// 状态类 hit 生效期间砖块先上移再回落，同时轻微放大
type BumpComponent struct {
	BaseY    float64
	Height   float64 // 最大上移距离（像素）
	Duration float64 // 秒
	Elapsed  float64
	// MaxScale 脉冲最高点的缩放
	MaxScale float64
	IsActive bool
}

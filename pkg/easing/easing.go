// Package easing 提供动画缓动曲线
//
// 不依赖渲染后端，Ebitengine 前端和终端前端共用同一条跳跃曲线。
package easing

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInQuad 二次方缓入
// 特点：开始慢，结束较快
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseArc 上抛曲线：前半段 0→1 缓出上升，后半段 1→0 缓入下落
// 用于跳跃和砖块脉冲，t=0.5 时到达最高点
func EaseArc(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return EaseOutQuad(t * 2)
	}
	return 1 - EaseInQuad((t-0.5)*2)
}

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

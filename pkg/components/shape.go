package components

import "image/color"

// ShapeKind 矢量绘制的图形种类
type ShapeKind int

const (
	// ShapeCharacter 角色：身体、帽子和眼睛
	ShapeCharacter ShapeKind = iota
	// ShapeBlock 问号砖块
	ShapeBlock
	// ShapeGround 地面条带
	ShapeGround
)

// ShapeComponent 用 vector 包绘制的简单图形
// 没有图片资源，所有可见元素都由几何图形组成
type ShapeComponent struct {
	Kind   ShapeKind
	Width  float64
	Height float64
	Fill   color.RGBA
	// Accent 次要颜色（帽子、问号、描边）
	Accent color.RGBA
	// Scale 绘制缩放，围绕图形中心，1.0 为原始大小
	Scale float64
}

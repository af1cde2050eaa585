package components

import "github.com/decker502/coinblock/pkg/widget"

// StateClassComponent 元素当前的状态类集合
//
// 控制器通过 widget.View.SetClass 切换状态类，
// 动画系统只读取这里的状态，不直接与控制器交互。
type StateClassComponent struct {
	// Target 该实体对应的界面元素
	Target widget.Target
	// Classes 当前生效的状态类
	Classes map[string]bool
}

// NewStateClassComponent 创建空状态类集合
func NewStateClassComponent(target widget.Target) *StateClassComponent {
	return &StateClassComponent{
		Target:  target,
		Classes: make(map[string]bool),
	}
}

// Has 判断状态类是否生效
func (c *StateClassComponent) Has(class string) bool {
	return c.Classes[class]
}

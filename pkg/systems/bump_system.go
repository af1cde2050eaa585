package systems

import (
	"github.com/decker502/coinblock/pkg/components"
	"github.com/decker502/coinblock/pkg/ecs"
	"github.com/decker502/coinblock/pkg/easing"
	"github.com/decker502/coinblock/pkg/widget"
)

// BumpSystem 砖块脉冲系统
// 状态类 hit 生效期间砖块上弹并放大，移除后恢复原位
type BumpSystem struct {
	entityManager *ecs.EntityManager
}

// NewBumpSystem 创建砖块脉冲系统
func NewBumpSystem(em *ecs.EntityManager) *BumpSystem {
	return &BumpSystem{
		entityManager: em,
	}
}

// Update 更新所有脉冲动画
func (s *BumpSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith3[
		*components.BumpComponent,
		*components.StateClassComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, entity := range entities {
		bump, _ := ecs.GetComponent[*components.BumpComponent](s.entityManager, entity)
		classes, _ := ecs.GetComponent[*components.StateClassComponent](s.entityManager, entity)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entity)
		shape, hasShape := ecs.GetComponent[*components.ShapeComponent](s.entityManager, entity)

		if !classes.Has(widget.ClassHit) {
			bump.IsActive = false
			bump.Elapsed = 0
			pos.Y = bump.BaseY
			if hasShape {
				shape.Scale = 1
			}
			continue
		}

		if !bump.IsActive {
			bump.IsActive = true
			bump.Elapsed = 0
		}
		bump.Elapsed += dt

		progress := 1.0
		if bump.Duration > 0 {
			progress = bump.Elapsed / bump.Duration
		}
		arc := easing.EaseArc(progress)
		pos.Y = bump.BaseY - bump.Height*arc
		if hasShape {
			shape.Scale = easing.Lerp(1, bump.MaxScale, arc)
		}
	}
}

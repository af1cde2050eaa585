package systems

import (
	"github.com/decker502/coinblock/pkg/components"
	"github.com/decker502/coinblock/pkg/ecs"
	"github.com/decker502/coinblock/pkg/easing"
	"github.com/decker502/coinblock/pkg/widget"
)

// JumpMotionSystem 角色跳跃动画系统
// 状态类 jumping 生效期间沿上抛曲线移动角色，移除后立即回到地面
type JumpMotionSystem struct {
	entityManager *ecs.EntityManager
}

// NewJumpMotionSystem 创建跳跃动画系统
func NewJumpMotionSystem(em *ecs.EntityManager) *JumpMotionSystem {
	return &JumpMotionSystem{
		entityManager: em,
	}
}

// Update 更新所有跳跃动画
// 参数：
//   - dt: 时间增量（秒）
func (s *JumpMotionSystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith3[
		*components.JumpMotionComponent,
		*components.StateClassComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, entity := range entities {
		motion, _ := ecs.GetComponent[*components.JumpMotionComponent](s.entityManager, entity)
		classes, _ := ecs.GetComponent[*components.StateClassComponent](s.entityManager, entity)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entity)

		if !classes.Has(widget.ClassJumping) {
			motion.IsActive = false
			motion.Elapsed = 0
			pos.Y = motion.BaseY
			continue
		}

		if !motion.IsActive {
			motion.IsActive = true
			motion.Elapsed = 0
		}
		motion.Elapsed += dt

		progress := 1.0
		if motion.Duration > 0 {
			progress = motion.Elapsed / motion.Duration
		}
		pos.Y = motion.BaseY - motion.Height*easing.EaseArc(progress)
	}
}

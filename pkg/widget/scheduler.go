package widget

import (
	"sort"
	"time"
)

// scheduledTask 一个延迟任务
type scheduledTask struct {
	due time.Duration // 到期时刻（相对调度器起点）
	seq uint64        // 调度顺序，用于到期时刻相同时保持先后
	fn  func()
}

// Scheduler 基于虚拟时钟的延迟任务调度器
//
// 时钟只在 Advance 时前进，由游戏循环每帧推进，测试中可精确控制。
// 任务不可取消：与跳跃状态保护配合即可避免重入。
type Scheduler struct {
	now   time.Duration
	seq   uint64
	tasks []scheduledTask
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		tasks: make([]scheduledTask, 0, 4),
	}
}

// After 在 delay 之后执行 fn
func (s *Scheduler) After(delay time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.tasks = append(s.tasks, scheduledTask{due: s.now + delay, seq: s.seq, fn: fn})
}

// Advance 推进时钟并按到期顺序执行所有已到期任务
// 每个任务执行时时钟停在它的到期时刻，任务中新调度的延迟从该时刻算起；
// 新任务在本次推进的终点之前到期时也会在本次执行
func (s *Scheduler) Advance(dt time.Duration) {
	target := s.now
	if dt > 0 {
		target += dt
	}

	for {
		next := -1
		for i, task := range s.tasks {
			if task.due > target {
				continue
			}
			if next < 0 || task.due < s.tasks[next].due ||
				(task.due == s.tasks[next].due && task.seq < s.tasks[next].seq) {
				next = i
			}
		}
		if next < 0 {
			break
		}

		task := s.tasks[next]
		s.tasks = append(s.tasks[:next], s.tasks[next+1:]...)
		if task.due > s.now {
			s.now = task.due
		}
		task.fn()
	}

	s.now = target
}

// Now 返回调度器的当前时刻
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending 返回尚未执行的任务数量
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// PendingDelays 返回所有未执行任务距当前时刻的剩余时间（升序）
func (s *Scheduler) PendingDelays() []time.Duration {
	delays := make([]time.Duration, 0, len(s.tasks))
	for _, task := range s.tasks {
		delays = append(delays, task.due-s.now)
	}
	sort.Slice(delays, func(i, j int) bool { return delays[i] < delays[j] })
	return delays
}

package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// mockScene 记录调用次数的测试场景
type mockScene struct {
	updateCount int
	lastDelta   float64
	saved       bool
}

func (m *mockScene) Update(deltaTime float64) {
	m.updateCount++
	m.lastDelta = deltaTime
}

func (m *mockScene) Draw(screen *ebiten.Image) {}

// saveableScene 实现 Saveable 的测试场景
type saveableScene struct {
	mockScene
}

func (s *saveableScene) SaveOnExit() bool {
	s.saved = true
	return true
}

func TestSceneManagerStartsEmpty(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("New SceneManager should have no active scene")
	}

	// 没有场景时 Update 不应 panic
	sm.Update(1.0 / 60.0)
}

func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	first := &mockScene{}
	second := &mockScene{}

	sm.SwitchTo(first)
	sm.Update(0.5)
	sm.SwitchTo(second)
	sm.Update(0.25)

	if first.updateCount != 1 || first.lastDelta != 0.5 {
		t.Errorf("First scene: count=%d delta=%v", first.updateCount, first.lastDelta)
	}
	if second.updateCount != 1 || second.lastDelta != 0.25 {
		t.Errorf("Second scene: count=%d delta=%v", second.updateCount, second.lastDelta)
	}

	sm.SwitchTo(nil)
	if sm.GetCurrentScene() != second {
		t.Error("Switching to nil should keep the current scene")
	}
}

func TestSceneManagerSaveOnExit(t *testing.T) {
	sm := NewSceneManager()
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit without scene should succeed")
	}

	sm.SwitchTo(&mockScene{})
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit for non-saveable scene should succeed")
	}

	scene := &saveableScene{}
	sm.SwitchTo(scene)
	sm.SaveOnExit()
	if !scene.saved {
		t.Error("Saveable scene should be asked to save")
	}
}

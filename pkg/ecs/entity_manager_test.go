package ecs

import (
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 100, Y: 200})

	pos, found := GetComponent[*testPositionComponent](em, id)
	if !found {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	// 值类型和指针类型是不同的组件
	if _, found := GetComponent[testPositionComponent](em, id); found {
		t.Error("Value type should not match pointer component")
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	AddComponent(em, 42, &testPositionComponent{})

	if HasComponent[*testPositionComponent](em, 42) {
		t.Error("Component should not be attached to a missing entity")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Should not have component before adding")
	}

	AddComponent(em, id, &testPositionComponent{})
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Should have component after adding")
	}

	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Should not have component after removing")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})

	// 标记删除后，在清理前实体仍然存在
	em.DestroyEntity(id)
	if !em.Exists(id) {
		t.Error("Entity should still exist before RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after RemoveMarkedEntities")
	}
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Components should be removed with the entity")
	}
	if em.EntityCount() != 0 {
		t.Errorf("Expected 0 entities, got %d", em.EntityCount())
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	moving := em.CreateEntity()
	AddComponent(em, moving, &testPositionComponent{})
	AddComponent(em, moving, &testVelocityComponent{})

	static := em.CreateEntity()
	AddComponent(em, static, &testPositionComponent{})

	velocityOnly := em.CreateEntity()
	AddComponent(em, velocityOnly, &testVelocityComponent{})

	withPos := GetEntitiesWith1[*testPositionComponent](em)
	if len(withPos) != 2 || withPos[0] != moving || withPos[1] != static {
		t.Errorf("Position query: got %v, want [%d %d]", withPos, moving, static)
	}

	both := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(both) != 1 || both[0] != moving {
		t.Errorf("Position+Velocity query: got %v, want [%d]", both, moving)
	}
}

func TestGetEntitiesWithIsSorted(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i)})
	}

	ids := GetEntitiesWith1[*testPositionComponent](em)
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("Entities not sorted at %d: %v", i, ids)
		}
	}
}

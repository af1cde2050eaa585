package scenes

import (
	"testing"

	"github.com/decker502/coinblock/pkg/components"
	"github.com/decker502/coinblock/pkg/config"
	"github.com/decker502/coinblock/pkg/ecs"
	"github.com/decker502/coinblock/pkg/game"
	"github.com/decker502/coinblock/pkg/widget"
)

const frame = 1.0 / 60.0

func newTestWidgetScene(t *testing.T) (*WidgetScene, *widget.Controller) {
	t.Helper()
	controller := widget.NewController(widget.ControllerConfig{})
	controller.SetMessages(widget.MessageList{
		{Title: "First", Content: []string{"one", "two"}},
		{Title: "Second", Content: []string{"three"}},
	})

	scene := NewWidgetScene(game.NewResourceManager(nil), nil, controller, config.DefaultWidgetConfig())
	return scene, controller
}

func stepFor(scene *WidgetScene, seconds float64) {
	for elapsed := 0.0; elapsed < seconds-1e-9; elapsed += frame {
		scene.Step(frame)
	}
}

func hasClass(t *testing.T, scene *WidgetScene, target widget.Target, class string) bool {
	t.Helper()
	entity, ok := scene.TargetEntity(target)
	if !ok {
		t.Fatalf("No entity for %s", target)
	}
	classes, ok := ecs.GetComponent[*components.StateClassComponent](scene.EntityManager(), entity)
	if !ok {
		t.Fatalf("No StateClassComponent on %s", target)
	}
	return classes.Has(class)
}

func TestWidgetSceneBindsView(t *testing.T) {
	scene, controller := newTestWidgetScene(t)

	if !controller.TriggerJump() {
		t.Fatal("Jump should start once the scene is the view")
	}
	if !hasClass(t, scene, widget.TargetCharacter, widget.ClassJumping) {
		t.Error("Character should have the jumping class")
	}
}

func TestWidgetSceneJumpSequence(t *testing.T) {
	scene, controller := newTestWidgetScene(t)
	character, _ := scene.TargetEntity(widget.TargetCharacter)
	pos, _ := ecs.GetComponent[*components.PositionComponent](scene.EntityManager(), character)

	controller.TriggerJump()
	stepFor(scene, 0.2)
	if pos.Y >= config.CharacterY {
		t.Errorf("Character should be in the air, Y=%v", pos.Y)
	}

	stepFor(scene, 0.25) // ~0.45s
	if !hasClass(t, scene, widget.TargetBlock, widget.ClassHit) {
		t.Error("Block should be hit after 400ms")
	}
	if scene.PanelCount() != 1 {
		t.Errorf("Panels: got %d, want 1", scene.PanelCount())
	}

	stepFor(scene, 0.4) // ~0.85s
	if hasClass(t, scene, widget.TargetCharacter, widget.ClassJumping) {
		t.Error("Jumping class should be removed after 800ms")
	}
	if controller.IsJumping() {
		t.Error("Controller should accept a new jump")
	}
	if pos.Y != config.CharacterY {
		t.Errorf("Character should be back on the ground, Y=%v", pos.Y)
	}

	stepFor(scene, 0.1) // ~0.95s
	if hasClass(t, scene, widget.TargetBlock, widget.ClassHit) {
		t.Error("Hit class should be removed after 900ms")
	}
}

func TestWidgetSceneOverlayReplacedAndClosed(t *testing.T) {
	scene, controller := newTestWidgetScene(t)

	controller.ShowMessage(widget.Message{Title: "A", Content: []string{"x"}})
	controller.ShowMessage(widget.Message{Title: "B", Content: []string{"y"}})
	scene.Step(frame)
	if scene.PanelCount() != 1 {
		t.Fatalf("Panels: got %d, want exactly 1", scene.PanelCount())
	}

	panels := ecs.GetEntitiesWith1[*components.MessagePanelComponent](scene.EntityManager())
	panel, _ := ecs.GetComponent[*components.MessagePanelComponent](scene.EntityManager(), panels[0])
	if panel.Overlay.Title != "B" {
		t.Errorf("Panel title: got %q, want B", panel.Overlay.Title)
	}
	if panel.Height <= 0 || len(panel.ItemLines) != 1 {
		t.Errorf("Panel should be laid out: height=%v items=%d", panel.Height, len(panel.ItemLines))
	}

	panel.OnClose()
	scene.Step(frame)
	if scene.PanelCount() != 0 || controller.ActiveOverlay() != nil {
		t.Error("Close control should dismiss the overlay")
	}
}

func TestWidgetSceneMountsExistingOverlay(t *testing.T) {
	controller := widget.NewController(widget.ControllerConfig{})
	controller.ShowMessage(widget.Message{Title: "Early"})

	scene := NewWidgetScene(game.NewResourceManager(nil), nil, controller, nil)
	if scene.PanelCount() != 1 {
		t.Errorf("Existing overlay should be mounted, panels=%d", scene.PanelCount())
	}
}

func TestWidgetSceneToggleMute(t *testing.T) {
	controller := widget.NewController(widget.ControllerConfig{})
	settings := game.NewSettingsManager(nil, nil)
	scene := NewWidgetScene(game.NewResourceManager(nil), settings, controller, nil)

	scene.ToggleMute()
	if settings.GetSettings().SoundEnabled {
		t.Error("Sound should be disabled after toggle")
	}
	scene.ToggleMute()
	if !settings.GetSettings().SoundEnabled {
		t.Error("Sound should be enabled after second toggle")
	}
	if !scene.SaveOnExit() {
		t.Error("SaveOnExit without storage should succeed")
	}
}

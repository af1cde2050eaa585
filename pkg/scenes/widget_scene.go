package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/coinblock/pkg/components"
	"github.com/decker502/coinblock/pkg/config"
	"github.com/decker502/coinblock/pkg/ecs"
	"github.com/decker502/coinblock/pkg/entities"
	"github.com/decker502/coinblock/pkg/game"
	"github.com/decker502/coinblock/pkg/systems"
	"github.com/decker502/coinblock/pkg/utils"
	"github.com/decker502/coinblock/pkg/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// JumpButtonText 跳跃按钮文字
const JumpButtonText = "Jump!"

var colorHint = color.RGBA{R: 255, G: 255, B: 255, A: 200}

// WidgetScene 交互场景
//
// 持有角色、砖块、跳跃按钮和消息浮层实体，并实现 widget.View：
// 控制器切换的状态类写入 StateClassComponent，由动画系统读取；
// 挂载的浮层变成 MessagePanelComponent 实体。
type WidgetScene struct {
	entityManager   *ecs.EntityManager
	controller      *widget.Controller
	settingsManager *game.SettingsManager

	inputSystem      *systems.InputSystem
	jumpMotionSystem *systems.JumpMotionSystem
	bumpSystem       *systems.BumpSystem
	renderSystem     *systems.RenderSystem

	targets map[widget.Target]ecs.EntityID
	panels  map[*widget.Overlay]ecs.EntityID

	titleFont *text.GoTextFace
	bodyFont  *text.GoTextFace
}

// NewWidgetScene 创建交互场景并把自己绑定为控制器的界面
//
// 参数：
//   - rm: 资源管理器（加载字体）
//   - sm: 设置管理器（静音开关），可为 nil
//   - controller: 交互控制器
//   - cfg: 控件配置（动画时长、双击窗口）
func NewWidgetScene(rm *game.ResourceManager, sm *game.SettingsManager, controller *widget.Controller, cfg *config.WidgetConfig) *WidgetScene {
	if cfg == nil {
		cfg = config.DefaultWidgetConfig()
	}

	em := ecs.NewEntityManager()
	scene := &WidgetScene{
		entityManager:   em,
		controller:      controller,
		settingsManager: sm,
		targets:         make(map[widget.Target]ecs.EntityID),
		panels:          make(map[*widget.Overlay]ecs.EntityID),
	}

	scene.titleFont = scene.loadFont(rm, config.PanelTitleFontSize)
	scene.bodyFont = scene.loadFont(rm, config.PanelBodyFontSize)

	scene.inputSystem = systems.NewInputSystem(em, controller, cfg.Timing.DoubleTap())
	scene.jumpMotionSystem = systems.NewJumpMotionSystem(em)
	scene.bumpSystem = systems.NewBumpSystem(em)
	scene.renderSystem = systems.NewRenderSystem(em, scene.titleFont)

	scene.createEntities(cfg)
	controller.SetView(scene)

	// 控制器可能在场景创建前已有浮层（例如重新创建场景）
	if overlay := controller.ActiveOverlay(); overlay != nil {
		scene.MountOverlay(overlay)
	}

	return scene
}

func (s *WidgetScene) loadFont(rm *game.ResourceManager, size float64) *text.GoTextFace {
	face, err := rm.LoadFont(game.BundledFont, size)
	if err != nil {
		log.Printf("[WidgetScene] Failed to load font (size %.0f): %v", size, err)
		return nil
	}
	return face
}

// createEntities 创建地面、砖块、角色和跳跃按钮
// 创建顺序即绘制顺序
func (s *WidgetScene) createEntities(cfg *config.WidgetConfig) {
	em := s.entityManager

	entities.NewGroundEntity(em)
	s.targets[widget.TargetBlock] = entities.NewCoinBlockEntity(em, cfg.Timing.Pulse().Seconds())
	s.targets[widget.TargetCharacter] = entities.NewCharacterEntity(em, cfg.Timing.ResetDelay().Seconds())

	entities.NewButtonEntity(em,
		config.JumpButtonX, config.JumpButtonY,
		JumpButtonText, s.bodyFont,
		config.JumpButtonWidth, config.JumpButtonHeight,
		func() {
			s.controller.TriggerJump()
		},
	)
}

// SetClass 实现 widget.View
func (s *WidgetScene) SetClass(target widget.Target, class string, on bool) {
	entity, ok := s.targets[target]
	if !ok {
		log.Printf("[WidgetScene] Unknown target %s", target)
		return
	}
	classes, ok := ecs.GetComponent[*components.StateClassComponent](s.entityManager, entity)
	if !ok {
		return
	}
	classes.Classes[class] = on
}

// MountOverlay 实现 widget.View：为浮层创建面板实体
func (s *WidgetScene) MountOverlay(o *widget.Overlay) {
	if o == nil {
		return
	}
	if _, exists := s.panels[o]; exists {
		return
	}

	panel := &components.MessagePanelComponent{
		Overlay:   o,
		TitleFont: s.titleFont,
		BodyFont:  s.bodyFont,
		OnClose: func() {
			s.controller.CloseMessage()
		},
	}
	systems.LayoutMessagePanel(panel)

	s.panels[o] = entities.NewMessagePanelEntity(s.entityManager, panel)

	utils.MirrorOverlayMarkup(o.Markup)
}

// UnmountOverlay 实现 widget.View：销毁浮层对应的面板实体
func (s *WidgetScene) UnmountOverlay(o *widget.Overlay) {
	entity, ok := s.panels[o]
	if !ok {
		return
	}
	// 立即移除组件，避免同一帧内被再次点击或绘制
	ecs.RemoveComponent[*components.MessagePanelComponent](s.entityManager, entity)
	s.entityManager.DestroyEntity(entity)
	delete(s.panels, o)

	utils.MirrorOverlayMarkup("")
}

// Update 处理输入并推进动画
func (s *WidgetScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.ToggleMute()
	}
	s.inputSystem.Update(deltaTime)
	s.Step(deltaTime)
}

// Step 推进控制器时钟和动画系统（不读取输入）
func (s *WidgetScene) Step(deltaTime float64) {
	s.controller.Update(deltaTime)
	s.jumpMotionSystem.Update(deltaTime)
	s.bumpSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// ToggleMute 切换音效开关并保存设置
func (s *WidgetScene) ToggleMute() {
	if s.settingsManager == nil {
		return
	}
	enabled := s.settingsManager.ToggleSound()
	log.Printf("[WidgetScene] Sound enabled: %v", enabled)
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[WidgetScene] Failed to save settings: %v", err)
	}
}

// SaveOnExit 实现 game.Saveable
func (s *WidgetScene) SaveOnExit() bool {
	if s.settingsManager == nil {
		return true
	}
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[WidgetScene] Failed to save settings on exit: %v", err)
		return false
	}
	return true
}

// EntityManager 返回场景的实体管理器
func (s *WidgetScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// TargetEntity 返回界面元素对应的实体
func (s *WidgetScene) TargetEntity(target widget.Target) (ecs.EntityID, bool) {
	entity, ok := s.targets[target]
	return entity, ok
}

// PanelCount 返回当前挂载的浮层面板数量
func (s *WidgetScene) PanelCount() int {
	return len(ecs.GetEntitiesWith1[*components.MessagePanelComponent](s.entityManager))
}

// Draw 渲染场景
func (s *WidgetScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)
	s.renderSystem.Draw(screen)
	s.drawHint(screen)
}

// drawHint 桌面端显示键盘提示和静音状态
func (s *WidgetScene) drawHint(screen *ebiten.Image) {
	if utils.IsMobile() || s.bodyFont == nil || s.controller.ActiveOverlay() != nil {
		return
	}

	hint := "Space: jump   M: sound"
	if s.settingsManager != nil && !s.settingsManager.GetSettings().SoundEnabled {
		hint += " (muted)"
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(colorHint)
	text.Draw(screen, hint, s.bodyFont, op)
}

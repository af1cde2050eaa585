package systems

import (
	"image/color"

	"github.com/decker502/coinblock/pkg/components"
	"github.com/decker502/coinblock/pkg/config"
	"github.com/decker502/coinblock/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 调色板
var (
	colorButtonNormal  = color.RGBA{R: 229, G: 57, B: 53, A: 255}
	colorButtonHovered = color.RGBA{R: 244, G: 81, B: 77, A: 255}
	colorButtonPressed = color.RGBA{R: 183, G: 28, B: 28, A: 255}
	colorButtonBorder  = color.RGBA{R: 90, G: 16, B: 16, A: 255}
	colorPanelFill     = color.RGBA{R: 20, G: 24, B: 48, A: 235}
	colorPanelBorder   = color.RGBA{R: 255, G: 214, B: 0, A: 255}
	colorPanelText     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorCloseHovered  = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	colorEye           = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorPupil         = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// RenderSystem 渲染系统
// 负责绘制所有图形实体、按钮和消息浮层
//
// 绘制顺序：图形（按实体创建顺序）→ 按钮 → 浮层
type RenderSystem struct {
	entityManager *ecs.EntityManager
	// labelFont 砖块问号使用的字体，可为 nil
	labelFont *text.GoTextFace
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, labelFont *text.GoTextFace) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		labelFont:     labelFont,
	}
}

// Draw 渲染所有实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	shapes := ecs.GetEntitiesWith2[*components.ShapeComponent, *components.PositionComponent](s.entityManager)
	for _, entity := range shapes {
		shape, _ := ecs.GetComponent[*components.ShapeComponent](s.entityManager, entity)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entity)
		s.drawShape(screen, shape, pos)
	}

	buttons := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entity := range buttons {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entity)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entity)
		s.drawButton(screen, button, pos)
	}

	panels := ecs.GetEntitiesWith2[*components.MessagePanelComponent, *components.PositionComponent](s.entityManager)
	for _, entity := range panels {
		panel, _ := ecs.GetComponent[*components.MessagePanelComponent](s.entityManager, entity)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entity)
		s.drawPanel(screen, panel, pos)
	}
}

// scaledRect 围绕中心缩放矩形
func scaledRect(x, y, w, h, scale float64) (float32, float32, float32, float32) {
	if scale <= 0 {
		scale = 1
	}
	sw, sh := w*scale, h*scale
	return float32(x + (w-sw)/2), float32(y + (h-sh)/2), float32(sw), float32(sh)
}

func (s *RenderSystem) drawShape(screen *ebiten.Image, shape *components.ShapeComponent, pos *components.PositionComponent) {
	x, y, w, h := scaledRect(pos.X, pos.Y, shape.Width, shape.Height, shape.Scale)

	switch shape.Kind {
	case components.ShapeGround:
		vector.DrawFilledRect(screen, x, y, w, h, shape.Fill, false)
		vector.DrawFilledRect(screen, x, y, w, 4, shape.Accent, false)

	case components.ShapeBlock:
		vector.DrawFilledRect(screen, x, y, w, h, shape.Fill, false)
		vector.StrokeRect(screen, x+1, y+1, w-2, h-2, 2, shape.Accent, false)
		// 四角的铆钉
		for _, c := range [][2]float32{{x + 5, y + 5}, {x + w - 5, y + 5}, {x + 5, y + h - 5}, {x + w - 5, y + h - 5}} {
			vector.DrawFilledCircle(screen, c[0], c[1], 2, shape.Accent, true)
		}
		if s.labelFont != nil {
			op := &text.DrawOptions{}
			op.LayoutOptions.PrimaryAlign = text.AlignCenter
			op.LayoutOptions.SecondaryAlign = text.AlignCenter
			op.GeoM.Translate(float64(x+w/2), float64(y+h/2))
			op.ColorScale.ScaleWithColor(shape.Accent)
			text.Draw(screen, "?", s.labelFont, op)
		}

	case components.ShapeCharacter:
		hatHeight := h / 4
		vector.DrawFilledRect(screen, x, y+hatHeight, w, h-hatHeight, shape.Fill, false)
		vector.DrawFilledRect(screen, x-3, y+hatHeight-4, w+6, 4, shape.Accent, false)
		vector.DrawFilledRect(screen, x+2, y, w-4, hatHeight-4, shape.Accent, false)
		eyeY := y + hatHeight + 8
		vector.DrawFilledCircle(screen, x+w*0.35, eyeY, 4, colorEye, true)
		vector.DrawFilledCircle(screen, x+w*0.65, eyeY, 4, colorEye, true)
		vector.DrawFilledCircle(screen, x+w*0.35, eyeY, 2, colorPupil, true)
		vector.DrawFilledCircle(screen, x+w*0.65, eyeY, 2, colorPupil, true)
	}
}

func (s *RenderSystem) drawButton(screen *ebiten.Image, button *components.ButtonComponent, pos *components.PositionComponent) {
	fill := colorButtonNormal
	offsetY := float32(0)
	switch button.State {
	case components.UIHovered:
		fill = colorButtonHovered
	case components.UIClicked:
		fill = colorButtonPressed
		offsetY = 2
	case components.UIDisabled:
		fill = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	}

	x, y := float32(pos.X), float32(pos.Y)+offsetY
	w, h := float32(button.Width), float32(button.Height)
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 2, colorButtonBorder, false)

	if button.Font == nil || button.Text == "" {
		return
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter   // 水平居中
	op.LayoutOptions.SecondaryAlign = text.AlignCenter // 垂直居中
	op.GeoM.Translate(float64(x+w/2), float64(y+h/2))
	op.ColorScale.ScaleWithColor(colorPanelText)
	text.Draw(screen, button.Text, button.Font, op)
}

func (s *RenderSystem) drawPanel(screen *ebiten.Image, panel *components.MessagePanelComponent, pos *components.PositionComponent) {
	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(panel.Width), float32(panel.Height)
	vector.DrawFilledRect(screen, x, y, w, h, colorPanelFill, false)
	vector.StrokeRect(screen, x, y, w, h, 2, colorPanelBorder, false)

	s.drawCloseButton(screen, panel, pos)

	cursorY := pos.Y + config.PanelPadding
	textX := pos.X + config.PanelPadding

	for _, line := range panel.TitleLines {
		drawTextLine(screen, line, panel.TitleFont, textX, cursorY, colorPanelBorder)
		cursorY += titleLineHeight()
	}
	if len(panel.ItemLines) > 0 {
		cursorY += config.PanelLineSpacing * 2
	}

	for _, lines := range panel.ItemLines {
		bulletY := float32(cursorY + config.PanelBodyFontSize/2)
		vector.DrawFilledCircle(screen, float32(textX+4), bulletY, 2.5, colorPanelText, true)
		for _, line := range lines {
			drawTextLine(screen, line, panel.BodyFont, textX+config.PanelBulletIndent, cursorY, colorPanelText)
			cursorY += bodyLineHeight()
		}
	}
}

// drawCloseButton 关闭按钮用线段画出叉号，不依赖字体中是否有该字形
func (s *RenderSystem) drawCloseButton(screen *ebiten.Image, panel *components.MessagePanelComponent, pos *components.PositionComponent) {
	cx, cy, cw, ch := PanelCloseBounds(pos, panel)
	x, y, w, h := float32(cx), float32(cy), float32(cw), float32(ch)

	if panel.CloseHovered {
		vector.DrawFilledRect(screen, x, y, w, h, colorCloseHovered, false)
	}
	inset := float32(6)
	vector.StrokeLine(screen, x+inset, y+inset, x+w-inset, y+h-inset, 2, colorPanelText, true)
	vector.StrokeLine(screen, x+w-inset, y+inset, x+inset, y+h-inset, 2, colorPanelText, true)
}

func drawTextLine(screen *ebiten.Image, line string, font *text.GoTextFace, x, y float64, clr color.Color) {
	if font == nil || line == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, line, font, op)
}

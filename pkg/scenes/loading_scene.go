package scenes

import (
	"context"
	"image/color"
	"log"
	"math"
	"strings"

	"github.com/decker502/coinblock/pkg/config"
	"github.com/decker502/coinblock/pkg/game"
	"github.com/decker502/coinblock/pkg/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorSky     = color.RGBA{R: 92, G: 148, B: 252, A: 255}
	colorBarBack = color.RGBA{R: 255, G: 255, B: 255, A: 80}
	colorBarFill = color.RGBA{R: 255, G: 214, B: 0, A: 255}
)

// LoadingScene represents the loading screen shown while the message list is fetched.
// The fetch runs on its own goroutine; the result is applied to the controller
// on the game loop, after which the scene hands over to the widget scene.
type LoadingScene struct {
	sceneManager *game.SceneManager
	controller   *widget.Controller
	next         func() game.Scene

	results         <-chan widget.MessageList
	cancel          context.CancelFunc
	elapsedTime     float64 // Elapsed time since scene start
	loadingComplete bool

	textFontFace *text.GoTextFace // Font for the loading message
}

// NewLoadingScene creates a new loading scene and starts fetching messages from src.
// next builds the scene shown once loading is complete.
func NewLoadingScene(rm *game.ResourceManager, sm *game.SceneManager, controller *widget.Controller, src widget.MessageSource, next func() game.Scene) *LoadingScene {
	ctx, cancel := context.WithCancel(context.Background())

	scene := &LoadingScene{
		sceneManager: sm,
		controller:   controller,
		next:         next,
		results:      widget.LoadAsync(ctx, src),
		cancel:       cancel,
	}

	face, err := rm.LoadFont(game.BundledFont, config.PanelTitleFontSize)
	if err != nil {
		log.Printf("[LoadingScene] Failed to load font: %v", err)
	}
	scene.textFontFace = face

	return scene
}

// Update polls the asynchronous load and switches scenes when it completes.
func (s *LoadingScene) Update(deltaTime float64) {
	s.elapsedTime += deltaTime
	if s.loadingComplete {
		return
	}

	select {
	case list := <-s.results:
		s.loadingComplete = true
		s.cancel()
		s.controller.SetMessages(list)
		log.Printf("[LoadingScene] Loaded %d messages in %.2fs", len(list), s.elapsedTime)

		if s.next != nil {
			s.sceneManager.SwitchTo(s.next())
		}
	default:
	}
}

// IsLoadingComplete reports whether the message list has arrived.
func (s *LoadingScene) IsLoadingComplete() bool {
	return s.loadingComplete
}

// Draw renders the loading text and an indeterminate progress bar.
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)

	centerX := float64(config.WidgetScreenWidth) / 2
	centerY := float64(config.WidgetScreenHeight) / 2

	if s.textFontFace != nil {
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(centerX, centerY-30)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, loadingText(s.elapsedTime), s.textFontFace, op)
	}

	barWidth := float32(160)
	barHeight := float32(8)
	barX := float32(centerX) - barWidth/2
	barY := float32(centerY)
	vector.DrawFilledRect(screen, barX, barY, barWidth, barHeight, colorBarBack, false)

	// 来回移动的滑块
	slider := barWidth / 4
	phase := float32((math.Sin(s.elapsedTime*3) + 1) / 2)
	vector.DrawFilledRect(screen, barX+phase*(barWidth-slider), barY, slider, barHeight, colorBarFill, false)
}

// loadingText 返回带动态省略号的加载文字
func loadingText(elapsed float64) string {
	dots := int(elapsed*3) % 4
	return "Loading" + strings.Repeat(".", dots)
}

// Package app 提供控件应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端、浏览器端和移动端共用。
// 桌面端和浏览器端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/decker502/coinblock/pkg/config"
	"github.com/decker502/coinblock/pkg/embedded"
	"github.com/decker502/coinblock/pkg/game"
	"github.com/decker502/coinblock/pkg/scenes"
	"github.com/decker502/coinblock/pkg/utils"
	"github.com/decker502/coinblock/pkg/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// AppName gdata 存储目录名
	AppName = "coinblock"

	// DefaultConfigPath 嵌入的控件配置
	DefaultConfigPath = "data/widget.yaml"

	// ResourceConfigPath 嵌入的资源清单
	ResourceConfigPath = "assets/config/resources.yaml"

	sampleRate = 48000
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// MessagesPath 覆盖消息来源：本地文件路径或 http(s) URL，为空使用配置中的路径
	MessagesPath string
	// ConfigPath 磁盘上的控件配置文件，为空使用嵌入的 data/widget.yaml
	ConfigPath string
}

// App 是控件应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	widgetConfig    *config.WidgetConfig
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化控件应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	widgetConfig, err := LoadWidgetConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("控件配置加载失败: %w", err)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(sampleRate)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	// 用户设置（gdata 不可用时仅保存在内存中）
	settingsManager := game.NewSettingsManager(game.OpenStorage(AppName), &game.WidgetSettings{
		SoundVolume:  widgetConfig.Audio.Volume,
		SoundEnabled: true,
	})

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	audioManager.PreloadSounds([]string{widget.SoundJump, widget.SoundCoin})
	log.Printf("[App] AudioManager initialized")

	controller := widget.NewController(widget.ControllerConfig{
		Sound: audioManager,
		Timings: widget.Timings{
			HitDelay:      widgetConfig.Timing.HitDelay(),
			ResetDelay:    widgetConfig.Timing.ResetDelay(),
			PulseDuration: widgetConfig.Timing.Pulse(),
		},
	})

	source := SelectMessageSource(cfg.MessagesPath, widgetConfig.Messages.Path)
	log.Printf("[App] Loading messages from %s", source.Name())

	sceneManager := game.NewSceneManager()
	loadingScene := scenes.NewLoadingScene(resourceManager, sceneManager, controller, source, func() game.Scene {
		return scenes.NewWidgetScene(resourceManager, settingsManager, controller, widgetConfig)
	})
	sceneManager.SwitchTo(loadingScene)

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		widgetConfig:    widgetConfig,
		verbose:         cfg.Verbose,
	}, nil
}

// LoadWidgetConfig 读取控件配置
// path 为空时读取嵌入的 data/widget.yaml，嵌入文件也不存在时使用默认配置
func LoadWidgetConfig(path string) (*config.WidgetConfig, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = embedded.ReadFile(DefaultConfigPath)
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, embedded.ErrNotInitialized) {
			log.Printf("[App] %s not available, using default widget config", DefaultConfigPath)
			return config.DefaultWidgetConfig(), nil
		}
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return config.ParseWidgetConfig(data)
}

// SelectMessageSource 选择消息来源
//
// 优先级：
//  1. override 为 http(s) URL 时使用 HTTPSource
//  2. override 非空时读取本地文件
//  3. 浏览器中按页面相对路径请求（与页面部署在一起的数据文件）
//  4. 读取嵌入资源
func SelectMessageSource(override, defaultPath string) widget.MessageSource {
	switch {
	case strings.HasPrefix(override, "http://") || strings.HasPrefix(override, "https://"):
		return widget.HTTPSource{URL: override}
	case override != "":
		return widget.FileSource{Path: override}
	case utils.IsBrowser():
		return widget.HTTPSource{URL: utils.PageURL(defaultPath)}
	default:
		return widget.EmbeddedSource{Path: defaultPath}
	}
}

// Update 更新控件逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.widgetConfig.Window.Width, a.widgetConfig.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.widgetConfig.Window.Width, a.widgetConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)

	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}
	a.settingsManager.SetFullscreen(fullscreen)
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WidgetScreenWidth, config.WidgetScreenHeight
}

// GetSceneManager 返回场景管理器
// 用于在关闭时保存设置
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// WidgetConfig 返回生效的控件配置
func (a *App) WidgetConfig() *config.WidgetConfig {
	return a.widgetConfig
}

// StartFullscreen 返回上次退出时是否处于全屏
func (a *App) StartFullscreen() bool {
	return a.settingsManager.GetSettings().Fullscreen
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

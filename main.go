package main

import (
	"flag"
	"log"

	"github.com/decker502/coinblock/pkg/app"
	"github.com/decker502/coinblock/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	messages := flag.String("messages", "", "Message file path or http(s) URL (default: embedded assets/data/messages.json)")
	configPath := flag.String("config", "", "Widget config YAML (default: embedded data/widget.yaml)")
	flag.Parse()

	// 初始化嵌入资源
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		MessagesPath: *messages,
		ConfigPath:   *configPath,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	window := gameApp.WidgetConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.StartFullscreen())

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}

	// 窗口关闭后保存设置
	if !gameApp.GetSceneManager().SaveOnExit() {
		log.Printf("[Main] Failed to save settings on exit")
	}
}

// coinblock-tty 在终端中运行跳跃顶砖块控件
//
// 用法：
//
//	coinblock-tty [--messages path|url] [--config widget.yaml] [--volume 0.5] [--mute] [--log file]
//
// 按键：空格/回车跳跃，x/Esc 关闭消息，m 静音，q/Ctrl-C 退出；支持鼠标点击。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/decker502/coinblock/internal/tty"
	"github.com/decker502/coinblock/pkg/config"
	"github.com/decker502/coinblock/pkg/widget"
	"github.com/gdamore/tcell/v2"
)

func main() {
	messages := flag.String("messages", "", "Message file path or http(s) URL (default: messages.path from config)")
	configPath := flag.String("config", "", "Widget config YAML (default: built-in defaults)")
	volume := flag.Float64("volume", -1, "Sound volume 0.0 ~ 1.0 (default: audio.volume from config)")
	mute := flag.Bool("mute", false, "Start muted")
	logPath := flag.String("log", "", "Write logs to this file (the terminal is used for drawing)")
	flag.Parse()

	if err := setupLogging(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "log setup: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *volume >= 0 {
		cfg.Audio.Volume = *volume
	}

	timings := widget.Timings{
		HitDelay:      cfg.Timing.HitDelay(),
		ResetDelay:    cfg.Timing.ResetDelay(),
		PulseDuration: cfg.Timing.Pulse(),
	}
	controller := widget.NewController(widget.ControllerConfig{Timings: timings})

	source := selectSource(*messages, cfg.Messages.Path)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	controller.SetMessages(widget.LoadMessages(loadCtx, source))
	cancelLoad()
	log.Printf("[Main] Loaded %d messages from %s", len(controller.Messages()), source.Name())

	var muter tty.Muter
	player, err := tty.NewSpeakerPlayer(cfg.Audio.Volume)
	if err != nil {
		log.Printf("[Main] Audio disabled: %v", err)
	} else {
		defer player.Close()
		controller.SetSound(player)
		muter = player
		if *mute {
			player.ToggleMute()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	frontend := tty.NewFrontend(screen, controller, timings, muter)
	err = frontend.Run(ctx)
	screen.Fini()

	if err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// setupLogging 终端被占用，日志只能写入文件
func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}

func loadConfig(path string) (*config.WidgetConfig, error) {
	if path == "" {
		return config.DefaultWidgetConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return config.ParseWidgetConfig(data)
}

func selectSource(override, defaultPath string) widget.MessageSource {
	path := override
	if path == "" {
		path = defaultPath
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return widget.HTTPSource{URL: path}
	}
	return widget.FileSource{Path: path}
}

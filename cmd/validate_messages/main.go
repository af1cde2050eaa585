// validate_messages 检查消息文件和控件配置能否被正确加载
//
// 用法：
//
//	go run ./cmd/validate_messages [--messages assets/data/messages.json] [--config data/widget.yaml]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/coinblock/pkg/config"
	"github.com/decker502/coinblock/pkg/widget"
)

func main() {
	messagesPath := flag.String("messages", "assets/data/messages.json", "Message file (JSON or YAML)")
	configPath := flag.String("config", "data/widget.yaml", "Widget config YAML")
	flag.Parse()

	failed := false
	if !validateMessages(*messagesPath) {
		failed = true
	}
	if !validateConfig(*configPath) {
		failed = true
	}
	if failed {
		os.Exit(1)
	}
}

func validateMessages(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ 读取消息文件失败: %v\n", err)
		return false
	}

	list, err := widget.DecodeMessages(path, data)
	if err != nil {
		fmt.Printf("❌ 消息文件解析失败: %v\n", err)
		return false
	}
	fmt.Printf("✅ 消息格式正确: %s\n", path)
	fmt.Printf("✅ 消息数量: %d\n", len(list))

	if len(list) == 0 {
		fmt.Printf("❌ 消息列表为空，运行时将使用兜底消息\n")
		return false
	}

	ok := true
	for i, msg := range list {
		if msg.Title == "" {
			fmt.Printf("❌ 第 %d 条消息缺少 title\n", i+1)
			ok = false
		}
		if len(msg.Content) == 0 {
			fmt.Printf("⚠️  第 %d 条消息 (%s) 没有 content\n", i+1, msg.Title)
		}
	}
	return ok
}

func validateConfig(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ 读取配置失败: %v\n", err)
		return false
	}

	cfg, err := config.ParseWidgetConfig(data)
	if err != nil {
		fmt.Printf("❌ 配置无效: %v\n", err)
		return false
	}
	fmt.Printf("✅ 配置正确: %s\n", path)
	fmt.Printf("✅ 时序: 顶砖块 %v, 落地 %v, 脉冲 %v, 双击窗口 %v\n",
		cfg.Timing.HitDelay(), cfg.Timing.ResetDelay(), cfg.Timing.Pulse(), cfg.Timing.DoubleTap())
	return true
}

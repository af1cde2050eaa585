// Package widget 实现跳跃顶砖块小部件的交互核心
//
// 本包不依赖任何渲染或音频后端：Ebitengine 前端（pkg/scenes）和终端前端
// （internal/tty）都通过 View 和 SoundPlayer 接口驱动同一个 Controller。
package widget

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Message 一条展示在浮层中的消息
type Message struct {
	Title   string   `json:"title" yaml:"title"`     // 标题
	Content []string `json:"content" yaml:"content"` // 要点列表（每行一个）
}

// MessageList 按顺序排列的消息列表
// 加载完成后不可变，重新加载时整体替换
type MessageList []Message

// FallbackTitle 加载失败时兜底消息的标题
const FallbackTitle = "Error"

// FallbackMessages 返回加载失败时使用的兜底列表（恰好一条）
func FallbackMessages() MessageList {
	return MessageList{{
		Title:   FallbackTitle,
		Content: []string{"Could not load the messages. Please reload the page."},
	}}
}

// DecodeMessages 解析消息文件
//
// 参数：
//   - name: 文件名或 URL，仅用于根据扩展名选择格式（.yaml/.yml 为 YAML，其余为 JSON）
//   - data: 文件内容
//
// 返回：
//   - MessageList: 解析后的列表，content 为 null 的条目得到空切片
//   - error: 格式错误
func DecodeMessages(name string, data []byte) (MessageList, error) {
	var list MessageList

	switch strings.ToLower(path.Ext(stripQuery(name))) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("failed to parse YAML messages %s: %w", name, err)
		}
	default:
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("failed to parse JSON messages %s: %w", name, err)
		}
	}

	for i := range list {
		if list[i].Content == nil {
			list[i].Content = []string{}
		}
	}
	return list, nil
}

// stripQuery 去掉 URL 中的查询串和片段，便于判断扩展名
func stripQuery(name string) string {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		return name[:i]
	}
	return name
}

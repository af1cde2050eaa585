package widget

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/decker502/coinblock/pkg/embedded"
)

// DefaultMessagesPath 消息文件的固定相对路径
const DefaultMessagesPath = "assets/data/messages.json"

// MessageSource 消息文件的来源
type MessageSource interface {
	// Name 返回来源名称（路径或 URL），同时用于判断文件格式
	Name() string
	// Fetch 读取原始文件内容
	Fetch(ctx context.Context) ([]byte, error)
}

// EmbeddedSource 从嵌入资源中读取
type EmbeddedSource struct {
	Path string
}

// Name 实现 MessageSource
func (s EmbeddedSource) Name() string { return s.Path }

// Fetch 实现 MessageSource
func (s EmbeddedSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return embedded.ReadFile(s.Path)
}

// FileSource 从本地文件系统读取
type FileSource struct {
	Path string
}

// Name 实现 MessageSource
func (s FileSource) Name() string { return s.Path }

// Fetch 实现 MessageSource
func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read messages file %s: %w", s.Path, err)
	}
	return data, nil
}

// HTTPSource 通过 HTTP GET 获取
// 非 2xx 状态码视为失败
type HTTPSource struct {
	URL    string
	Client *http.Client // 为 nil 时使用 http.DefaultClient
}

// Name 实现 MessageSource
func (s HTTPSource) Name() string { return s.URL }

// Fetch 实现 MessageSource
func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", s.URL, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", s.URL, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", s.URL, err)
	}
	return data, nil
}

// LoadMessages 从来源读取并解析消息列表
//
// 任何失败（读取、状态码、解析）都会被记录并返回兜底列表，
// 因此返回值永远不为 nil。
func LoadMessages(ctx context.Context, src MessageSource) MessageList {
	if src == nil {
		log.Printf("[Loader] Error: no message source configured")
		return FallbackMessages()
	}

	data, err := src.Fetch(ctx)
	if err != nil {
		log.Printf("[Loader] Error loading messages: %v", err)
		return FallbackMessages()
	}

	list, err := DecodeMessages(src.Name(), data)
	if err != nil {
		log.Printf("[Loader] Error loading messages: %v", err)
		return FallbackMessages()
	}
	if list == nil {
		list = MessageList{}
	}

	log.Printf("[Loader] Loaded %d messages from %s", len(list), src.Name())
	return list
}

// LoadAsync 在后台 goroutine 中加载，结果通过通道返回
// 调用方应在游戏循环中接收结果并调用 Controller.SetMessages
func LoadAsync(ctx context.Context, src MessageSource) <-chan MessageList {
	out := make(chan MessageList, 1)
	go func() {
		out <- LoadMessages(ctx, src)
	}()
	return out
}

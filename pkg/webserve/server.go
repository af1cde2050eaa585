// Package webserve 为浏览器构建提供本地开发服务器
//
// 路由：
//   - GET /healthz                    健康检查
//   - GET /assets/data/messages.json  消息文件（页面按相对路径请求）
//   - 其余路径                         WASM 构建目录中的静态文件
package webserve

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// MessagesRoute 浏览器构建请求消息文件的路径
const MessagesRoute = "/assets/data/messages.json"

// Config 开发服务器配置
type Config struct {
	Addr         string // 监听地址，如 ":8080"
	WebDir       string // 包含 index.html、wasm_exec.js 和 coinblock.wasm 的目录
	MessagesPath string // 磁盘上的消息文件
}

// NewRouter 创建路由
func NewRouter(cfg Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())
	router.Use(noCache())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	serveMessages := func(c *gin.Context) {
		if _, err := os.Stat(cfg.MessagesPath); err != nil {
			log.Printf("[WebServe] Messages file unavailable: %v", err)
			c.JSON(http.StatusNotFound, gin.H{"error": "messages not found"})
			return
		}
		c.Header("Content-Type", "application/json; charset=utf-8")
		c.File(cfg.MessagesPath)
	}
	router.GET(MessagesRoute, serveMessages)
	router.HEAD(MessagesRoute, serveMessages)

	files := http.FileServer(http.Dir(cfg.WebDir))
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	})

	return router
}

// requestLogger 按 [WebServe] 前缀记录每个请求
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("[WebServe] %s %s %d %v", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// noCache 开发时每次都重新加载 wasm 和消息文件
func noCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache")
		c.Next()
	}
}

// Run 启动服务器，ctx 取消后优雅关闭
func Run(ctx context.Context, cfg Config) error {
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[WebServe] Listening on %s (web=%s, messages=%s)", cfg.Addr, cfg.WebDir, cfg.MessagesPath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("[WebServe] Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

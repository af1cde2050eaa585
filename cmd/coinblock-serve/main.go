// coinblock-serve 在本地提供浏览器构建
//
// 先构建 WASM：
//
//	GOOS=js GOARCH=wasm go build -o web/coinblock.wasm .
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" web/
//
// 然后运行 coinblock-serve 并打开 http://localhost:8080/
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/decker502/coinblock/pkg/webserve"
	"github.com/gin-gonic/gin"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	webDir := flag.String("web", "web", "Directory with index.html, wasm_exec.js and coinblock.wasm")
	messages := flag.String("messages", "assets/data/messages.json", "Message file served at "+webserve.MessagesRoute)
	debug := flag.Bool("debug", false, "Run gin in debug mode")
	flag.Parse()

	if !*debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := webserve.Run(ctx, webserve.Config{
		Addr:         *addr,
		WebDir:       *webDir,
		MessagesPath: *messages,
	})
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}
	log.Printf("[Main] Shutdown complete")
}

package main

import (
	"flag"
	"log"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"xiangqi/internal/config"
	"xiangqi/internal/server/game"
	httpserver "xiangqi/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，不关心错误（某些服务器环境可能无图形界面）
}

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	addr := flag.String("addr", cfg.Addr, "listen address")
	webDir := flag.String("web", cfg.WebDir, "directory with index.html / js / svg")
	origin := flag.String("origin", cfg.AllowOrigin, "allowed CORS origin for a separately served front-end")
	noBrowser := flag.Bool("no-browser", !cfg.OpenBrowser, "do not open the default browser")
	flag.Parse()

	app := httpserver.NewApp(game.NewManager(), httpserver.Options{
		WebDir:      *webDir,
		AllowOrigin: *origin,
		LogRequests: cfg.LogRequests,
	})

	log.Printf("listening on %s, serving static from %s (config: %s)", *addr, *webDir, config.Path())

	if !*noBrowser {
		// 延迟 100ms 打开默认浏览器，否则可能服务器未启动完成
		go func() {
			time.Sleep(100 * time.Millisecond)
			host := *addr
			if strings.HasPrefix(host, ":") {
				host = "127.0.0.1" + host
			}
			openBrowser("http://" + host + "/")
		}()
	}

	if err := app.Listen(*addr); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SentaPua/domdrawguess/internal/config"
	"github.com/SentaPua/domdrawguess/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("⚠️ 加载配置失败 (%v)，使用默认配置", err)
		cfg = config.Default()
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("❌ 初始化服务器失败: %v", err)
	}

	// 优雅关停
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("👋 收到退出信号，正在关停...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("⚠️ 关停出错: %v", err)
		}
	}()

	if err := srv.Start(); err != nil {
		log.Fatalf("❌ 服务器退出: %v", err)
	}
	log.Println("✅ 服务器已关停")
}

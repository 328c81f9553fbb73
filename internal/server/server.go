// Package server 实现 HTTP/WebSocket 服务器与连接生命周期管理。
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/SentaPua/domdrawguess/internal/config"
	"github.com/SentaPua/domdrawguess/internal/game/room"
	"github.com/SentaPua/domdrawguess/internal/game/words"
	"github.com/SentaPua/domdrawguess/internal/protocol"
	"github.com/SentaPua/domdrawguess/internal/server/handler"
	"github.com/SentaPua/domdrawguess/internal/server/storage"
)

// Server 游戏服务器
type Server struct {
	cfg      *config.Config
	rooms    *room.Manager
	registry handler.Registry
	deps     *handler.Deps

	connSemaphore chan struct{}
	httpServer    *http.Server

	stopStats chan struct{}
}

// NewServer 创建服务器：加载词表，按配置接入可选的 Redis 排行榜
func NewServer(cfg *config.Config) (*Server, error) {
	wordList, err := words.Load(cfg.Game.WordsFile)
	if err != nil {
		return nil, fmt.Errorf("加载词表失败: %w", err)
	}
	log.Printf("📖 词表加载完成，共 %d 个词", wordList.Len())

	rooms := room.NewManager(cfg.Game.RoundTime, wordList)

	var leaderboard *storage.LeaderboardManager
	if cfg.Redis.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		leaderboard, err = storage.NewLeaderboardManager(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		log.Printf("📊 排行榜存储已连接: %s", cfg.Redis.Addr)
	}

	return &Server{
		cfg:      cfg,
		rooms:    rooms,
		registry: handler.NewRegistry(),
		deps: &handler.Deps{
			Rooms:       rooms,
			Leaderboard: leaderboard,
		},
		connSemaphore: make(chan struct{}, cfg.Server.MaxConnections),
		stopStats:     make(chan struct{}),
	}, nil
}

// dispatch 把入站消息交给处理注册表
func (s *Server) dispatch(c *Client, msg *protocol.Message) {
	s.registry.Dispatch(s.deps, c, msg)
}

// Start 启动 HTTP 服务并阻塞到 Shutdown 被调用
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.Server.StaticDir))))
	mux.HandleFunc("/", s.handleIndex)

	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go s.monitorStats()

	log.Printf("🚀 服务器启动: %s", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown 优雅关停
func (s *Server) Shutdown(ctx context.Context) error {
	close(s.stopStats)

	if s.deps.Leaderboard != nil {
		if err := s.deps.Leaderboard.Close(); err != nil {
			log.Printf("⚠️ 关闭排行榜存储失败: %v", err)
		}
	}

	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// GetOnlineCount 返回当前在线连接数
func (s *Server) GetOnlineCount() int {
	return len(s.connSemaphore)
}

// RoomCount 返回当前房间数
func (s *Server) RoomCount() int {
	return s.rooms.RoomCount()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"online":  s.GetOnlineCount(),
		"rooms":   s.RoomCount(),
		"maxConn": cap(s.connSemaphore),
	})
}

// handleIndex 提供游戏页面；没有静态页面时退回 JSON 说明
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	index := filepath.Join(s.cfg.Server.StaticDir, "index.html")
	if _, err := os.Stat(index); err == nil {
		http.ServeFile(w, r, index)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"app":    "domdrawguess",
		"ws":     "/ws/{room}",
		"health": "/health",
	})
}

// monitorStats 周期性打印在线统计
func (s *Server) monitorStats() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopStats:
			return
		case <-ticker.C:
			log.Printf("📊 在线连接: %d, 房间数: %d", s.GetOnlineCount(), s.RoomCount())
		}
	}
}

package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/SentaPua/domdrawguess/internal/protocol"
)

const (
	// 玩家名长度上限（按字符数）
	maxNameLen = 24
	// 加入握手的首帧超时
	joinTimeout = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// 画板页面可能从任意来源托管
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWebSocket 处理 /ws/{room} 的升级与加入握手。
// 首帧必须是 {"name":...} 形式的加入请求，之后才进入消息循环。
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	roomID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/ws/"), "/")
	if roomID == "" {
		http.Error(w, "missing room id", http.StatusBadRequest)
		return
	}

	// 连接信号量：满员时直接拒绝升级
	select {
	case s.connSemaphore <- struct{}{}:
	default:
		log.Printf("⚠️ 达到连接上限 %d，拒绝新连接", cap(s.connSemaphore))
		http.Error(w, "too many connections", http.StatusServiceUnavailable)
		return
	}
	release := func() { <-s.connSemaphore }

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		release()
		log.Printf("⚠️ WebSocket 升级失败: %v", err)
		return
	}

	name, err := readJoinRequest(conn)
	if err != nil {
		log.Printf("⚠️ 加入握手失败: %v", err)
		conn.Close()
		release()
		return
	}

	client := newClient(uuid.New().String(), name, conn, s, release)

	log.Printf("✅ 新连接 %s (%s) → 房间 %s", client.GetName(), client.GetID(), roomID)

	s.rooms.Join(roomID, client)

	go client.WritePump()
	go client.ReadPump()
}

// readJoinRequest 读取并校验加入握手首帧
func readJoinRequest(conn *websocket.Conn) (string, error) {
	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(joinTimeout))
	defer conn.SetReadDeadline(time.Time{})

	_, data, err := conn.ReadMessage()
	if err != nil {
		return "", err
	}

	var req protocol.JoinRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return "", err
	}
	return sanitizeName(req.Name), nil
}

// sanitizeName 修剪玩家名：去首尾空白、截断到上限，空名用默认名
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Player"
	}
	if runes := []rune(name); len(runes) > maxNameLen {
		return string(runes[:maxNameLen])
	}
	return name
}

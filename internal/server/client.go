package server

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/SentaPua/domdrawguess/internal/protocol"
)

const (
	// 写超时
	writeWait = 10 * time.Second
	// 读取 pong 的超时
	pongWait = 60 * time.Second
	// ping 间隔，必须小于 pongWait
	pingPeriod = (pongWait * 9) / 10
	// 单条消息大小上限
	maxMessageSize = 4096
	// 发送队列长度
	sendQueueSize = 256
)

// Client WebSocket 连接的服务端封装
type Client struct {
	id   string
	name string
	conn *websocket.Conn
	send chan []byte

	mu     sync.Mutex
	room   string
	closed bool

	server *Server
	// release 归还连接信号量，断开时调用一次
	release func()
}

func newClient(id, name string, conn *websocket.Conn, srv *Server, release func()) *Client {
	return &Client{
		id:      id,
		name:    name,
		conn:    conn,
		send:    make(chan []byte, sendQueueSize),
		server:  srv,
		release: release,
	}
}

// GetID 返回客户端 ID
func (c *Client) GetID() string { return c.id }

// GetName 返回玩家名
func (c *Client) GetName() string { return c.name }

// GetRoom 返回所在房间 ID
func (c *Client) GetRoom() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.room
}

// SetRoom 设置所在房间 ID
func (c *Client) SetRoom(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.room = id
}

// SendMessage 编码消息并入发送队列。
// 队列已满说明连接消费过慢，丢弃本条而不阻塞房间锁。
func (c *Client) SendMessage(msg *protocol.Message) {
	data, err := msg.Encode()
	if err != nil {
		log.Printf("⚠️ 编码消息失败 type=%s: %v", msg.Type, err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	select {
	case c.send <- data:
	default:
		log.Printf("⚠️ 玩家 %s 发送队列已满，丢弃消息 type=%s", c.id, msg.Type)
	}
}

// Close 关闭发送队列，WritePump 随之退出并关闭底层连接
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// ReadPump 读取循环：解码入站消息并交给处理器分发。
// 返回时完成该连接的全部清理（退房、归还信号量、关连接）。
func (c *Client) ReadPump() {
	defer func() {
		c.server.rooms.Leave(c)
		c.Close()
		c.conn.Close()
		c.release()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("⚠️ 玩家 %s 连接异常断开: %v", c.id, err)
			}
			return
		}

		msg, err := protocol.Decode(data)
		if err != nil {
			log.Printf("⚠️ 玩家 %s 发来无法解析的消息: %v", c.id, err)
			continue
		}

		c.server.dispatch(c, msg)
	}
}

// WritePump 写入循环：消费发送队列并定期发 ping
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

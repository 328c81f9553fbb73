// Package client 实现连接游戏服务器的 WebSocket 客户端。
package client

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/SentaPua/domdrawguess/internal/protocol"
)

const (
	dialTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
)

// Client WebSocket 客户端
type Client struct {
	conn *websocket.Conn

	writeMu sync.Mutex
	receive chan *protocol.Message

	closeOnce sync.Once
	done      chan struct{}
}

// Connect 连接服务器
func Connect(url string) (*Client, error) {
	dialer := websocket.Dialer{HandshakeTimeout: dialTimeout}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("连接 %s 失败: %w", url, err)
	}

	c := &Client{
		conn:    conn,
		receive: make(chan *protocol.Message, 64),
		done:    make(chan struct{}),
	}
	go c.readPump()
	return c, nil
}

// Receive 返回入站消息通道；连接断开时通道关闭
func (c *Client) Receive() <-chan *protocol.Message {
	return c.receive
}

// Done 返回连接结束信号通道
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Close 关闭连接
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.writeMu.Lock()
		c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		c.writeMu.Unlock()
		c.conn.Close()
	})
}

// readPump 读取循环：解码入站消息并投递到 receive 通道
func (c *Client) readPump() {
	defer func() {
		close(c.receive)
		c.Close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
			default:
				log.Printf("⚠️ 连接断开: %v", err)
			}
			return
		}

		msg, err := protocol.Decode(data)
		if err != nil {
			log.Printf("⚠️ 无法解析的服务端消息: %v", err)
			continue
		}

		select {
		case c.receive <- msg:
		case <-c.done:
			return
		}
	}
}

// send 编码并发送一条消息
func (c *Client) send(msg *protocol.Message) error {
	data, err := msg.Encode()
	if err != nil {
		return err
	}
	return c.sendRaw(data)
}

// sendRaw 发送原始字节
func (c *Client) sendRaw(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

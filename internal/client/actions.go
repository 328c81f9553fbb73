package client

import (
	"encoding/json"

	"github.com/SentaPua/domdrawguess/internal/protocol"
)

// Join 发送加入握手首帧（约定不带 type 字段）
func (c *Client) Join(name string) error {
	data, err := json.Marshal(protocol.JoinRequest{Name: name})
	if err != nil {
		return err
	}
	return c.sendRaw(data)
}

// Guess 发送一次猜词
func (c *Client) Guess(guess string) error {
	return c.send(protocol.MustNewMessage(protocol.MsgGuess, protocol.GuessPayload{Guess: guess}))
}

// Start 请求开始第一回合
func (c *Client) Start() error {
	return c.send(protocol.MustNewMessage(protocol.MsgStart, nil))
}

// StartDrawing 画手确认开始作画
func (c *Client) StartDrawing() error {
	return c.send(protocol.MustNewMessage(protocol.MsgStartDrawing, nil))
}

// NextRound 请求进入下一回合
func (c *Client) NextRound() error {
	return c.send(protocol.MustNewMessage(protocol.MsgNextRound, nil))
}

// Clear 清空画布
func (c *Client) Clear() error {
	return c.send(protocol.MustNewMessage(protocol.MsgClear, nil))
}

// SendStroke 发送一条笔画
func (c *Client) SendStroke(stroke json.RawMessage) error {
	return c.send(protocol.MustNewMessage(protocol.MsgStroke, protocol.StrokePayload{Stroke: stroke}))
}

// GetLeaderboard 请求排行榜
func (c *Client) GetLeaderboard(limit int) error {
	return c.send(protocol.MustNewMessage(protocol.MsgGetLeaderboard, protocol.GetLeaderboardPayload{Limit: limit}))
}

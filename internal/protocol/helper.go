package protocol

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingType 消息缺少 type 字段
	ErrMissingType = errors.New("消息缺少 type 字段")
	// ErrNotObject 载荷不是 JSON 对象，无法拼入 type 字段
	ErrNotObject = errors.New("载荷不是 JSON 对象")
)

// NewMessage 创建一个新消息；payload 为 nil 时消息只含 type 字段
func NewMessage(msgType MessageType, payload any) (*Message, error) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		if len(data) < 2 || data[0] != '{' {
			return nil, fmt.Errorf("%w: %s", ErrNotObject, msgType)
		}
		raw = data
	}
	return &Message{Type: msgType, Raw: raw}, nil
}

// MustNewMessage 创建消息，失败时 panic（仅用于内部定义的载荷类型）
func MustNewMessage(msgType MessageType, payload any) *Message {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		panic(err)
	}
	return msg
}

// Encode 编码为扁平 JSON：把 type 成员拼入载荷对象的同一层级
func (m *Message) Encode() ([]byte, error) {
	head, err := json.Marshal(struct {
		Type MessageType `json:"type"`
	}{m.Type})
	if err != nil {
		return nil, err
	}

	raw := bytes.TrimSpace(m.Raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("{}")) {
		return head, nil
	}
	if raw[0] != '{' {
		return nil, fmt.Errorf("%w: %s", ErrNotObject, m.Type)
	}

	buf := GetBuffer()
	defer PutBuffer(buf)

	buf.Grow(len(head) + len(raw))
	buf.Write(head[:len(head)-1]) // 去掉收尾的 '}'
	buf.WriteByte(',')
	buf.Write(raw[1:]) // 去掉开头的 '{'

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// Decode 从扁平 JSON 字节解码消息，原始对象整体保留在 Raw 中
func Decode(data []byte) (*Message, error) {
	var head struct {
		Type MessageType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	if head.Type == "" {
		return nil, ErrMissingType
	}
	return &Message{Type: head.Type, Raw: data}, nil
}

// ParsePayload 解析消息的载荷到指定类型（type 字段会被忽略）
func ParsePayload[T any](msg *Message) (*T, error) {
	var payload T
	if len(msg.Raw) == 0 {
		return &payload, nil
	}
	if err := json.Unmarshal(msg.Raw, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

package protocol

import "encoding/json"

// JSON 键名沿用浏览器端约定的驼峰命名。

// --- 客户端请求 Payloads ---

// JoinRequest 连接后的第一帧：加入请求（无 type 字段）
type JoinRequest struct {
	Name string `json:"name"`
}

// StrokePayload 画笔笔画（双向，内容对服务端不透明）
type StrokePayload struct {
	Stroke json.RawMessage `json:"stroke"`
}

// GuessPayload 猜词请求
type GuessPayload struct {
	Guess string `json:"guess"`
}

// GetLeaderboardPayload 获取排行榜请求
type GetLeaderboardPayload struct {
	Limit int `json:"limit"` // 条目数量，<=0 时用默认值
}

// --- 服务端响应 Payloads ---

// JoinedPayload 加入成功响应（仅发给新加入的连接）
type JoinedPayload struct {
	PlayerID  string            `json:"playerId"`
	RoomID    string            `json:"roomId"`
	Players   []PlayerInfo      `json:"players"`
	Scores    map[string]int    `json:"scores"`
	Started   bool              `json:"started"`
	DrawerID  string            `json:"drawerId"`
	Strokes   []json.RawMessage `json:"strokes"`
	RoundTime int               `json:"roundTime"`
}

// PlayerJoinedPayload 其他玩家加入通知
type PlayerJoinedPayload struct {
	PlayerID string         `json:"playerId"`
	Name     string         `json:"name"`
	Players  []PlayerInfo   `json:"players"`
	Scores   map[string]int `json:"scores"`
}

// PlayerLeftPayload 玩家离开通知
type PlayerLeftPayload struct {
	PlayerID string         `json:"playerId"`
	Players  []PlayerInfo   `json:"players"`
	Scores   map[string]int `json:"scores"`
}

// GuessBroadcastPayload 未猜中的猜词原文（聊天式可见，包括画手）
type GuessBroadcastPayload struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Guess    string `json:"guess"`
}

// CorrectPayload 猜对通知
type CorrectPayload struct {
	PlayerID   string         `json:"playerId"`
	Name       string         `json:"name"`
	Scores     map[string]int `json:"scores"`
	Players    []PlayerInfo   `json:"players"`
	GuessOrder int            `json:"guessOrder"` // 1 起始的到达名次
	Points     int            `json:"points"`
}

// RoundStartPayload 回合开始（按接收者区分：画手拿到词，其他人只拿到词长）
type RoundStartPayload struct {
	Word        *string `json:"word"`
	YouDraw     bool    `json:"youDraw"`
	RoundTime   int     `json:"roundTime"`
	WordLength  int     `json:"wordLength,omitempty"`
	DrawerIntro bool    `json:"drawerIntro"`
}

// RoundStartBroadcastPayload 回合开始全房间通告
type RoundStartBroadcastPayload struct {
	DrawerID string       `json:"drawerId"`
	Players  []PlayerInfo `json:"players"`
}

// DrawingStartedPayload 画手开始作画通告
type DrawingStartedPayload struct {
	RoundTime int `json:"roundTime"`
}

// HintPayload 字母提示（只发给猜词者）
type HintPayload struct {
	Index  int    `json:"index"`
	Letter string `json:"letter"`
}

// LeaderboardPayload 排行榜结果
type LeaderboardPayload struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

// --- 通用数据结构 ---

// PlayerInfo 玩家信息
type PlayerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

package protocol

import "encoding/json"

// Message 基础消息结构
//
// 线路格式是扁平 JSON：type 字段与载荷字段位于同一层级（浏览器端约定），
// 例如 {"type":"guess","guess":"cat"}。Raw 保留完整的原始对象，
// ParsePayload 直接把整个对象反序列化到载荷类型上。
type Message struct {
	Type MessageType
	Raw  json.RawMessage
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	MsgStroke         MessageType = "stroke"          // 画笔笔画
	MsgClear          MessageType = "clear"           // 清空画板
	MsgGuess          MessageType = "guess"           // 猜词
	MsgStart          MessageType = "start"           // 开始第一回合
	MsgStartDrawing   MessageType = "start_drawing"   // 画手开始作画
	MsgNextRound      MessageType = "next_round"      // 进入下一回合
	MsgGetLeaderboard MessageType = "get_leaderboard" // 获取排行榜
)

// 服务端 → 客户端 消息类型
// 其中 stroke / clear / guess 双向复用同一类型名
const (
	MsgJoined              MessageType = "joined"                // 加入成功（仅发给新连接）
	MsgPlayerJoined        MessageType = "player_joined"         // 其他玩家加入
	MsgPlayerLeft          MessageType = "player_left"           // 玩家离开
	MsgRoundStart          MessageType = "round_start"           // 回合开始（按接收者区分画手/猜词者）
	MsgRoundStartBroadcast MessageType = "round_start_broadcast" // 回合开始全房间通告
	MsgDrawingStarted      MessageType = "drawing_started"       // 画手开始作画通告
	MsgCorrect             MessageType = "correct"               // 有人猜对
	MsgHint                MessageType = "hint"                  // 字母提示
	MsgLeaderboard         MessageType = "leaderboard"           // 排行榜结果
)

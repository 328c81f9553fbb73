package apperrors

// 错误分类码（仅用于内部日志，按协议约定不下发到连接）
const (
	CodeRoomNotFound   = 2001
	CodeNoPlayers      = 2002
	CodeAlreadyStarted = 3001
	CodeAlreadyDrawing = 3002
	CodeNotDrawer      = 3003
	CodeNoActiveWord   = 3004
)

// GameError 游戏错误：非法状态转换的内部分类。
// 对外表现为静默幂等拒绝，处理器只把它记录到日志。
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound   = &GameError{Code: CodeRoomNotFound, Message: "房间不存在"}
	ErrNoPlayers      = &GameError{Code: CodeNoPlayers, Message: "房间内没有玩家"}
	ErrAlreadyStarted = &GameError{Code: CodeAlreadyStarted, Message: "本局已经开始"}
	ErrAlreadyDrawing = &GameError{Code: CodeAlreadyDrawing, Message: "作画已经开始"}
	ErrNotDrawer      = &GameError{Code: CodeNotDrawer, Message: "只有画手可以开始作画"}
	ErrNoActiveWord   = &GameError{Code: CodeNoActiveWord, Message: "当前回合没有词"}
)

package room

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/SentaPua/domdrawguess/internal/apperrors"
	"github.com/SentaPua/domdrawguess/internal/game/score"
	"github.com/SentaPua/domdrawguess/internal/protocol"
)

// GuessResult 一次成功猜词的结算结果
type GuessResult struct {
	PlayerID string
	Name     string
	Rank     int // 1 起始的到达名次
	Points   int
	DrawerID string // 获得加分的画手；画手缺席或自猜时为空
}

// StartRound 开始房间的第一回合。
// 只有从未开始过的房间可以开始，之后的轮换走 NextRound。
func (r *Room) StartRound() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return apperrors.ErrAlreadyStarted
	}
	if len(r.playerOrder) == 0 {
		return apperrors.ErrNoPlayers
	}

	r.started = true
	r.beginRoundLocked()
	return nil
}

// NextRound 结束当前回合并轮换画手。
// 任何玩家都可以请求，与原回合是否画完、房间是否 start 过都无关；
// 唯一前置条件是房间里有人。started 只由 StartRound 置位。
func (r *Room) NextRound() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.playerOrder) == 0 {
		return apperrors.ErrNoPlayers
	}

	r.drawerIndex++
	r.beginRoundLocked()
	return nil
}

// beginRoundLocked 重置回合状态并选出新词。
// 先取消上一回合的提示定时器，再替换 word，顺序不能颠倒。
func (r *Room) beginRoundLocked() {
	r.cancelHintLocked()

	r.drawerIndex %= len(r.playerOrder)
	r.drawerID = r.playerOrder[r.drawerIndex]
	r.word = r.words.Random()
	r.strokes = nil
	r.revealed = make(map[int]struct{})
	r.correct = make(map[string]struct{})
	r.drawingStarted = false

	r.sendRoundStartLocked()

	r.broadcastLocked(protocol.MustNewMessage(protocol.MsgRoundStartBroadcast, protocol.RoundStartBroadcastPayload{
		DrawerID: r.drawerID,
		Players:  r.playersInfoLocked(),
	}))
}

// sendRoundStartLocked 逐人发送 round_start：
// 画手看到词本身，其余玩家只看到词长（按字符数而非字节数）。
func (r *Room) sendRoundStartLocked() {
	wordLen := len([]rune(r.word))
	for _, id := range r.playerOrder {
		payload := protocol.RoundStartPayload{
			YouDraw:     id == r.drawerID,
			RoundTime:   r.roundTime,
			DrawerIntro: true,
		}
		if id == r.drawerID {
			word := r.word
			payload.Word = &word
		} else {
			payload.WordLength = wordLen
		}
		r.sendToLocked(id, protocol.MustNewMessage(protocol.MsgRoundStart, payload))
	}
}

// StartDrawing 画手确认开始作画：广播 drawing_started 并启动提示定时器
func (r *Room) StartDrawing(playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.word == "" {
		return apperrors.ErrNoActiveWord
	}
	if playerID != r.drawerID {
		return apperrors.ErrNotDrawer
	}
	if r.drawingStarted {
		return apperrors.ErrAlreadyDrawing
	}

	r.drawingStarted = true

	r.broadcastLocked(protocol.MustNewMessage(protocol.MsgDrawingStarted, protocol.DrawingStartedPayload{
		RoundTime: r.roundTime,
	}))

	r.startHintLocked()
	return nil
}

// SubmitGuess 处理一次猜词。
// 没有进行中的词或未命中时原样广播给所有人（聊天路径）；
// 命中按到达名次计分并广播 correct，画手自猜同样计分但不发画手加分；
// 已猜对玩家的重复命中静默忽略。返回值仅在新命中时非 nil。
func (r *Room) SubmitGuess(playerID, guess string) *GuessResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[playerID]
	if !ok {
		return nil
	}

	normalized := strings.ToLower(strings.TrimSpace(guess))
	if r.word == "" || normalized != r.word {
		// 聊天路径：guess 原样转发，包括画手发言
		r.broadcastLocked(protocol.MustNewMessage(protocol.MsgGuess, protocol.GuessBroadcastPayload{
			PlayerID: playerID,
			Name:     p.Client.GetName(),
			Guess:    guess,
		}))
		return nil
	}

	if _, done := r.correct[playerID]; done {
		return nil
	}

	r.correct[playerID] = struct{}{}
	rank := len(r.correct)
	points := score.GuesserAward(rank)
	p.Score += points

	result := &GuessResult{
		PlayerID: playerID,
		Name:     p.Client.GetName(),
		Rank:     rank,
		Points:   points,
	}
	if drawer, ok := r.players[r.drawerID]; ok && r.drawerID != playerID {
		drawer.Score += score.DrawerBonus
		result.DrawerID = r.drawerID
	}

	r.broadcastLocked(protocol.MustNewMessage(protocol.MsgCorrect, protocol.CorrectPayload{
		PlayerID:   playerID,
		Name:       p.Client.GetName(),
		Scores:     r.scoresLocked(),
		Players:    r.playersInfoLocked(),
		GuessOrder: rank,
		Points:     points,
	}))

	return result
}

// AddStroke 追加一条笔画并转发给发送者以外的所有人。
// 笔画内容不做解析，原样存储与转发；空帧不进回放历史。
func (r *Room) AddStroke(playerID string, stroke json.RawMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[playerID]; !ok {
		return
	}
	if len(stroke) == 0 || bytes.Equal(bytes.TrimSpace(stroke), []byte("null")) {
		return
	}

	r.strokes = append(r.strokes, stroke)

	r.broadcastExceptLocked(playerID, protocol.MustNewMessage(protocol.MsgStroke, protocol.StrokePayload{
		Stroke: stroke,
	}))
}

// ClearStrokes 清空画布并向全房间（含发送者）广播 clear
func (r *Room) ClearStrokes(playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[playerID]; !ok {
		return
	}

	r.strokes = nil

	r.broadcastLocked(protocol.MustNewMessage(protocol.MsgClear, struct{}{}))
}

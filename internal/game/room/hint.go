package room

import (
	"context"
	"math/rand"
	"time"

	"github.com/SentaPua/domdrawguess/internal/protocol"
)

// HintSchedule 计算一回合的提示节奏：
// 间隔为回合时长的四分之一、不低于 12 秒，预算为整回合能容纳的间隔数。
func HintSchedule(roundTime int) (interval time.Duration, budget int) {
	secs := max(12, roundTime/4)
	interval = time.Duration(secs) * time.Second
	budget = roundTime / secs
	return interval, budget
}

// startHintLocked 为当前回合启动提示循环。
// 调用前必须已取消旧循环（beginRoundLocked 保证这一点）。
func (r *Room) startHintLocked() {
	interval, budget := HintSchedule(r.roundTime)
	if r.hintInterval > 0 {
		interval = r.hintInterval
	}
	if budget <= 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.hintCancel = cancel

	go r.hintLoop(ctx, r.word, interval, budget)
}

// cancelHintLocked 停止当前提示循环（若有）
func (r *Room) cancelHintLocked() {
	if r.hintCancel != nil {
		r.hintCancel()
		r.hintCancel = nil
	}
}

// hintLoop 每个间隔揭示一个字母，直到预算耗尽或被取消。
// word 作为回合标识随循环传入：锁重新拿到后若词已被替换则立即退出。
func (r *Room) hintLoop(ctx context.Context, word string, interval time.Duration, budget int) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := 0; i < budget; i++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !r.revealNextHint(ctx, word) {
				return
			}
		}
	}
}

// revealNextHint 随机揭示一个尚未揭示的字母并发给猜词方；
// 返回 false 表示循环应当终止。
func (r *Room) revealNextHint(ctx context.Context, word string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	// 取消与回合轮换可能发生在 ticker 触发与拿锁之间
	if ctx.Err() != nil || r.word != word {
		return false
	}

	runes := []rune(r.word)
	candidates := make([]int, 0, len(runes))
	for i := range runes {
		if _, done := r.revealed[i]; !done {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return false
	}

	idx := candidates[rand.Intn(len(candidates))]
	r.revealed[idx] = struct{}{}

	r.broadcastToGuessersLocked(r.drawerID, protocol.MustNewMessage(protocol.MsgHint, protocol.HintPayload{
		Index:  idx,
		Letter: string(runes[idx]),
	}))

	return true
}

// SetHintInterval 覆盖计算出的提示间隔（测试用）
func (r *Room) SetHintInterval(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hintInterval = d
}

package room

// RoundPhase 回合阶段
type RoundPhase int

const (
	// PhaseIdle 没有进行中的回合
	PhaseIdle RoundPhase = iota
	// PhaseIntro 词已选出、画手已得到通知，但尚未开始作画
	PhaseIntro
	// PhaseDrawing 作画进行中：猜词计分、提示定时器运行
	PhaseDrawing
)

// Phase 返回当前回合阶段
func (r *Room) Phase() RoundPhase {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case r.word == "":
		return PhaseIdle
	case r.drawingStarted:
		return PhaseDrawing
	default:
		return PhaseIntro
	}
}

// Package score 实现猜词计分规则。
package score

// 计分规则
const (
	// DrawerBonus 每个独立猜对的非画手玩家给画手的固定加分
	DrawerBonus = 25

	baseAward   = 100 // 第一名得分
	rankPenalty = 25  // 每名次递减
	minAward    = 10  // 得分下限
)

// GuesserAward 按 1 起始的到达名次计算猜词者得分。
// 第 1 名 100 分，之后每名递减 25，下限 10 分。
func GuesserAward(rank int) int {
	return max(minAward, baseAward-rankPenalty*(rank-1))
}

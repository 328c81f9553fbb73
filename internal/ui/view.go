package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View 渲染整个界面
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("你画我猜 · 房间 %s", m.roomID)))
	b.WriteString("\n\n")

	left := panelStyle.Render(m.renderWordPanel())
	right := panelStyle.Render(m.renderRoster())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")

	b.WriteString(panelStyle.Render(m.renderEvents()))
	b.WriteString("\n")

	if len(m.leaderboard) > 0 {
		b.WriteString(panelStyle.Render(m.renderLeaderboard()))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("错误: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("Enter 发送 · Esc 退出"))

	return b.String()
}

// renderWordPanel 渲染词面板：画手看到完整词，猜词方看到揭示掩码
func (m Model) renderWordPanel() string {
	var b strings.Builder

	switch {
	case !m.started:
		b.WriteString("等待开始，输入 /start 开局")
	case m.youDraw:
		b.WriteString(drawerStyle.Render("🎨 你是画手"))
		b.WriteString("\n")
		b.WriteString(wordStyle.Render(m.word))
	default:
		b.WriteString("词：")
		b.WriteString(wordStyle.Render(m.wordMask()))
	}

	if m.started {
		b.WriteString("\n")
		if m.drawingStarted {
			b.WriteString(fmt.Sprintf("⏱ 剩余 %d 秒", m.remaining))
		} else {
			b.WriteString(faintStyle.Render("等待画手开始作画"))
		}
	}
	return b.String()
}

// wordMask 按揭示进度构建掩码，如 c _ t
func (m Model) wordMask() string {
	if m.wordLen == 0 {
		return ""
	}
	parts := make([]string, m.wordLen)
	for i := range parts {
		if letter, ok := m.revealed[i]; ok {
			parts[i] = letter
		} else {
			parts[i] = "_"
		}
	}
	return strings.Join(parts, " ")
}

// renderRoster 渲染玩家名单与分数
func (m Model) renderRoster() string {
	var b strings.Builder
	b.WriteString("玩家\n")
	for _, p := range m.players {
		line := fmt.Sprintf("%s  %d 分", p.Name, p.Score)
		switch p.ID {
		case m.drawerID:
			line = drawerStyle.Render("🖌 " + line)
		case m.playerID:
			line = "▸ " + line
		default:
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderEvents 渲染事件日志
func (m Model) renderEvents() string {
	if len(m.events) == 0 {
		return faintStyle.Render("（暂无消息）")
	}
	return strings.Join(m.events, "\n")
}

// renderLeaderboard 渲染排行榜
func (m Model) renderLeaderboard() string {
	var b strings.Builder
	b.WriteString("🏆 排行榜\n")
	for _, e := range m.leaderboard {
		b.WriteString(fmt.Sprintf("%2d. %s  %d 分\n", e.Rank, e.Name, e.Score))
	}
	return strings.TrimRight(b.String(), "\n")
}

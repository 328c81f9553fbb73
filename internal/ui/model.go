// Package ui 实现终端玩家界面（猜词方视角为主）。
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SentaPua/domdrawguess/internal/client"
	"github.com/SentaPua/domdrawguess/internal/protocol"
	"github.com/SentaPua/domdrawguess/internal/sound"
)

const maxEventLines = 12

// serverMsg 服务器推送的一条消息
type serverMsg struct{ msg *protocol.Message }

// connClosedMsg 连接已断开
type connClosedMsg struct{}

// tickMsg 每秒倒计时
type tickMsg time.Time

// Model 终端界面模型
type Model struct {
	client *client.Client
	snd    *sound.Manager
	input  textinput.Model

	playerID string
	roomID   string
	players  []protocol.PlayerInfo
	scores   map[string]int
	drawerID string

	started        bool
	youDraw        bool
	word           string         // 画手视角的完整词
	wordLen        int            // 猜词方视角的词长
	revealed       map[int]string // 提示揭示的字母
	roundTime      int
	remaining      int
	drawingStarted bool

	leaderboard []protocol.LeaderboardEntry
	events      []string
	width       int
	height      int
	err         error
}

// NewModel 创建界面模型
func NewModel(c *client.Client, snd *sound.Manager) Model {
	input := textinput.New()
	input.Placeholder = "输入猜词，或 /start /draw /next /clear /top"
	input.CharLimit = 128
	input.Focus()

	return Model{
		client:   c,
		snd:      snd,
		input:    input,
		scores:   make(map[string]int),
		revealed: make(map[int]string),
	}
}

// Init 启动消息监听与倒计时
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.listen(), tick(), textinput.Blink)
}

// listen 等待下一条服务器消息
func (m Model) listen() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-m.client.Receive()
		if !ok {
			return connClosedMsg{}
		}
		return serverMsg{msg: msg}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update 处理输入与服务器事件
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.client.Close()
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submitInput()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case tickMsg:
		if m.drawingStarted && m.remaining > 0 {
			m.remaining--
		}
		return m, tick()

	case serverMsg:
		m = m.applyServerMessage(msg.msg)
		return m, m.listen()

	case connClosedMsg:
		m.addEvent(errorStyle.Render("连接已断开"))
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitInput 解析输入：斜杠命令或猜词
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if text == "" {
		return m, nil
	}

	var err error
	switch text {
	case "/start":
		err = m.client.Start()
	case "/draw":
		err = m.client.StartDrawing()
	case "/next":
		err = m.client.NextRound()
	case "/clear":
		err = m.client.Clear()
	case "/top":
		err = m.client.GetLeaderboard(10)
	default:
		err = m.client.Guess(text)
	}
	if err != nil {
		m.err = err
	}
	return m, nil
}

// applyServerMessage 把一条服务器消息合入界面状态
func (m Model) applyServerMessage(msg *protocol.Message) Model {
	switch msg.Type {
	case protocol.MsgJoined:
		p, err := protocol.ParsePayload[protocol.JoinedPayload](msg)
		if err != nil {
			m.err = err
			return m
		}
		m.playerID = p.PlayerID
		m.roomID = p.RoomID
		m.players = p.Players
		m.scores = p.Scores
		m.started = p.Started
		m.drawerID = p.DrawerID
		m.roundTime = p.RoundTime
		m.addEvent(fmt.Sprintf("已加入房间 %s（%d 人在线）", p.RoomID, len(p.Players)))

	case protocol.MsgPlayerJoined:
		p, err := protocol.ParsePayload[protocol.PlayerJoinedPayload](msg)
		if err != nil {
			m.err = err
			return m
		}
		m.players = p.Players
		m.scores = p.Scores
		m.addEvent(fmt.Sprintf("👤 %s 加入了房间", p.Name))

	case protocol.MsgPlayerLeft:
		p, err := protocol.ParsePayload[protocol.PlayerLeftPayload](msg)
		if err != nil {
			m.err = err
			return m
		}
		m.players = p.Players
		m.scores = p.Scores
		m.addEvent("👋 有玩家离开了房间")

	case protocol.MsgRoundStart:
		p, err := protocol.ParsePayload[protocol.RoundStartPayload](msg)
		if err != nil {
			m.err = err
			return m
		}
		m.started = true
		m.youDraw = p.YouDraw
		m.roundTime = p.RoundTime
		m.remaining = p.RoundTime
		m.drawingStarted = false
		m.revealed = make(map[int]string)
		if p.Word != nil {
			m.word = *p.Word
			m.wordLen = len([]rune(*p.Word))
			m.addEvent(wordStyle.Render(fmt.Sprintf("🎨 轮到你画了！词是「%s」，输入 /draw 开始", *p.Word)))
		} else {
			m.word = ""
			m.wordLen = p.WordLength
			m.addEvent("🔔 新回合开始，等待画手作画")
		}
		m.snd.Play("round_start")

	case protocol.MsgRoundStartBroadcast:
		p, err := protocol.ParsePayload[protocol.RoundStartBroadcastPayload](msg)
		if err != nil {
			m.err = err
			return m
		}
		m.drawerID = p.DrawerID
		m.players = p.Players

	case protocol.MsgDrawingStarted:
		p, err := protocol.ParsePayload[protocol.DrawingStartedPayload](msg)
		if err != nil {
			m.err = err
			return m
		}
		m.drawingStarted = true
		m.remaining = p.RoundTime
		m.addEvent("✏️ 作画开始，开猜！")

	case protocol.MsgGuess:
		p, err := protocol.ParsePayload[protocol.GuessBroadcastPayload](msg)
		if err != nil {
			m.err = err
			return m
		}
		m.addEvent(fmt.Sprintf("%s: %s", p.Name, p.Guess))

	case protocol.MsgCorrect:
		p, err := protocol.ParsePayload[protocol.CorrectPayload](msg)
		if err != nil {
			m.err = err
			return m
		}
		m.players = p.Players
		m.scores = p.Scores
		m.addEvent(correctStyle.Render(fmt.Sprintf("✅ %s 第 %d 个猜对，+%d 分", p.Name, p.GuessOrder, p.Points)))
		m.snd.Play("correct")

	case protocol.MsgHint:
		p, err := protocol.ParsePayload[protocol.HintPayload](msg)
		if err != nil {
			m.err = err
			return m
		}
		m.revealed[p.Index] = p.Letter
		m.addEvent(hintStyle.Render(fmt.Sprintf("💡 提示：第 %d 个字母是 %s", p.Index+1, p.Letter)))
		m.snd.Play("hint")

	case protocol.MsgLeaderboard:
		p, err := protocol.ParsePayload[protocol.LeaderboardPayload](msg)
		if err != nil {
			m.err = err
			return m
		}
		m.leaderboard = p.Entries

	case protocol.MsgClear:
		m.addEvent(faintStyle.Render("🧽 画布被清空"))

	case protocol.MsgStroke:
		// 终端界面不渲染画布，笔画帧忽略
	}

	return m
}

// addEvent 追加一行事件日志并裁剪到上限
func (m *Model) addEvent(line string) {
	m.events = append(m.events, line)
	if len(m.events) > maxEventLines {
		m.events = m.events[len(m.events)-maxEventLines:]
	}
}

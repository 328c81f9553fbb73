package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SentaPua/domdrawguess/internal/client"
	"github.com/SentaPua/domdrawguess/internal/sound"
	"github.com/SentaPua/domdrawguess/internal/ui"
)

func main() {
	server := flag.String("server", "localhost:7860", "服务器地址")
	room := flag.String("room", "lobby", "房间 ID")
	name := flag.String("name", "", "玩家名")
	flag.Parse()

	url := fmt.Sprintf("ws://%s/ws/%s", *server, *room)

	c, err := client.Connect(url)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer c.Close()

	if err := c.Join(*name); err != nil {
		log.Fatalf("❌ 加入房间失败: %v", err)
	}

	snd := sound.NewManager()
	if err := snd.Init(); err != nil {
		// 没有音频设备时照常游玩
		log.Printf("⚠️ 音效不可用: %v", err)
	}
	defer snd.Close()

	p := tea.NewProgram(ui.NewModel(c, snd), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "界面退出出错: %v\n", err)
		os.Exit(1)
	}
}

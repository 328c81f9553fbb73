// Package words 加载猜词词表并提供随机取词。
//
// 词表文件为纯文本：每行若干个逗号分隔的同义词，# 开头的行是注释。
// 文件缺失或内容为空时退回到内置词表。
package words

import (
	"math/rand"
	"os"
	"strings"
)

// 内置兜底词表
var fallback = []string{"cat", "dog", "sun", "moon", "star", "fish", "house", "tree", "apple", "bird"}

// List 只读词表
type List struct {
	words []string
}

// Load 从文件加载词表；文件不存在或为空时使用内置词表
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &List{words: fallback}, nil
		}
		return nil, err
	}

	ws := parse(string(data))
	if len(ws) == 0 {
		ws = fallback
	}
	return &List{words: ws}, nil
}

// NewList 从给定词构建词表（主要用于测试）；空切片时使用内置词表
func NewList(ws []string) *List {
	if len(ws) == 0 {
		ws = fallback
	}
	return &List{words: ws}
}

// parse 解析词表文本：跳过空行和注释，逐词去空白转小写，保序去重
func parse(text string) []string {
	seen := make(map[string]struct{})
	var ws []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, w := range strings.Split(line, ",") {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" {
				continue
			}
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			ws = append(ws, w)
		}
	}
	return ws
}

// Random 均匀随机返回一个词
func (l *List) Random() string {
	return l.words[rand.Intn(len(l.words))]
}

// Len 返回词数
func (l *List) Len() int {
	return len(l.words)
}

// Words 返回词表副本
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

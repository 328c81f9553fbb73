//go:build ci

package sound

// Manager CI 环境下的空实现
type Manager struct{}

// NewManager 创建音效管理器
func NewManager() *Manager { return &Manager{} }

// Init 空实现
func (m *Manager) Init() error { return nil }

// Play 空实现
func (m *Manager) Play(name string) {}

// Close 空实现
func (m *Manager) Close() {}

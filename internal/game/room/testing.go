//go:build !production

package room

// NewManagerForTest 创建不带存储和清理协程的管理器
func NewManagerForTest() *Manager {
	return &Manager{
		rooms: make(map[string]*Room),
	}
}

// AddRoomForTest 添加房间用于测试
func (m *Manager) AddRoomForTest(r *Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[r.Code] = r
}

package room

import (
	"context"
	"log"
	"math/rand/v2"
	"time"
)

const (
	roomCodeLength = 6                                      // 房间号长度
	roomCodeChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" // 房间号字符集
)

// generateRoomCode 生成唯一房间号，碰撞时重新生成（调用方需持有 m.mu）
func (m *Manager) generateRoomCode() string {
	for {
		code := make([]byte, roomCodeLength)
		for i := range code {
			code[i] = roomCodeChars[rand.IntN(len(roomCodeChars))]
		}
		codeStr := string(code)
		if _, exists := m.rooms[codeStr]; !exists {
			return codeStr
		}
	}
}

// cleanupLoop 定期清理闲置房间
func (m *Manager) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		m.cleanup()
	}
}

// cleanup 清理超过闲置时限的房间
//
// 按最后活跃时间回收，进行中的对局每次操作都会刷新活跃时间。
func (m *Manager) cleanup() {
	if m.roomTimeout <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()

	for code, r := range m.rooms {
		r.RLock()
		expired := now.Sub(r.LastActive) > m.roomTimeout
		r.RUnlock()

		if !expired {
			continue
		}

		delete(m.rooms, code)
		if m.store != nil {
			go func(code string) { _ = m.store.DeleteRoom(context.Background(), code) }(code)
		}
		log.Printf("🧹 房间 %s 闲置超时已清理", code)
	}
}

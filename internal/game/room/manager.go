package room

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/palemoky/guess-the-card/internal/server/storage"
)

// Registry 房间注册表，房间生命周期的唯一入口
// 接口保持窄：创建、查找、存在性检查；没有删除操作，
// 闲置房间由 Manager 的清理协程按 TTL 回收
type Registry interface {
	Create(host string) *Room
	Get(code string) *Room
	Exists(code string) bool
}

// Saver 房间快照存储
type Saver interface {
	Snapshot(r *Room)
}

// Manager 进程内房间注册表，Registry 的规范实现
type Manager struct {
	store       *storage.RedisStore // 可为 nil（测试或无 Redis 部署）
	roomTimeout time.Duration
	rooms       map[string]*Room
	mu          sync.RWMutex
}

// NewManager 创建房间管理器并启动闲置清理协程
func NewManager(store *storage.RedisStore, roomTimeout time.Duration) *Manager {
	m := &Manager{
		store:       store,
		roomTimeout: roomTimeout,
		rooms:       make(map[string]*Room),
	}

	// 启动房间清理协程
	go m.cleanupLoop()

	return m
}

// Create 分配唯一房间号并创建房间
func (m *Manager) Create(host string) *Room {
	m.mu.Lock()
	defer m.mu.Unlock()

	code := m.generateRoomCode()
	r := NewRoom(code, host)
	m.rooms[code] = r

	log.Printf("🏠 房间 %s 已创建，创建者 %s", code, host)

	return r
}

// Get 查找房间，不存在时返回 nil
func (m *Manager) Get(code string) *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rooms[code]
}

// Exists 房间号是否已被占用
func (m *Manager) Exists(code string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.rooms[code]
	return ok
}

// Count 当前房间数量
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// Snapshot 异步保存房间快照到 Redis
// 在释放房间锁之后调用，ToRoomData 会自行加读锁
func (m *Manager) Snapshot(r *Room) {
	if m.store == nil {
		return
	}
	go func() { _ = m.store.SaveRoom(context.Background(), r.Code, r.ToRoomData()) }()
}

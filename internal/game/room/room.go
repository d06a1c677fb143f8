package room

import (
	"sync"
	"time"

	"github.com/palemoky/guess-the-card/internal/game/card"
	"github.com/palemoky/guess-the-card/internal/protocol"
	"github.com/palemoky/guess-the-card/internal/types"
)

// RoomState 房间状态
type RoomState int

const (
	RoomStateWaiting  RoomState = iota // 等待第二名玩家加入
	RoomStateReadying                  // 人齐，等待双方准备
	RoomStatePlaying                   // 游戏进行中
	RoomStateEnded                     // 游戏结束
)

// MaxPlayers 每个房间的玩家上限
const MaxPlayers = 2

// Room 游戏房间，一局双人猜牌对战的聚合根
//
// 嵌入的读写锁保护所有字段；会话层在整个操作期间持锁，
// 保证同一房间上的并发操作被线性化（不同房间互不阻塞）。
type Room struct {
	sync.RWMutex

	Code        string               // 房间号
	Host        string               // 创建者
	Players     []string             // 玩家名，按加入顺序，Players[0] 先手
	Ready       *ReadySet            // 已准备的玩家
	State       RoomState            // 房间状态
	CommonCards []card.Card          // 公共牌池，开局时抽取，之后不变
	PlayerCards map[string]card.Card // 每位玩家的秘密卡牌
	GuessesLeft map[string]int       // 每位玩家剩余的猜牌次数
	CurrentTurn string               // 当前回合玩家，开局前为空
	Winner      string               // 获胜者，结束前为空
	CreatedAt   time.Time            // 创建时间
	LastActive  time.Time            // 最后一次操作时间（用于闲置清理）

	subs map[string]types.ClientInterface // 玩家名 -> 事件频道订阅
}

// NewRoom 创建房间，创建者为首位玩家和房主
func NewRoom(code, host string) *Room {
	now := time.Now()
	return &Room{
		Code:        code,
		Host:        host,
		Players:     []string{host},
		Ready:       NewReadySet(),
		State:       RoomStateWaiting,
		PlayerCards: make(map[string]card.Card),
		GuessesLeft: make(map[string]int),
		CreatedAt:   now,
		LastActive:  now,
		subs:        make(map[string]types.ClientInterface),
	}
}

// HasPlayer 玩家是否在房间中（调用方需持有锁）
func (r *Room) HasPlayer(name string) bool {
	for _, p := range r.Players {
		if p == name {
			return true
		}
	}
	return false
}

// AddPlayer 添加玩家，重复加入不产生重复条目（调用方需持有锁）
func (r *Room) AddPlayer(name string) {
	if r.HasPlayer(name) {
		return
	}
	r.Players = append(r.Players, name)
}

// Opponent 返回对手玩家名，仅在两名玩家时有意义（调用方需持有锁）
func (r *Room) Opponent(name string) string {
	for _, p := range r.Players {
		if p != name {
			return p
		}
	}
	return ""
}

// Started 游戏是否已开始（调用方需持有锁）
func (r *Room) Started() bool {
	return r.State == RoomStatePlaying || r.State == RoomStateEnded
}

// Touch 刷新最后活跃时间（调用方需持有锁）
func (r *Room) Touch() {
	r.LastActive = time.Now()
}

// Subscribe 将玩家的连接订阅到房间事件频道（调用方需持有锁）
func (r *Room) Subscribe(player string, client types.ClientInterface) {
	r.subs[player] = client
}

// Unsubscribe 取消玩家连接的订阅（调用方需持有锁）
func (r *Room) Unsubscribe(player string) {
	delete(r.subs, player)
}

// Broadcast 广播消息给房间内所有订阅者（调用方需持有锁）
func (r *Room) Broadcast(msg *protocol.Message) {
	for _, client := range r.subs {
		client.SendMessage(msg)
	}
}

// SendTo 发送消息给单个玩家的订阅连接（调用方需持有锁）
//
// 秘密卡牌必须走这条路径：整房广播会把双方的秘密泄露给对方。
func (r *Room) SendTo(player string, msg *protocol.Message) {
	if client, ok := r.subs[player]; ok {
		client.SendMessage(msg)
	}
}

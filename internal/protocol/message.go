package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 房间操作
	MsgJoin      MessageType = "join"         // 订阅房间事件频道
	MsgSetReady  MessageType = "player_ready" // 设置准备状态
	MsgStartGame MessageType = "start_game"   // 开始游戏

	// 游戏操作
	MsgAskQuestion MessageType = "ask_question" // 提问
	MsgMakeGuess   MessageType = "make_guess"   // 猜牌
)

// 服务端 → 客户端 消息类型
const (
	// 房间相关
	MsgPlayerJoined    MessageType = "player_joined"     // 玩家加入
	MsgPlayerReady     MessageType = "player_ready"      // 玩家准备状态变更
	MsgAllPlayersReady MessageType = "all_players_ready" // 双方都已准备

	// 游戏流程
	MsgGameStarted MessageType = "game_started" // 游戏开始
	MsgSecretCard  MessageType = "secret_card"  // 秘密卡牌（仅发给本人）
	MsgNewQuestion MessageType = "new_question" // 新问题
	MsgTurnChange  MessageType = "turn_change"  // 回合切换
	MsgGuessResult MessageType = "guess_result" // 猜牌结果
	MsgGameOver    MessageType = "game_over"    // 游戏结束

	// 错误
	MsgError MessageType = "error" // 错误消息（仅回复给出错方，不广播）
)

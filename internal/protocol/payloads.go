package protocol

// CardInfo 卡牌信息
type CardInfo struct {
	ID    int    `json:"id"`
	Image string `json:"image,omitempty"`
}

// --- 客户端请求 Payloads ---

// JoinPayload 订阅房间事件频道请求
type JoinPayload struct {
	Room   string `json:"room"`
	Player string `json:"player"`
}

// SetReadyPayload 设置准备状态请求
type SetReadyPayload struct {
	RoomCode   string `json:"room_code"`
	PlayerName string `json:"player_name"`
	IsReady    bool   `json:"is_ready"`
}

// StartGamePayload 开始游戏请求
type StartGamePayload struct {
	RoomCode string `json:"room_code"`
}

// AskQuestionPayload 提问请求
type AskQuestionPayload struct {
	RoomCode string `json:"room_code"`
	Player   string `json:"player"`
	Question string `json:"question"`
}

// MakeGuessPayload 猜牌请求
type MakeGuessPayload struct {
	RoomCode    string `json:"room_code"`
	Player      string `json:"player"`
	GuessedCard int    `json:"guessed_card"`
}

// --- 服务端广播 Payloads ---

// PlayerJoinedPayload 玩家加入通知
type PlayerJoinedPayload struct {
	Player  string   `json:"player"`
	Players []string `json:"players"`
	Host    string   `json:"host"`
}

// PlayerReadyPayload 玩家准备状态变更通知
type PlayerReadyPayload struct {
	Player  string `json:"player"`
	IsReady bool   `json:"isReady"`
}

// GameStartedPayload 游戏开始通知
// 秘密卡牌不在此消息中：每个玩家通过单独的 secret_card 消息收到自己的牌
type GameStartedPayload struct {
	Players     []string   `json:"players"`
	CurrentTurn string     `json:"current_turn"`
	CommonCards []CardInfo `json:"common_cards"`
}

// SecretCardPayload 秘密卡牌通知（仅发给本人）
type SecretCardPayload struct {
	Card CardInfo `json:"card"`
}

// NewQuestionPayload 新问题通知
type NewQuestionPayload struct {
	Player   string `json:"player"`
	Question string `json:"question"`
}

// TurnChangePayload 回合切换通知
type TurnChangePayload struct {
	CurrentTurn string `json:"current_turn"`
}

// GuessResultPayload 猜牌结果通知
type GuessResultPayload struct {
	Player      string `json:"player"`
	GuessedCard int    `json:"guessed_card"`
	Correct     bool   `json:"correct"`
	GuessesLeft int    `json:"guesses_left"`
}

// GameOverPayload 游戏结束通知
type GameOverPayload struct {
	Winner      string   `json:"winner"`
	CorrectCard CardInfo `json:"correct_card"`
}

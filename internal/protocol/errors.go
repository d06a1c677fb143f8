package protocol

// 错误码
const (
	ErrCodeUnknown          = 1000
	ErrCodeInvalidMsg       = 1001
	ErrCodeMissingField     = 1002
	ErrCodeRoomNotFound     = 2001
	ErrCodeRoomFull         = 2002
	ErrCodeGameStarted      = 2003
	ErrCodeNotInRoom        = 2004
	ErrCodeNotEnoughPlayers = 2005
	ErrCodeGameNotStart     = 3001
	ErrCodeNotYourTurn      = 3002
	ErrCodeNoGuesses        = 3003
	ErrCodeNotReady         = 3004
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:          "未知错误",
	ErrCodeInvalidMsg:       "无效的消息格式",
	ErrCodeMissingField:     "缺少必要字段",
	ErrCodeRoomNotFound:     "房间不存在",
	ErrCodeRoomFull:         "房间已满",
	ErrCodeGameStarted:      "游戏已开始",
	ErrCodeNotInRoom:        "您不在房间中",
	ErrCodeNotEnoughPlayers: "玩家人数不足",
	ErrCodeGameNotStart:     "游戏尚未开始",
	ErrCodeNotYourTurn:      "还没轮到您",
	ErrCodeNoGuesses:        "猜牌机会已用完",
	ErrCodeNotReady:         "玩家尚未全部准备",
}

// ErrorPayload 错误消息载荷
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

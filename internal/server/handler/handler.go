package handler

import (
	"errors"
	"log"

	"github.com/palemoky/guess-the-card/internal/apperrors"
	"github.com/palemoky/guess-the-card/internal/game/session"
	"github.com/palemoky/guess-the-card/internal/protocol"
	"github.com/palemoky/guess-the-card/internal/types"
)

// Handler 消息处理器，把事件频道的入站消息分发给会话协议处理器
type Handler struct {
	session  *session.Session
	handlers map[protocol.MessageType]handlerFunc
}

// handlerFunc 统一的处理器函数签名
type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// New 创建处理器
func New(s *session.Session) *Handler {
	h := &Handler{
		session: s,
	}
	h.initHandlers()
	return h
}

// initHandlers 初始化消息处理器映射
func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		// 房间操作
		protocol.MsgJoin:      h.handleJoin,
		protocol.MsgSetReady:  h.handleSetReady,
		protocol.MsgStartGame: h.handleStartGame,

		// 游戏操作
		protocol.MsgAskQuestion: h.handleAskQuestion,
		protocol.MsgMakeGuess:   h.handleMakeGuess,
	}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	if handler, ok := h.handlers[msg.Type]; ok {
		handler(client, msg)
		return
	}

	log.Printf("⚠️  未知消息类型: '%s' (客户端: %s)", msg.Type, client.GetID())
	client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
}

// sendError 把错误回复给出错的客户端（错误从不广播）
func sendError(client types.ClientInterface, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(protocol.NewErrorMessageWithText(gameErr.Code, gameErr.Message))
		return
	}
	client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}

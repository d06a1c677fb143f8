package handler

import (
	"github.com/palemoky/guess-the-card/internal/protocol"
	"github.com/palemoky/guess-the-card/internal/types"
)

// handleStartGame 处理开始游戏
func (h *Handler) handleStartGame(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.StartGamePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.session.StartGame(payload.RoomCode); err != nil {
		sendError(client, err)
	}
}

// handleAskQuestion 处理提问
func (h *Handler) handleAskQuestion(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.AskQuestionPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.session.AskQuestion(payload.RoomCode, payload.Player, payload.Question); err != nil {
		sendError(client, err)
	}
}

// handleMakeGuess 处理猜牌
func (h *Handler) handleMakeGuess(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.MakeGuessPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.session.MakeGuess(payload.RoomCode, payload.Player, payload.GuessedCard); err != nil {
		sendError(client, err)
	}
}

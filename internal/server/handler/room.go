package handler

import (
	"github.com/palemoky/guess-the-card/internal/game/room"
	"github.com/palemoky/guess-the-card/internal/protocol"
	"github.com/palemoky/guess-the-card/internal/types"
)

// handleJoin 处理 join 事件：把连接订阅到房间事件频道
func (h *Handler) handleJoin(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	err = h.session.Subscribe(payload.Room, payload.Player, func(r *room.Room) {
		r.Subscribe(payload.Player, client)
	})
	if err != nil {
		sendError(client, err)
		return
	}

	client.SetPlayer(payload.Player)
	client.SetRoom(payload.Room)
}

// handleSetReady 处理准备状态变更
func (h *Handler) handleSetReady(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.SetReadyPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.session.SetReady(payload.RoomCode, payload.PlayerName, payload.IsReady); err != nil {
		sendError(client, err)
	}
}

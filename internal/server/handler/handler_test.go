package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/guess-the-card/internal/config"
	"github.com/palemoky/guess-the-card/internal/game/card"
	"github.com/palemoky/guess-the-card/internal/game/room"
	"github.com/palemoky/guess-the-card/internal/game/session"
	"github.com/palemoky/guess-the-card/internal/protocol"
	"github.com/palemoky/guess-the-card/internal/testutil"
)

func newTestHandler(t *testing.T) (*Handler, *session.Session) {
	t.Helper()
	s := session.New(session.Deps{
		Registry: room.NewManagerForTest(),
		Catalog:  card.Generate(81),
		Game: config.GameConfig{
			GuessLimit:  3,
			CommonCards: 25,
		},
	})
	return New(s), s
}

func TestHandle_UnknownType(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)
	client := testutil.NewSimpleClient("c1", "")

	h.Handle(client, &protocol.Message{Type: "bogus"})

	require.Len(t, client.Messages, 1)
	assert.Equal(t, protocol.MsgError, client.Messages[0].Type)
	payload, err := protocol.ParsePayload[protocol.ErrorPayload](client.Messages[0])
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeInvalidMsg, payload.Code)
}

func TestHandleJoin_SubscribesAndBindsClient(t *testing.T) {
	t.Parallel()

	h, s := newTestHandler(t)

	r, err := s.CreateRoom("Alice")
	require.NoError(t, err)

	client := testutil.NewSimpleClient("c1", "")
	h.Handle(client, protocol.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{
		Room:   r.Code,
		Player: "Alice",
	}))

	assert.Equal(t, "Alice", client.GetPlayer())
	assert.Equal(t, r.Code, client.GetRoom())
	assert.Empty(t, client.MessagesOfType(protocol.MsgError))
}

func TestHandleJoin_UnknownRoom(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)

	client := testutil.NewSimpleClient("c1", "")
	h.Handle(client, protocol.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{
		Room:   "NOROOM",
		Player: "Alice",
	}))

	msgs := client.MessagesOfType(protocol.MsgError)
	require.Len(t, msgs, 1)
	payload, err := protocol.ParsePayload[protocol.ErrorPayload](msgs[0])
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeRoomNotFound, payload.Code)
	assert.Empty(t, client.GetRoom())
}

func TestHandleJoin_JoinsRoomWhenNotMember(t *testing.T) {
	t.Parallel()

	h, s := newTestHandler(t)

	r, err := s.CreateRoom("Alice")
	require.NoError(t, err)

	// Bob never called the join endpoint; the join event adds him
	client := testutil.NewSimpleClient("c2", "")
	h.Handle(client, protocol.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{
		Room:   r.Code,
		Player: "Bob",
	}))

	r.RLock()
	defer r.RUnlock()
	assert.Equal(t, []string{"Alice", "Bob"}, r.Players)
	assert.Equal(t, 3, r.GuessesLeft["Bob"])
}

func TestHandleSetReady_ErrorsGoOnlyToSender(t *testing.T) {
	t.Parallel()

	h, s := newTestHandler(t)

	r, err := s.CreateRoom("Alice")
	require.NoError(t, err)

	alice := testutil.NewSimpleClient("c1", "Alice")
	require.NoError(t, s.Subscribe(r.Code, "Alice", func(rm *room.Room) {
		rm.Subscribe("Alice", alice)
	}))

	// Mallory is not in the room; only Mallory sees the error
	mallory := testutil.NewSimpleClient("c9", "Mallory")
	h.Handle(mallory, protocol.MustNewMessage(protocol.MsgSetReady, protocol.SetReadyPayload{
		RoomCode:   r.Code,
		PlayerName: "Mallory",
		IsReady:    true,
	}))

	require.Len(t, mallory.MessagesOfType(protocol.MsgError), 1)
	assert.Empty(t, alice.MessagesOfType(protocol.MsgError))
}

func TestHandleGameFlow_OverEventChannel(t *testing.T) {
	t.Parallel()

	h, s := newTestHandler(t)

	r, err := s.CreateRoom("Alice")
	require.NoError(t, err)

	alice := testutil.NewSimpleClient("c1", "")
	bob := testutil.NewSimpleClient("c2", "")

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{Room: r.Code, Player: "Alice"}))
	h.Handle(bob, protocol.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{Room: r.Code, Player: "Bob"}))

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgSetReady, protocol.SetReadyPayload{
		RoomCode: r.Code, PlayerName: "Alice", IsReady: true,
	}))
	h.Handle(bob, protocol.MustNewMessage(protocol.MsgSetReady, protocol.SetReadyPayload{
		RoomCode: r.Code, PlayerName: "Bob", IsReady: true,
	}))

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgStartGame, protocol.StartGamePayload{RoomCode: r.Code}))

	require.Len(t, alice.MessagesOfType(protocol.MsgGameStarted), 1)
	require.Len(t, bob.MessagesOfType(protocol.MsgGameStarted), 1)
	require.Len(t, alice.MessagesOfType(protocol.MsgSecretCard), 1)

	h.Handle(alice, protocol.MustNewMessage(protocol.MsgAskQuestion, protocol.AskQuestionPayload{
		RoomCode: r.Code, Player: "Alice", Question: "是动物吗？",
	}))

	require.Len(t, bob.MessagesOfType(protocol.MsgNewQuestion), 1)

	// Out of turn guess is rejected with an error reply, no broadcast
	h.Handle(alice, protocol.MustNewMessage(protocol.MsgMakeGuess, protocol.MakeGuessPayload{
		RoomCode: r.Code, Player: "Alice", GuessedCard: 1,
	}))
	msgs := alice.MessagesOfType(protocol.MsgError)
	require.Len(t, msgs, 1)
	payload, err := protocol.ParsePayload[protocol.ErrorPayload](msgs[0])
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeNotYourTurn, payload.Code)
	assert.Empty(t, bob.MessagesOfType(protocol.MsgError))
}

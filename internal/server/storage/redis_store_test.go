package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	store := NewRedisStore(client)
	return store, mr
}

func TestRedisStore_SaveLoadDeleteRoom(t *testing.T) {
	store, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	// Create test room data
	roomData := &RoomData{
		Code:        "TEST01",
		Host:        "Alice",
		State:       2,
		Players:     []string{"Alice", "Bob"},
		Ready:       []string{"Alice", "Bob"},
		GuessesLeft: map[string]int{"Alice": 3, "Bob": 2},
		CurrentTurn: "Alice",
		CommonCards: []int{1, 5, 9},
		PlayerCards: map[string]int{"Alice": 5, "Bob": 9},
		CreatedAt:   time.Now().Unix(),
		LastActive:  time.Now().Unix(),
	}

	// Save
	err := store.SaveRoom(ctx, roomData.Code, roomData)
	assert.NoError(t, err)

	// Load
	loadedData, err := store.LoadRoom(ctx, roomData.Code)
	assert.NoError(t, err)
	require.NotNil(t, loadedData)
	assert.Equal(t, roomData.Code, loadedData.Code)
	assert.Equal(t, roomData.Host, loadedData.Host)
	assert.Equal(t, roomData.State, loadedData.State)
	assert.Equal(t, roomData.Players, loadedData.Players)
	assert.Equal(t, roomData.GuessesLeft, loadedData.GuessesLeft)
	assert.Equal(t, roomData.PlayerCards, loadedData.PlayerCards)

	// Delete
	err = store.DeleteRoom(ctx, roomData.Code)
	assert.NoError(t, err)

	// Verify Delete
	loadedData, err = store.LoadRoom(ctx, roomData.Code)
	assert.NoError(t, err)
	assert.Nil(t, loadedData)
}

func TestRedisStore_SaveNil(t *testing.T) {
	t.Parallel()

	store, mr := newTestRedisStore(t)
	defer mr.Close()

	assert.NoError(t, store.SaveRoom(context.Background(), "TEST01", nil))
}

func TestRedisStore_LoadMissing(t *testing.T) {
	t.Parallel()

	store, mr := newTestRedisStore(t)
	defer mr.Close()

	data, err := store.LoadRoom(context.Background(), "NOROOM")
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestRedisStore_GetAllRoomCodes(t *testing.T) {
	t.Parallel()

	store, mr := newTestRedisStore(t)
	defer mr.Close()
	ctx := context.Background()

	require.NoError(t, store.SaveRoom(ctx, "AAAAAA", &RoomData{Code: "AAAAAA"}))
	require.NoError(t, store.SaveRoom(ctx, "BBBBBB", &RoomData{Code: "BBBBBB"}))

	codes, err := store.GetAllRoomCodes(ctx)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"AAAAAA", "BBBBBB"}, codes)
}

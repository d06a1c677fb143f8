package room

import (
	"github.com/palemoky/guess-the-card/internal/server/storage"
)

// ToRoomData 将 Room 转换为可序列化的 RoomData
func (r *Room) ToRoomData() *storage.RoomData {
	r.RLock()
	defer r.RUnlock()

	data := &storage.RoomData{
		Code:        r.Code,
		Host:        r.Host,
		State:       int(r.State),
		Players:     append([]string(nil), r.Players...),
		Ready:       r.Ready.Members(),
		GuessesLeft: make(map[string]int, len(r.GuessesLeft)),
		CurrentTurn: r.CurrentTurn,
		Winner:      r.Winner,
		CreatedAt:   r.CreatedAt.Unix(),
		LastActive:  r.LastActive.Unix(),
	}

	for name, n := range r.GuessesLeft {
		data.GuessesLeft[name] = n
	}

	if len(r.CommonCards) > 0 {
		data.CommonCards = make([]int, len(r.CommonCards))
		for i, c := range r.CommonCards {
			data.CommonCards[i] = c.ID
		}
	}
	if len(r.PlayerCards) > 0 {
		data.PlayerCards = make(map[string]int, len(r.PlayerCards))
		for name, c := range r.PlayerCards {
			data.PlayerCards[name] = c.ID
		}
	}

	return data
}

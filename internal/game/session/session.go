package session

import (
	"log"

	"github.com/palemoky/guess-the-card/internal/apperrors"
	"github.com/palemoky/guess-the-card/internal/config"
	"github.com/palemoky/guess-the-card/internal/game/card"
	"github.com/palemoky/guess-the-card/internal/game/room"
	"github.com/palemoky/guess-the-card/internal/protocol"
)

// Deps 会话依赖
type Deps struct {
	Registry room.Registry
	Saver    room.Saver // 可为 nil
	Catalog  *card.Catalog
	Game     config.GameConfig
}

// Session 会话协议处理器，封装全部游戏规则：
// 加入门槛、准备门槛、回合顺序、猜牌计数和胜负判定。
// 每个操作在房间锁内完成校验、变更和广播，同一房间的
// 并发操作被线性化，不同房间互不影响。
type Session struct {
	registry room.Registry
	saver    room.Saver
	catalog  *card.Catalog
	cfg      config.GameConfig
}

// New 创建会话协议处理器
func New(deps Deps) *Session {
	return &Session{
		registry: deps.Registry,
		saver:    deps.Saver,
		catalog:  deps.Catalog,
		cfg:      deps.Game,
	}
}

// snapshot 操作完成后保存房间快照（必须在释放房间锁之后调用）
func (s *Session) snapshot(r *room.Room) {
	if s.saver != nil {
		s.saver.Snapshot(r)
	}
}

// CreateRoom 创建房间，创建者为首位玩家和房主
func (s *Session) CreateRoom(playerName string) (*room.Room, error) {
	if playerName == "" {
		return nil, apperrors.ErrMissingField
	}

	r := s.registry.Create(playerName)

	r.Lock()
	r.GuessesLeft[playerName] = s.cfg.GuessLimit
	r.Unlock()

	s.snapshot(r)
	return r, nil
}

// JoinRoom 加入房间
//
// 重复加入同名玩家不产生重复条目，也不重复广播。
func (s *Session) JoinRoom(code, playerName string) (*room.Room, error) {
	if code == "" || playerName == "" {
		return nil, apperrors.ErrMissingField
	}

	r := s.registry.Get(code)
	if r == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	r.Lock()
	if err := s.joinLocked(r, playerName); err != nil {
		r.Unlock()
		return nil, err
	}
	r.Unlock()

	s.snapshot(r)
	return r, nil
}

// joinLocked 在房间锁内执行加入逻辑
func (s *Session) joinLocked(r *room.Room, playerName string) error {
	if r.HasPlayer(playerName) {
		return nil // 幂等：已在房间中
	}
	if len(r.Players) >= room.MaxPlayers {
		return apperrors.ErrRoomFull
	}
	if r.Started() {
		return apperrors.ErrGameStarted
	}

	r.AddPlayer(playerName)
	r.GuessesLeft[playerName] = s.cfg.GuessLimit
	if len(r.Players) == room.MaxPlayers {
		r.State = room.RoomStateReadying
	}
	r.Touch()

	log.Printf("👤 玩家 %s 加入房间 %s", playerName, r.Code)

	r.Broadcast(protocol.MustNewMessage(protocol.MsgPlayerJoined, protocol.PlayerJoinedPayload{
		Player:  playerName,
		Players: append([]string(nil), r.Players...),
		Host:    r.Host,
	}))

	return nil
}

// Subscribe 将玩家的连接订阅到房间事件频道
//
// 玩家若尚未加入房间，按加入逻辑处理（与加入失败同样报错），
// 覆盖只走事件频道、未调用加入接口的客户端。
func (s *Session) Subscribe(code, playerName string, attach func(r *room.Room)) error {
	if code == "" || playerName == "" {
		return apperrors.ErrMissingField
	}

	r := s.registry.Get(code)
	if r == nil {
		return apperrors.ErrRoomNotFound
	}

	r.Lock()
	if !r.HasPlayer(playerName) {
		if err := s.joinLocked(r, playerName); err != nil {
			r.Unlock()
			return err
		}
	}
	attach(r)
	r.Unlock()

	s.snapshot(r)
	return nil
}

// SetReady 设置玩家准备状态
//
// 相同状态重复设置是幂等的；集合满两人时追加 all_players_ready
// 提示（仅供客户端展示，不改变房间状态）。
func (s *Session) SetReady(code, playerName string, isReady bool) error {
	if code == "" || playerName == "" {
		return apperrors.ErrMissingField
	}

	r := s.registry.Get(code)
	if r == nil {
		return apperrors.ErrRoomNotFound
	}

	r.Lock()
	defer func() {
		r.Unlock()
		s.snapshot(r)
	}()

	if !r.HasPlayer(playerName) {
		return apperrors.ErrNotInRoom
	}

	if isReady {
		r.Ready.Add(playerName)
	} else {
		r.Ready.Remove(playerName)
	}
	r.Touch()

	r.Broadcast(protocol.MustNewMessage(protocol.MsgPlayerReady, protocol.PlayerReadyPayload{
		Player:  playerName,
		IsReady: isReady,
	}))

	if r.Ready.Len() == room.MaxPlayers {
		r.Broadcast(protocol.MustNewMessage(protocol.MsgAllPlayersReady, nil))
	}

	log.Printf("✅ 玩家 %s 在房间 %s 的准备状态变更为 %v", playerName, code, isReady)

	return nil
}

// StartGame 开始游戏
//
// 前置条件不满足时返回显式错误，客户端能得知失败原因，
// 而不是被静默忽略。成功后抽取公共牌池、独立为每位
// 玩家放回抽取秘密卡牌（两人可能拿到同一张，保留行为），
// 广播 game_started，并把秘密卡牌逐个单发给本人。
func (s *Session) StartGame(code string) error {
	if code == "" {
		return apperrors.ErrMissingField
	}

	r := s.registry.Get(code)
	if r == nil {
		return apperrors.ErrRoomNotFound
	}

	r.Lock()
	defer func() {
		r.Unlock()
		s.snapshot(r)
	}()

	if r.Started() {
		return apperrors.ErrGameStarted
	}
	if len(r.Players) < room.MaxPlayers {
		return apperrors.ErrNotEnoughPlayers
	}
	if s.cfg.RequireReady() && r.Ready.Len() < room.MaxPlayers {
		return apperrors.ErrNotReady
	}

	r.CommonCards = s.catalog.Sample(s.cfg.CommonCards)
	for _, p := range r.Players {
		r.PlayerCards[p] = card.PickFrom(r.CommonCards)
	}
	r.State = room.RoomStatePlaying
	r.CurrentTurn = r.Players[0]
	r.Touch()

	r.Broadcast(protocol.MustNewMessage(protocol.MsgGameStarted, protocol.GameStartedPayload{
		Players:     append([]string(nil), r.Players...),
		CurrentTurn: r.CurrentTurn,
		CommonCards: toCardInfos(r.CommonCards),
	}))

	// 秘密卡牌只发给本人，绝不整房广播
	for _, p := range r.Players {
		r.SendTo(p, protocol.MustNewMessage(protocol.MsgSecretCard, protocol.SecretCardPayload{
			Card: toCardInfo(r.PlayerCards[p]),
		}))
	}

	log.Printf("🎮 房间 %s 游戏开始，先手 %s", code, r.CurrentTurn)

	return nil
}

// AskQuestion 提问并把回合交给对手
//
// 问题文本原样广播，服务端不做任何语义解析，
// 回答与排除卡牌由玩家在客户端完成。
func (s *Session) AskQuestion(code, playerName, question string) error {
	if code == "" || playerName == "" {
		return apperrors.ErrMissingField
	}

	r := s.registry.Get(code)
	if r == nil {
		return apperrors.ErrRoomNotFound
	}

	r.Lock()
	defer func() {
		r.Unlock()
		s.snapshot(r)
	}()

	if r.State != room.RoomStatePlaying {
		return apperrors.ErrGameNotStart
	}
	if !r.HasPlayer(playerName) {
		return apperrors.ErrNotInRoom
	}
	if playerName != r.CurrentTurn {
		return apperrors.ErrNotYourTurn
	}

	r.Broadcast(protocol.MustNewMessage(protocol.MsgNewQuestion, protocol.NewQuestionPayload{
		Player:   playerName,
		Question: question,
	}))

	s.advanceTurn(r, playerName)
	r.Touch()

	return nil
}

// MakeGuess 猜牌
//
// 猜中 → 立即结束，猜牌者获胜；
// 猜错且次数用尽 → 结束，对手获胜；
// 猜错且还有次数 → 回合交给对手。
func (s *Session) MakeGuess(code, playerName string, guessedCard int) error {
	if code == "" || playerName == "" {
		return apperrors.ErrMissingField
	}

	r := s.registry.Get(code)
	if r == nil {
		return apperrors.ErrRoomNotFound
	}

	r.Lock()
	defer func() {
		r.Unlock()
		s.snapshot(r)
	}()

	if r.State != room.RoomStatePlaying {
		return apperrors.ErrGameNotStart
	}
	if !r.HasPlayer(playerName) {
		return apperrors.ErrNotInRoom
	}
	if playerName != r.CurrentTurn {
		return apperrors.ErrNotYourTurn
	}
	if r.GuessesLeft[playerName] <= 0 {
		return apperrors.ErrNoGuesses
	}

	r.GuessesLeft[playerName]--

	opponent := r.Opponent(playerName)
	correctCard := r.PlayerCards[opponent]

	if guessedCard == correctCard.ID {
		s.finishGame(r, playerName, correctCard)
		return nil
	}

	r.Broadcast(protocol.MustNewMessage(protocol.MsgGuessResult, protocol.GuessResultPayload{
		Player:      playerName,
		GuessedCard: guessedCard,
		Correct:     false,
		GuessesLeft: r.GuessesLeft[playerName],
	}))

	if r.GuessesLeft[playerName] == 0 {
		s.finishGame(r, opponent, correctCard)
		return nil
	}

	s.advanceTurn(r, playerName)
	r.Touch()

	return nil
}

// advanceTurn 把回合交给对手并广播（调用方需持有锁）
func (s *Session) advanceTurn(r *room.Room, actor string) {
	r.CurrentTurn = r.Opponent(actor)
	r.Broadcast(protocol.MustNewMessage(protocol.MsgTurnChange, protocol.TurnChangePayload{
		CurrentTurn: r.CurrentTurn,
	}))
}

// finishGame 结束对局并广播胜负（调用方需持有锁）
func (s *Session) finishGame(r *room.Room, winner string, correctCard card.Card) {
	r.Winner = winner
	r.State = room.RoomStateEnded
	r.Touch()

	r.Broadcast(protocol.MustNewMessage(protocol.MsgGameOver, protocol.GameOverPayload{
		Winner:      winner,
		CorrectCard: toCardInfo(correctCard),
	}))

	log.Printf("🏆 房间 %s 对局结束，获胜者 %s", r.Code, winner)
}

func toCardInfo(c card.Card) protocol.CardInfo {
	return protocol.CardInfo{ID: c.ID, Image: c.Image}
}

func toCardInfos(cards []card.Card) []protocol.CardInfo {
	infos := make([]protocol.CardInfo, len(cards))
	for i, c := range cards {
		infos[i] = toCardInfo(c)
	}
	return infos
}

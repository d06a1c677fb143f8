package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/palemoky/guess-the-card/internal/apperrors"
	"github.com/palemoky/guess-the-card/internal/protocol"
)

// registerRoutes 注册 HTTP 路由
func (s *Server) registerRoutes(router *httprouter.Router) {
	router.POST("/create_room", s.handleCreateRoom)
	router.POST("/join_room", s.handleJoinRoom)
	router.POST("/start_game", s.handleStartGame)

	router.GET("/ws", s.handleWebSocket)
	router.GET("/health", s.handleHealth)

	// 静态卡牌图片（核心协议之外的协作端点）
	router.GET("/card_image/:id", s.handleCardImage)
	router.GET("/card_back", s.handleCardBack)
}

// createRoomRequest 创建房间请求体
type createRoomRequest struct {
	PlayerName string `json:"player_name"`
}

// joinRoomRequest 加入房间请求体
type joinRoomRequest struct {
	RoomCode   string `json:"room_code"`
	PlayerName string `json:"player_name"`
}

// startGameRequest 开始游戏请求体
type startGameRequest struct {
	RoomCode string `json:"room_code"`
}

// handleCreateRoom 创建房间
func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ErrMissingField)
		return
	}

	room, err := s.session.CreateRoom(req.PlayerName)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Room created",
		"room_code": room.Code,
	})
}

// handleJoinRoom 加入房间
func (s *Server) handleJoinRoom(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req joinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ErrMissingField)
		return
	}

	room, err := s.session.JoinRoom(req.RoomCode, req.PlayerName)
	if err != nil {
		writeError(w, err)
		return
	}

	room.RLock()
	players := append([]string(nil), room.Players...)
	host := room.Host
	room.RUnlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Joined room successfully",
		"players": players,
		"host":    host,
	})
}

// handleStartGame 开始游戏（未开启准备门槛的部署通过此接口开局）
func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req startGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ErrMissingField)
		return
	}

	if err := s.session.StartGame(req.RoomCode); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Game started"})
}

// handleHealth 健康检查接口
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleCardImage 按数字 ID 返回卡牌图片
func (s *Server) handleCardImage(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	id, err := strconv.Atoi(p.ByName("id"))
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return
	}
	name := fmt.Sprintf("%02d.png", id)
	http.ServeFile(w, r, filepath.Join(s.config.Cards.ImageDir, name))
}

// handleCardBack 返回通用卡背图片
func (s *Server) handleCardBack(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.ServeFile(w, r, filepath.Join(s.config.Cards.ImageDir, "card_back.png"))
}

// writeJSON 写出 JSON 响应
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError 把游戏错误映射为 HTTP 状态码和错误响应
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := protocol.ErrCodeUnknown
	message := err.Error()

	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		code = gameErr.Code
		if gameErr == apperrors.ErrRoomNotFound {
			status = http.StatusNotFound
		} else {
			status = http.StatusBadRequest
		}
	}

	writeJSON(w, status, map[string]any{
		"error": message,
		"code":  code,
	})
}

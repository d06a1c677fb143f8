package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/guess-the-card/internal/config"
	"github.com/palemoky/guess-the-card/internal/game/card"
	"github.com/palemoky/guess-the-card/internal/game/room"
	"github.com/palemoky/guess-the-card/internal/game/session"
	"github.com/palemoky/guess-the-card/internal/server/handler"
	"github.com/palemoky/guess-the-card/internal/server/storage"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许所有来源，生产环境需要限制
	},
}

// Server WebSocket + HTTP 服务器
type Server struct {
	config    *config.Config
	redis     *redis.Client
	store     *storage.RedisStore
	catalog   *card.Catalog
	manager   *room.Manager
	session   *session.Session
	handler   *handler.Handler
	httpSrv   *http.Server
	clients   map[string]*Client
	clientsMu sync.RWMutex
}

// NewServer 创建服务器实例
func NewServer(cfg *config.Config) (*Server, error) {
	// 初始化 Redis 客户端
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 测试 Redis 连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis 连接失败: %w", err)
	}

	// 加载卡牌目录
	catalog, err := loadCatalog(cfg.Cards)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:  cfg,
		redis:   rdb,
		store:   storage.NewRedisStore(rdb),
		catalog: catalog,
		clients: make(map[string]*Client),
	}

	// 初始化房间管理器
	s.manager = room.NewManager(s.store, cfg.Game.RoomTimeoutDuration())

	// 初始化会话协议处理器
	s.session = session.New(session.Deps{
		Registry: s.manager,
		Saver:    s.manager,
		Catalog:  catalog,
		Game:     cfg.Game,
	})

	// 初始化消息处理器
	s.handler = handler.New(s.session)

	log.Printf("🃏 卡牌目录已加载: %d 张", catalog.Len())

	return s, nil
}

// loadCatalog 加载卡牌目录，无清单文件时生成数字牌组
func loadCatalog(cfg config.CardsConfig) (*card.Catalog, error) {
	if cfg.Manifest == "" {
		return card.Generate(cfg.Count), nil
	}
	catalog, err := card.Load(cfg.Manifest)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("卡牌清单 %s 不存在，生成 %d 张数字牌", cfg.Manifest, cfg.Count)
			return card.Generate(cfg.Count), nil
		}
		return nil, err
	}
	return catalog, nil
}

// Start 启动服务器
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	router := httprouter.New()
	s.registerRoutes(router)

	log.Printf("🚀 服务器启动在 http://%s (ws://%s/ws)", addr, addr)
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second, // 防止 Slowloris 攻击
		IdleTimeout:       60 * time.Second,
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown 优雅关闭
func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.httpSrv != nil {
		_ = s.httpSrv.Shutdown(ctx)
	}

	s.clientsMu.Lock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clientsMu.Unlock()

	_ = s.redis.Close()
}

// handleWebSocket 处理 WebSocket 连接
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket 升级失败: %v", err)
		return
	}

	// 创建客户端
	client := NewClient(s, conn)
	s.registerClient(client)

	log.Printf("✅ 客户端 %s 已连接", client.ID)

	// 启动客户端读写协程
	go client.ReadPump()
	go client.WritePump()
}

// registerClient 注册客户端
func (s *Server) registerClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[client.ID] = client
}

// unregisterClient 注销客户端
func (s *Server) unregisterClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	if _, ok := s.clients[client.ID]; ok {
		delete(s.clients, client.ID)
		log.Printf("❌ 客户端 %s 已断开", client.ID)
	}
}

// GetOnlineCount 获取在线连接数
func (s *Server) GetOnlineCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

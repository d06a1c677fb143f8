package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 服务端配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Game   GameConfig   `yaml:"game"`
	Cards  CardsConfig  `yaml:"cards"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	LogFile string `yaml:"log_file"` // 为空时日志输出到 stderr
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig 游戏配置
type GameConfig struct {
	GuessLimit    int  `yaml:"guess_limit"`     // 每位玩家的猜牌次数
	CommonCards   int  `yaml:"common_cards"`    // 公共牌池大小
	SkipReadyGate bool `yaml:"skip_ready_gate"` // 跳过准备检查，人齐即可开始（早期协议行为）
	RoomTimeout   int  `yaml:"room_timeout"`    // 房间闲置超时（分钟）
}

// RequireReady 开始游戏前是否需要双方准备
func (c *GameConfig) RequireReady() bool {
	return !c.SkipReadyGate
}

// CardsConfig 卡牌目录配置
type CardsConfig struct {
	Manifest string `yaml:"manifest"` // 卡牌清单 JSON 路径，为空时生成数字牌组
	Count    int    `yaml:"count"`    // 生成牌组时的卡牌数量
	ImageDir string `yaml:"image_dir"`
}

// RoomTimeoutDuration 返回房间闲置超时时长
func (c *GameConfig) RoomTimeoutDuration() time.Duration {
	return time.Duration(c.RoomTimeout) * time.Minute
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults 为零值字段设置默认值
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Game.GuessLimit == 0 {
		c.Game.GuessLimit = 3
	}
	if c.Game.CommonCards == 0 {
		c.Game.CommonCards = 25
	}
	if c.Game.RoomTimeout == 0 {
		c.Game.RoomTimeout = 30
	}
	if c.Cards.Count == 0 {
		c.Cards.Count = 81
	}
	if c.Cards.ImageDir == "" {
		c.Cards.ImageDir = "static/images/cards"
	}
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 5000,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Game: GameConfig{
			GuessLimit:  3,
			CommonCards: 25,
			RoomTimeout: 30,
		},
		Cards: CardsConfig{
			Count:    81,
			ImageDir: "static/images/cards",
		},
	}
}

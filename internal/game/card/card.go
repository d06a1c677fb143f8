package card

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
)

// Card 一张卡牌，ID 即身份，Image 为图片文件名
type Card struct {
	ID    int    `json:"id"`
	Image string `json:"image"`
}

// Catalog 卡牌目录，进程启动时加载一次，之后只读
type Catalog struct {
	cards []Card
}

// Load 从 JSON 清单加载卡牌目录
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取卡牌清单失败: %w", err)
	}

	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("解析卡牌清单失败: %w", err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("卡牌清单为空: %s", path)
	}

	return &Catalog{cards: cards}, nil
}

// Generate 生成 n 张数字卡牌（无清单文件时的备选牌组）
func Generate(n int) *Catalog {
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = Card{
			ID:    i + 1,
			Image: fmt.Sprintf("%02d.png", i+1),
		}
	}
	return &Catalog{cards: cards}
}

// Len 返回目录中的卡牌数量
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Cards 返回目录中所有卡牌的副本
func (c *Catalog) Cards() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Sample 不放回地抽取 n 张卡牌
func (c *Catalog) Sample(n int) []Card {
	if n > len(c.cards) {
		n = len(c.cards)
	}
	pool := c.Cards()
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return pool[:n]
}

// PickFrom 从牌池中等概率抽取一张（放回抽样）
func PickFrom(pool []Card) Card {
	return pool[rand.IntN(len(pool))]
}

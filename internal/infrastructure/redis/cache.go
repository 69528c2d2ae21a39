package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"megaCalc/internal/ports"
)

var _ ports.IDisplayCache = (*DisplayCache)(nil)

// keyPrefix отделяет дисплеи сессий от остальных ключей в Redis.
const keyPrefix = "display:"

// DisplayCache реализует ports.IDisplayCache через Redis.
// Ключ — идентификатор сессии, значение — строка дисплея.
type DisplayCache struct {
	cli *Client
	log *slog.Logger
}

// NewDisplayCache возвращает кэш дисплеев.
func NewDisplayCache(cli *Client, log *slog.Logger) *DisplayCache {
	return &DisplayCache{cli: cli, log: log}
}

// Get возвращает дисплей сессии. Если ключа нет — found == false.
func (c *DisplayCache) Get(ctx context.Context, sessionID string) (display string, found bool, err error) {
	s, err := c.cli.Client.Get(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil { // ключа нет
			return "", false, nil
		}
		c.log.Debug("cache get failed", "session", sessionID, "error", err)
		return "", false, err
	}
	return s, true, nil
}

// Set сохраняет дисплей сессии. Каждый кейстрок перезаписывает значение.
func (c *DisplayCache) Set(ctx context.Context, sessionID, display string) error {
	if err := c.cli.Client.Set(ctx, keyPrefix+sessionID, display, 0).Err(); err != nil {
		c.log.Debug("cache set failed", "session", sessionID, "error", err)
		return err
	}
	return nil
}

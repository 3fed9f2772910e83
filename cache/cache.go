package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache de lecturas del catálogo. Opcional: con REDIS_ADDR vacío todos los
// métodos son no-op y los handlers consultan directo a la base.

const (
	// tipos -> JSON con la lista de categorías
	KeyTipos = "catalogo:tipos"

	// comparador -> JSON con los productos destacados por supermercado
	KeyComparador = "catalogo:comparador"
)

var TTLCatalogo = 5 * time.Minute

type Cache struct {
	rdb *redis.Client
}

func New(addr string) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key, val string) {
	if c == nil {
		return
	}
	_ = c.rdb.Set(ctx, key, val, TTLCatalogo).Err()
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}

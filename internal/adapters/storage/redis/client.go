package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client envuelve redis.Client.
type Client struct {
	*redis.Client
}

type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient crea el cliente y verifica la conexión con un PING.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	c := &Client{
		Client: redis.NewClient(&redis.Options{
			Addr:     opts.Addr,
			Password: opts.Password,
			DB:       opts.DB,
		}),
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

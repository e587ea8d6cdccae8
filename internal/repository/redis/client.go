package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultNamespace prefixes every key the store writes.
const DefaultNamespace = "statecraft"

const pingTimeout = 3 * time.Second

// Client keeps save slots in one Redis logical database. Keys live under a
// namespace so several games can share a server.
type Client struct {
	rdb *redis.Client
	ns  string
}

// NewClient dials the server at redisURL and checks it answers. An empty
// namespace falls back to DefaultNamespace.
func NewClient(ctx context.Context, redisURL, namespace string) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return newClient(rdb, namespace), nil
}

func newClient(rdb *redis.Client, namespace string) *Client {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Client{rdb: rdb, ns: namespace}
}

// Key layout:
//
//	<ns>:saves          sorted set of slot names scored by save time
//	<ns>:save:<name>    hash with "meta" and "snapshot" fields
func (c *Client) indexKey() string           { return c.ns + ":saves" }
func (c *Client) slotKey(name string) string { return c.ns + ":save:" + name }

// Close closes the connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

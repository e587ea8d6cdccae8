package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/freeeve/statecraft/internal/model"
	"github.com/freeeve/statecraft/internal/repository"
)

const (
	fieldMeta     = "meta"
	fieldSnapshot = "snapshot"
)

// Save writes the slot hash and indexes it by save time in one transaction.
func (c *Client) Save(ctx context.Context, meta model.SaveMeta, snapshot json.RawMessage) error {
	if err := repository.ValidateSaveName(meta.Name); err != nil {
		return err
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal save meta: %w", err)
	}
	_, err = c.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, c.slotKey(meta.Name), fieldMeta, metaJSON, fieldSnapshot, []byte(snapshot))
		p.ZAdd(ctx, c.indexKey(), redis.Z{Score: float64(meta.SavedAt.UnixNano()), Member: meta.Name})
		return nil
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", meta.Name, err)
	}
	return nil
}

// Load returns the snapshot, or nil when the slot is empty.
func (c *Client) Load(ctx context.Context, name string) (json.RawMessage, error) {
	data, err := c.rdb.HGet(ctx, c.slotKey(name), fieldSnapshot).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return json.RawMessage(data), nil
}

// List reads every indexed slot's metadata in one pipeline, most recent
// first. Index entries whose hash has gone are skipped.
func (c *Client) List(ctx context.Context) ([]model.SaveMeta, error) {
	names, err := c.rdb.ZRevRange(ctx, c.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	if len(names) == 0 {
		return nil, nil
	}

	cmds := make([]*redis.StringCmd, len(names))
	_, err = c.rdb.Pipelined(ctx, func(p redis.Pipeliner) error {
		for i, name := range names {
			cmds[i] = p.HGet(ctx, c.slotKey(name), fieldMeta)
		}
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("list saves: %w", err)
	}

	saves := make([]model.SaveMeta, 0, len(names))
	for i, cmd := range cmds {
		data, err := cmd.Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get meta %s: %w", names[i], err)
		}
		var m model.SaveMeta
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("decode meta %s: %w", names[i], err)
		}
		saves = append(saves, m)
	}
	sort.SliceStable(saves, func(i, j int) bool { return saves[i].SavedAt.After(saves[j].SavedAt) })
	return saves, nil
}

// Delete drops the slot hash and its index entry.
func (c *Client) Delete(ctx context.Context, name string) (bool, error) {
	var del *redis.IntCmd
	_, err := c.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		del = p.Del(ctx, c.slotKey(name))
		p.ZRem(ctx, c.indexKey(), name)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", name, err)
	}
	return del.Val() > 0, nil
}

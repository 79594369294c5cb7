package bookmark

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps bookmarks in Redis so they are shared between sessions.
type RedisStore struct {
	rdb  redis.UniversalClient
	keys *KeyGen
}

// NewRedisStore creates a store under the given namespace.
func NewRedisStore(rdb redis.UniversalClient, namespace string) *RedisStore {
	return &RedisStore{
		rdb:  rdb,
		keys: NewKeyGen(namespace),
	}
}

// Keys returns the key generator.
func (s *RedisStore) Keys() *KeyGen {
	return s.keys
}

func (s *RedisStore) Set(ctx context.Context, b *Bookmark) error {
	if err := ValidateName(b.Name); err != nil {
		return err
	}
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, s.keys.Entry(b.Name))
	pipe.HSet(ctx, s.keys.Entry(b.Name), b.ToMap())
	pipe.SAdd(ctx, s.keys.Names(), b.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("bookmark set: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, name string) (*Bookmark, error) {
	m, err := s.rdb.HGetAll(ctx, s.keys.Entry(name)).Result()
	if err != nil {
		return nil, fmt.Errorf("bookmark get: %w", err)
	}
	b := FromMap(m)
	if b == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return b, nil
}

func (s *RedisStore) Delete(ctx context.Context, name string) error {
	pipe := s.rdb.TxPipeline()
	del := pipe.Del(ctx, s.keys.Entry(name))
	pipe.SRem(ctx, s.keys.Names(), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("bookmark delete: %w", err)
	}
	if del.Val() == 0 {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return nil
}

// List returns bookmarks sorted by name. Names whose hash has vanished are skipped.
func (s *RedisStore) List(ctx context.Context) ([]*Bookmark, error) {
	names, err := s.rdb.SMembers(ctx, s.keys.Names()).Result()
	if err != nil {
		return nil, fmt.Errorf("bookmark list: %w", err)
	}
	if len(names) == 0 {
		return nil, nil
	}

	pipe := s.rdb.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(names))
	for i, name := range names {
		cmds[i] = pipe.HGetAll(ctx, s.keys.Entry(name))
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("bookmark list: %w", err)
	}

	out := make([]*Bookmark, 0, len(names))
	for _, cmd := range cmds {
		m, _ := cmd.Result()
		if b := FromMap(m); b != nil {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Ensure both stores satisfy Store.
var (
	_ Store = (*RedisStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

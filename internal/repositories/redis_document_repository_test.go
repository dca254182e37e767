package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// memoryHook answers GET/SET/DEL/PING from a map so no server is dialled.
type memoryHook struct {
	data   map[string][]byte
	failOn string
}

func (h *memoryHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h *memoryHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (h *memoryHook) ProcessHook(_ redis.ProcessHook) redis.ProcessHook {
	return func(_ context.Context, cmd redis.Cmder) error {
		if cmd.Name() == h.failOn {
			err := errors.New("READONLY You can't write against a read only replica")
			cmd.SetErr(err)
			return err
		}

		args := cmd.Args()
		switch cmd.Name() {
		case "get":
			val, ok := h.data[args[1].(string)]
			if !ok {
				cmd.SetErr(redis.Nil)
				return redis.Nil
			}
			cmd.(*redis.StringCmd).SetVal(string(val))
		case "set":
			h.data[args[1].(string)] = append([]byte(nil), args[2].([]byte)...)
			cmd.(*redis.StatusCmd).SetVal("OK")
		case "del":
			var n int64
			for _, key := range args[1:] {
				if _, ok := h.data[key.(string)]; ok {
					delete(h.data, key.(string))
					n++
				}
			}
			cmd.(*redis.IntCmd).SetVal(n)
		case "ping":
			cmd.(*redis.StatusCmd).SetVal("PONG")
		}
		return nil
	}
}

func newHookedRedisRepo(t *testing.T, hook *memoryHook) *RedisDocumentRepo {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	client.AddHook(hook)
	repo := NewRedisDocumentRepo(client, "portal:")
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestRedisDocumentRepoMissingKeyIsNotFound(t *testing.T) {
	repo := newHookedRedisRepo(t, &memoryHook{data: map[string][]byte{}})

	_, err := repo.GetDocument(context.Background(), "slo_groups_v1")
	require.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestRedisDocumentRepoUsesPrefix(t *testing.T) {
	hook := &memoryHook{data: map[string][]byte{}}
	repo := newHookedRedisRepo(t, hook)
	ctx := context.Background()

	require.NoError(t, repo.PutDocument(ctx, "slo_groups_v1", []byte(`[]`)))
	require.Contains(t, hook.data, "portal:slo_groups_v1")

	body, err := repo.GetDocument(ctx, "slo_groups_v1")
	require.NoError(t, err)
	require.Equal(t, `[]`, string(body))

	require.NoError(t, repo.DeleteDocument(ctx, "slo_groups_v1"))
	_, err = repo.GetDocument(ctx, "slo_groups_v1")
	require.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestRedisDocumentRepoPropagatesErrors(t *testing.T) {
	repo := newHookedRedisRepo(t, &memoryHook{data: map[string][]byte{}, failOn: "set"})

	err := repo.PutDocument(context.Background(), "k", []byte(`{}`))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrDocumentNotFound)
}

func TestRedisDocumentRepoPing(t *testing.T) {
	repo := newHookedRedisRepo(t, &memoryHook{data: map[string][]byte{}})
	require.NoError(t, repo.Ping(context.Background()))
}

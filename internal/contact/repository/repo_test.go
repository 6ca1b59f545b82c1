package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitwall-dev/portfolio-backend/internal/contact/domain"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	ctx := context.Background()
	err = client.Ping(ctx).Err()
	require.NoError(t, err)

	return client, mr
}

func TestMessageRepository_Create(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	repo := NewMessageRepository(client)
	ctx := context.Background()

	msg := &domain.Message{
		Name:  "Visitor",
		Email: "visitor@example.com",
		Body:  "Love the site",
	}
	require.NoError(t, repo.Create(ctx, msg))
	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, "Visitor", got.Name)
	assert.Equal(t, "Love the site", got.Body)

	// Messages carry a TTL so the inbox does not grow forever.
	ttl := mr.TTL("contact:msg:" + msg.ID)
	assert.Equal(t, messageTTL, ttl)
}

func TestMessageRepository_GetByID_NotFound(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	repo := NewMessageRepository(client)
	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrMessageNotFound)
}

func TestMessageRepository_List(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	repo := NewMessageRepository(client)
	ctx := context.Background()

	first := &domain.Message{Name: "A", Email: "a@example.com", Body: "first"}
	require.NoError(t, repo.Create(ctx, first))
	second := &domain.Message{Name: "B", Email: "b@example.com", Body: "second"}
	second.CreatedAt = first.CreatedAt.Add(1) // force a stable order
	require.NoError(t, repo.Create(ctx, second))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Body)
	assert.Equal(t, "first", items[1].Body)
}

func TestMessageRepository_List_PrunesExpired(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	repo := NewMessageRepository(client)
	ctx := context.Background()

	msg := &domain.Message{Name: "A", Email: "a@example.com", Body: "going away"}
	require.NoError(t, repo.Create(ctx, msg))

	// Simulate TTL expiry of the payload while the index entry remains.
	mr.FastForward(messageTTL + 1)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	members, err := client.SMembers(ctx, inboxSetKey).Result()
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestMessageRepository_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	repo := NewMessageRepository(client)
	ctx := context.Background()

	msg := &domain.Message{Name: "A", Email: "a@example.com", Body: "delete me"}
	require.NoError(t, repo.Create(ctx, msg))

	require.NoError(t, repo.Delete(ctx, msg.ID))

	_, err := repo.GetByID(ctx, msg.ID)
	assert.ErrorIs(t, err, domain.ErrMessageNotFound)

	t.Run("deleting twice fails", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, msg.ID), domain.ErrMessageNotFound)
	})
}

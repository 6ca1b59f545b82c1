package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pitwall-dev/portfolio-backend/internal/contact/domain"
)

const (
	messageKeyPrefix = "contact:msg:"          // Key for message data: contact:msg:{id}
	inboxSetKey      = "contact:inbox"         // Set of all message IDs
	messageTTL       = 30 * 24 * time.Hour     // Messages expire after 30 days
)

// MessageRepository handles Redis operations for contact messages.
type MessageRepository struct {
	client *redis.Client
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(client *redis.Client) *MessageRepository {
	return &MessageRepository{client: client}
}

// Create stores a new message. The repository assigns the id and timestamp.
func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	// Pipeline keeps the message and its inbox entry together.
	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.messageKey(msg.ID), data, messageTTL)
	pipe.SAdd(ctx, inboxSetKey, msg.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store message: %w", err)
	}
	return nil
}

// GetByID retrieves a message by its ID.
func (r *MessageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	data, err := r.client.Get(ctx, r.messageKey(id)).Result()
	if err == redis.Nil {
		return nil, domain.ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	var msg domain.Message
	if err := json.Unmarshal([]byte(data), &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return &msg, nil
}

// List returns all unexpired messages, newest first. IDs whose payload has
// expired are pruned from the inbox set as they are encountered.
func (r *MessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	ids, err := r.client.SMembers(ctx, inboxSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list inbox: %w", err)
	}

	out := make([]domain.Message, 0, len(ids))
	for _, id := range ids {
		msg, err := r.GetByID(ctx, id)
		if err == domain.ErrMessageNotFound {
			r.client.SRem(ctx, inboxSetKey, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *msg)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a message from the inbox.
func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.messageKey(id))
	pipe.SRem(ctx, inboxSetKey, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

func (r *MessageRepository) messageKey(id string) string {
	return fmt.Sprintf("%s%s", messageKeyPrefix, id)
}

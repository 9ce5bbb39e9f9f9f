package marketplace

import (
	"context"
	"fmt"
	"sort"

	"github.com/jananikuppan04-sys/Campus-Cart/docstore"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/models"
)

// MessageService stores buyer/seller notes. Sender and receiver are user
// identifiers and stay unresolved; the inbox never joins against users.
type MessageService struct {
	messages *docstore.Collection
}

// Send records a message. An empty receiver routes to the admin account.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID, productID, content string) (models.Message, error) {
	if content == "" {
		return models.Message{}, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if receiverID == "" {
		receiverID = "admin"
	}

	created, err := s.messages.Create(ctx, map[string]any{
		"sender":    senderID,
		"receiver":  receiverID,
		"productId": productID,
		"content":   content,
		"read":      false,
	})
	if err != nil {
		return models.Message{}, err
	}

	var msg models.Message
	if err := created.Decode(&msg); err != nil {
		return models.Message{}, err
	}
	return msg, nil
}

// Inbox returns every message the user sent or received, newest first. The
// filter language has no OR, so this reads the collection once and merges
// the two sides in memory.
func (s *MessageService) Inbox(ctx context.Context, userID string) ([]models.Message, error) {
	entities, err := s.messages.Find(docstore.Filter{}).Find(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]models.Message, 0, len(entities))
	for _, e := range entities {
		if e.String("sender") != userID && e.String("receiver") != userID {
			continue
		}
		var msg models.Message
		if err := e.Decode(&msg); err != nil {
			return nil, err
		}
		mine = append(mine, msg)
	}

	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].CreatedAt > mine[j].CreatedAt
	})
	return mine, nil
}

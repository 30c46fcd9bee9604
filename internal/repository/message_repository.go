package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Vengatesh521/student-teacher-booking/internal/model"
)

type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

// Create appends a new message. Messages are never updated or deleted.
func (r *MessageRepository) Create(ctx context.Context, msg *model.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, participants, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	participants := []string{msg.Participants[0], msg.Participants[1]}

	err := r.pool.QueryRow(
		ctx, query,
		msg.ID,
		msg.SenderID,
		msg.ReceiverID,
		participants,
		msg.Content,
	).Scan(&msg.CreatedAt)

	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}

// ListByParticipant returns every message involving the user, oldest first.
// Ordering is created_at with id as a stable tie-breaker; callers narrow the
// result down to a single conversation themselves.
func (r *MessageRepository) ListByParticipant(ctx context.Context, userID string) ([]*model.Message, error) {
	query := `
		SELECT id, sender_id, receiver_id, participants, content, created_at
		FROM messages
		WHERE $1 = ANY(participants)
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list messages by participant: %w", err)
	}
	defer rows.Close()

	var msgs []*model.Message
	for rows.Next() {
		var (
			msg          model.Message
			participants []string
		)
		err := rows.Scan(
			&msg.ID,
			&msg.SenderID,
			&msg.ReceiverID,
			&participants,
			&msg.Content,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		if len(participants) == 2 {
			msg.Participants = [2]string{participants[0], participants[1]}
		}
		msgs = append(msgs, &msg)
	}

	return msgs, nil
}

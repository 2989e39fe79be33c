// internal/storage/postgres/messages.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"talenthub/internal/models"
	"talenthub/internal/storage"
	"talenthub/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MessageRepo implements storage.MessageRepository using PostgreSQL.
type MessageRepo struct {
	db Querier
}

// NewMessageRepo creates a new MessageRepo.
func NewMessageRepo(db *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{db: db}
}

// Compile-time check to ensure MessageRepo implements MessageRepository
var _ storage.MessageRepository = (*MessageRepo)(nil)

const messageColumns = `id, sender_id, receiver_id, content, is_read, created_at`

func scanMessage(row pgx.Row) (*models.Message, error) {
	var m models.Message
	err := row.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create saves a new message, unread by default.
func (r *MessageRepo) Create(ctx context.Context, req *dto.SendMessageRequest) (*models.Message, error) {
	query := `
		INSERT INTO messages (sender_id, receiver_id, content)
		VALUES ($1, $2, $3)
		RETURNING ` + messageColumns

	msg, err := scanMessage(r.db.QueryRow(ctx, query, req.SenderID, req.ReceiverID, req.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", mapWriteError(err))
	}
	return msg, nil
}

// GetByID retrieves a specific message.
func (r *MessageRepo) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	msg, err := scanMessage(r.db.QueryRow(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return msg, nil
}

// ListConversation returns the messages exchanged between two users, newest first.
func (r *MessageRepo) ListConversation(ctx context.Context, userA, userB int64, limit, offset int) ([]models.Message, error) {
	query := `
		SELECT ` + messageColumns + ` FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, userA, userB, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversation: %w", err)
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// MarkRead flags a single message as read.
func (r *MessageRepo) MarkRead(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE messages SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// MarkConversationRead flags every unread message from partner to reader.
func (r *MessageRepo) MarkConversationRead(ctx context.Context, readerID, partnerID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE messages SET is_read = TRUE
		 WHERE receiver_id = $1 AND sender_id = $2 AND is_read = FALSE`,
		readerID, partnerID)
	if err != nil {
		return fmt.Errorf("failed to mark conversation read: %w", err)
	}
	return nil
}

// ListInbox returns one summary per conversation partner with the latest
// message and the unread count, most recent conversation first.
func (r *MessageRepo) ListInbox(ctx context.Context, userID int64) ([]models.ConversationSummary, error) {
	query := `
		SELECT partner_id, partner_name, content, sent_at, unread_count
		FROM (
			SELECT DISTINCT ON (partner_id)
			       partner_id, u.name AS partner_name, m.content, m.created_at AS sent_at,
			       (SELECT COUNT(*) FROM messages um
			        WHERE um.receiver_id = $1 AND um.sender_id = partner_id AND um.is_read = FALSE) AS unread_count
			FROM (
				SELECT *, CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END AS partner_id
				FROM messages
				WHERE sender_id = $1 OR receiver_id = $1
			) m
			JOIN users u ON u.id = m.partner_id
			ORDER BY partner_id, m.created_at DESC
		) latest
		ORDER BY sent_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inbox: %w", err)
	}
	defer rows.Close()

	summaries := []models.ConversationSummary{}
	for rows.Next() {
		var s models.ConversationSummary
		if err := rows.Scan(&s.PartnerID, &s.PartnerName, &s.LastMessage, &s.LastSentAt, &s.UnreadCount); err != nil {
			return nil, fmt.Errorf("failed to scan inbox row: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

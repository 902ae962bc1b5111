package message

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"dmchat/internal/app/db"
	"dmchat/internal/app/user"
)

var (
	// ErrNotFound indicates that no message matched the requested id, or that
	// the requester is not a party to it.
	ErrNotFound = errors.New("message not found")

	// ErrEmptyBody indicates a message whose body is empty after trimming.
	ErrEmptyBody = errors.New("message body is empty")

	// ErrUnknownRecipient indicates that the recipient does not reference an existing user.
	ErrUnknownRecipient = errors.New("recipient does not exist")
)

// Store is the persistence interface for direct messages.
type Store interface {
	// Create persists a new message with a server-assigned SentAt timestamp.
	// The recipient must exist; an unknown recipient is rejected deterministically.
	Create(ctx context.Context, from, to user.ID, body, imageRef string) (Message, error)

	// ListByRecipient returns every message addressed to the given user in
	// insertion order, each with the sender resolved to name and avatar.
	ListByRecipient(ctx context.Context, to user.ID) ([]Received, error)

	// Delete removes the message when the requester is its sender or recipient.
	// Any other case, including an already-deleted id, reports ErrNotFound.
	Delete(ctx context.Context, id ID, requester user.ID) error
}

type pgStore struct {
	pool *pgxpool.Pool
}

// NewStore returns a Store backed by the given PostgreSQL pool.
func NewStore(pool *pgxpool.Pool) Store {
	return &pgStore{pool: pool}
}

const createMessageQuery = `
INSERT INTO messages (from_id, to_id, body, image_ref, sent_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (s *pgStore) Create(ctx context.Context, from, to user.ID, body, imageRef string) (Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return Message{}, ErrEmptyBody
	}
	if to == "" {
		return Message{}, ErrUnknownRecipient
	}

	// The server clock is authoritative for SentAt, never the client.
	m := Message{
		From:     from,
		To:       to,
		Body:     body,
		ImageRef: imageRef,
		SentAt:   time.Now().UTC().Format(time.RFC3339),
	}

	var imageArg sql.NullString
	if imageRef != "" {
		imageArg = sql.NullString{String: imageRef, Valid: true}
	}

	err := s.pool.QueryRow(ctx, createMessageQuery,
		string(from), string(to), m.Body, imageArg, m.SentAt,
	).Scan((*string)(&m.ID))
	if err != nil {
		// The foreign keys on from_id/to_id enforce referential integrity in
		// the same atomic write that persists the row.
		if db.IsForeignKeyViolation(err) || db.IsInvalidTextRepresentation(err) {
			return Message{}, ErrUnknownRecipient
		}
		return Message{}, fmt.Errorf("create message: %w", err)
	}

	return m, nil
}

const listByRecipientQuery = `
SELECT m.id, u.id, u.name, u.image_ref, m.to_id, m.body, COALESCE(m.image_ref, ''), m.sent_at
FROM messages m
JOIN users u ON u.id = m.from_id
WHERE m.to_id = $1
ORDER BY m.seq`

func (s *pgStore) ListByRecipient(ctx context.Context, to user.ID) ([]Received, error) {
	rows, err := s.pool.Query(ctx, listByRecipientQuery, string(to))
	if err != nil {
		if db.IsInvalidTextRepresentation(err) {
			return []Received{}, nil
		}
		return nil, fmt.Errorf("list messages by recipient: %w", err)
	}
	defer rows.Close()

	messages := []Received{}
	for rows.Next() {
		var m Received
		err := rows.Scan(
			(*string)(&m.ID),
			(*string)(&m.From.ID), &m.From.Name, &m.From.ImageRef,
			(*string)(&m.To), &m.Body, &m.ImageRef, &m.SentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		if db.IsInvalidTextRepresentation(err) {
			return []Received{}, nil
		}
		return nil, fmt.Errorf("list messages by recipient: %w", err)
	}

	return messages, nil
}

const deleteMessageQuery = `
DELETE FROM messages
WHERE id = $1 AND (from_id = $2 OR to_id = $2)`

func (s *pgStore) Delete(ctx context.Context, id ID, requester user.ID) error {
	tag, err := s.pool.Exec(ctx, deleteMessageQuery, string(id), string(requester))
	if err != nil {
		if db.IsInvalidTextRepresentation(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete message: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

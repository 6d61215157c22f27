package store

import (
	"context"
	"fmt"

	"github.com/dawitg/card-services/internal/cardsvc/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultTable is used when no table is configured or the configured
// name is not a safe identifier.
const DefaultTable = "cards"

type CardStore struct {
	db    *pgxpool.Pool
	table string
}

// NewCardStore builds a store over the given table. The table name is
// sanitized here so no caller can get an unsafe identifier into SQL text.
func NewCardStore(db *pgxpool.Pool, table string) *CardStore {
	return &CardStore{db: db, table: SanitizeIdentifier(table, DefaultTable)}
}

func (s *CardStore) ListCards(ctx context.Context) ([]models.Card, error) {
	query := fmt.Sprintf(`
		SELECT id, card_name, card_pic
		FROM %s
	`, s.table)

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	cards := []models.Card{}
	for rows.Next() {
		var c models.Card
		err := rows.Scan(
			&c.ID,
			&c.CardName,
			&c.CardPic,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cards: %w", err)
	}

	return cards, nil
}

func (s *CardStore) CreateCard(ctx context.Context, cardName, cardPic string) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (card_name, card_pic)
		VALUES ($1, $2)
		RETURNING id
	`, s.table)

	var id int64
	err := s.db.QueryRow(ctx, query, cardName, cardPic).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("could not create card: %w", err)
	}

	return id, nil
}

// UpdateCard overwrites both content fields for the row matching id and
// returns the number of rows affected, zero when no such card exists.
func (s *CardStore) UpdateCard(ctx context.Context, id int64, cardName, cardPic string) (int64, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET card_name = $1, card_pic = $2
		WHERE id = $3
	`, s.table)

	tag, err := s.db.Exec(ctx, query, cardName, cardPic, id)
	if err != nil {
		return 0, fmt.Errorf("could not update card %d: %w", id, err)
	}

	return tag.RowsAffected(), nil
}

func (s *CardStore) DeleteCard(ctx context.Context, id int64) (int64, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, s.table)

	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("could not delete card %d: %w", id, err)
	}

	return tag.RowsAffected(), nil
}

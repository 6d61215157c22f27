package service

import (
	"context"

	"github.com/dawitg/card-services/internal/cardsvc/models"
)

// CardStore is what the service needs from the storage layer. The pgx
// backed store satisfies it in production; tests substitute their own.
type CardStore interface {
	ListCards(ctx context.Context) ([]models.Card, error)
	CreateCard(ctx context.Context, cardName, cardPic string) (int64, error)
	UpdateCard(ctx context.Context, id int64, cardName, cardPic string) (int64, error)
	DeleteCard(ctx context.Context, id int64) (int64, error)
}

type CardService struct {
	store CardStore
}

func NewCardService(store CardStore) *CardService {
	return &CardService{store: store}
}

func (s *CardService) ListCards(ctx context.Context) ([]models.Card, error) {
	return s.store.ListCards(ctx)
}

func (s *CardService) CreateCard(ctx context.Context, cardName, cardPic string) (*models.Card, error) {
	id, err := s.store.CreateCard(ctx, cardName, cardPic)
	if err != nil {
		return nil, err
	}

	return &models.Card{ID: id, CardName: cardName, CardPic: cardPic}, nil
}

// UpdateCard overwrites both fields of the card. The bool result reports
// whether a card with that id existed.
func (s *CardService) UpdateCard(ctx context.Context, id int64, cardName, cardPic string) (bool, error) {
	affected, err := s.store.UpdateCard(ctx, id, cardName, cardPic)
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (s *CardService) DeleteCard(ctx context.Context, id int64) (bool, error) {
	affected, err := s.store.DeleteCard(ctx, id)
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

package study

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmarkov/flashdeck-backend/internal/domain"
)

// Hand-rolled test doubles for the consumer-defined repo interfaces.

type deckRepoMock struct {
	GetByIDFunc func(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error)
}

func (m *deckRepoMock) GetByID(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error) {
	return m.GetByIDFunc(ctx, deckID)
}

type cardRepoMock struct {
	GetByIDFunc        func(ctx context.Context, cardID uuid.UUID) (*domain.Flashcard, error)
	GetByDeckIDFunc    func(ctx context.Context, deckID uuid.UUID) ([]*domain.Flashcard, error)
	UpdateScheduleFunc func(ctx context.Context, cardID uuid.UUID, update ScheduleUpdate) (*domain.Flashcard, error)
}

func (m *cardRepoMock) GetByID(ctx context.Context, cardID uuid.UUID) (*domain.Flashcard, error) {
	return m.GetByIDFunc(ctx, cardID)
}

func (m *cardRepoMock) GetByDeckID(ctx context.Context, deckID uuid.UUID) ([]*domain.Flashcard, error) {
	return m.GetByDeckIDFunc(ctx, deckID)
}

func (m *cardRepoMock) UpdateSchedule(ctx context.Context, cardID uuid.UUID, update ScheduleUpdate) (*domain.Flashcard, error) {
	return m.UpdateScheduleFunc(ctx, cardID, update)
}

func ptr[T any](v T) *T { return &v }

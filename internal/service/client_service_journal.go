package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-campus-login/internal/logger"
	"github.com/MKhiriev/go-campus-login/internal/store"
	"github.com/MKhiriev/go-campus-login/models"
)

type journalService struct {
	journal store.AttemptJournalRepository

	logger *logger.Logger
}

func NewJournalService(journal store.AttemptJournalRepository, logger *logger.Logger) JournalService {
	return &journalService{journal: journal, logger: logger}
}

func (s *journalService) RecentAttempts(ctx context.Context, limit int) ([]models.LoginAttempt, error) {
	attempts, err := s.journal.GetRecentAttempts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJournalRead, err)
	}

	return attempts, nil
}

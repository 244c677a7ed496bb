package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/salonelidia/salon-system/internal/core/domain"
	"github.com/salonelidia/salon-system/internal/core/ports"
)

type salonService struct {
	repo  ports.SalonRepository
	cache ports.StatsCache
	log   zerolog.Logger
}

// NewSalonService returns a SalonService. cache may be nil.
func NewSalonService(repo ports.SalonRepository, cache ports.StatsCache, log zerolog.Logger) ports.SalonService {
	return &salonService{repo: repo, cache: cache, log: log}
}

// AdminStats serves from the cache when one is configured. Cache faults are
// logged and never fail the call.
func (s *salonService) AdminStats(ctx context.Context) (domain.AdminStats, error) {
	if s.cache != nil {
		stats, found, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("stats cache read failed, querying store")
		} else if found {
			return stats, nil
		}
	}

	stats, err := s.repo.AdminStats(ctx)
	if err != nil {
		return domain.AdminStats{}, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.log.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

func (s *salonService) ListClients(ctx context.Context) ([]domain.ClientSummary, error) {
	clients, err := s.repo.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []domain.ClientSummary{}
	}
	return clients, nil
}

// ClientProfile returns the profile of userID only; callers pass the verified
// token subject, never a caller-supplied id.
func (s *salonService) ClientProfile(ctx context.Context, userID int64) (*domain.ClientProfile, error) {
	return s.repo.ClientProfile(ctx, userID)
}

func (s *salonService) ClientAppointments(ctx context.Context, userID int64) ([]domain.Appointment, error) {
	appts, err := s.repo.ClientAppointments(ctx, userID)
	if err != nil {
		return nil, err
	}
	if appts == nil {
		appts = []domain.Appointment{}
	}
	return appts, nil
}

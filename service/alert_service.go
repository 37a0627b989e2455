package service

import (
	localCache "backend/cache"
	"backend/model"
	"backend/repository"
	"context"

	goCache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

type AlertService interface {
	SaveAlert(ctx context.Context, dto model.AlertDto) (model.Alert, error)
	GetAlerts(ctx context.Context) ([]model.Alert, error)
	SetActive(ctx context.Context, id string, active bool) (*model.Alert, error)
	DeleteAlert(ctx context.Context, id string) error
	CheckAlerts(ctx context.Context) ([]model.TriggeredAlert, error)
}

type AlertServiceImpl struct {
	repo       *repository.AlertRepository
	marketData MarketDataService
}

func NewAlertService(repo *repository.AlertRepository, marketData MarketDataService) AlertService {
	return &AlertServiceImpl{
		repo:       repo,
		marketData: marketData,
	}
}

func (s *AlertServiceImpl) SaveAlert(ctx context.Context, dto model.AlertDto) (model.Alert, error) {
	alert := dto.ToEntity()
	if err := s.repo.Save(ctx, alert); err != nil {
		return model.Alert{}, err
	}

	localCache.AlertCache.Set(alert.ID, alert, goCache.NoExpiration)
	return alert, nil
}

func (s *AlertServiceImpl) GetAlerts(ctx context.Context) ([]model.Alert, error) {
	alerts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, alert := range alerts {
		localCache.AlertCache.Set(alert.ID, alert, goCache.NoExpiration)
	}
	return alerts, nil
}

func (s *AlertServiceImpl) SetActive(ctx context.Context, id string, active bool) (*model.Alert, error) {
	updated, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}

	localCache.AlertCache.Set(updated.ID, *updated, goCache.NoExpiration)
	return updated, nil
}

func (s *AlertServiceImpl) DeleteAlert(ctx context.Context, id string) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	localCache.AlertCache.Delete(id)
	return nil
}

// CheckAlerts compares every active alert against a fresh quote and reports
// the ones that tripped. Quote failures skip that alert, they never abort
// the sweep.
func (s *AlertServiceImpl) CheckAlerts(ctx context.Context) ([]model.TriggeredAlert, error) {
	alerts, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	triggered := make([]model.TriggeredAlert, 0)
	for _, alert := range alerts {
		info, err := s.marketData.GetMarketInfo(ctx, alert.Symbol, alert.Exchange)
		if err != nil {
			log.Warn().Str("symbol", alert.Symbol).Err(err).Msg("Skipping alert, quote unavailable")
			continue
		}

		if alertTripped(alert, info.CurrentPrice) {
			triggered = append(triggered, model.TriggeredAlert{
				Alert:        alert,
				CurrentPrice: info.CurrentPrice,
			})
		}
	}

	return triggered, nil
}

func alertTripped(alert model.Alert, price float64) bool {
	switch alert.Condition {
	case model.AlertPriceAbove:
		return price >= alert.Value
	case model.AlertPriceBelow:
		return price <= alert.Value
	default:
		return false
	}
}

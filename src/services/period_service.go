package services

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/bankrecon/backend/src/logger"
	"github.com/username/bankrecon/backend/src/model"
	"github.com/username/bankrecon/backend/src/models"
	"github.com/username/bankrecon/backend/src/security/validation"
)

const (
	ckPeriod               = "period_%s"
	ckPeriodList           = "periods_all"
	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

type periodServiceImpl struct {
	store       model.Store
	periodCache *cache.Cache
}

// NewPeriodService returns a PeriodService that serves reads from
// periodCache and invalidates it on every write.
func NewPeriodService(store model.Store, periodCache *cache.Cache) PeriodService {
	return &periodServiceImpl{store: store, periodCache: periodCache}
}

func parsePeriodInput(in PeriodInput) (int, models.PeriodMonth, error) {
	if err := validation.ValidateYear(in.Year); err != nil {
		return 0, "", invalid(err)
	}
	month, err := validation.ValidateMonth(in.Month)
	if err != nil {
		return 0, "", invalid(err)
	}
	return in.Year, month, nil
}

func (s *periodServiceImpl) CreatePeriod(ctx context.Context, in PeriodInput) (*models.Period, error) {
	year, month, err := parsePeriodInput(in)
	if err != nil {
		return nil, err
	}
	p, err := models.NewPeriod(year, month)
	if err != nil {
		return nil, invalid(err)
	}
	if err := s.store.CreatePeriod(ctx, p); err != nil {
		return nil, translateStoreError(err, fmt.Sprintf("period %s %d", month, year))
	}
	s.periodCache.Delete(ckPeriodList)
	logger.FromContext(ctx).Info("Period created", "periodID", p.ID, "year", p.Year, "month", p.Month)
	return p, nil
}

// UpdatePeriod changes the year and month of a period; the start and end
// dates are derived again from them.
func (s *periodServiceImpl) UpdatePeriod(ctx context.Context, id string, in PeriodInput) (*models.Period, error) {
	year, month, err := parsePeriodInput(in)
	if err != nil {
		return nil, err
	}

	var updated *models.Period
	err = s.store.InTx(ctx, func(tx model.Store) error {
		p, err := tx.GetPeriod(ctx, id)
		if err != nil {
			return translateStoreError(err, "period "+id)
		}
		if err := p.SetYearMonth(year, month); err != nil {
			return invalid(err)
		}
		if err := tx.UpdatePeriod(ctx, p); err != nil {
			return translateStoreError(err, fmt.Sprintf("period %s %d", month, year))
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(id)
	logger.FromContext(ctx).Info("Period updated", "periodID", id, "year", year, "month", month)
	return updated, nil
}

func (s *periodServiceImpl) GetPeriod(ctx context.Context, id string) (*models.Period, error) {
	cacheKey := fmt.Sprintf(ckPeriod, id)
	if cached, found := s.periodCache.Get(cacheKey); found {
		p := *cached.(*models.Period)
		return &p, nil
	}

	p, err := s.store.GetPeriod(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "period "+id)
	}
	cp := *p
	s.periodCache.Set(cacheKey, &cp, cache.DefaultExpiration)
	return p, nil
}

func (s *periodServiceImpl) ListPeriods(ctx context.Context) ([]models.Period, error) {
	if cached, found := s.periodCache.Get(ckPeriodList); found {
		return append([]models.Period{}, cached.([]models.Period)...), nil
	}

	periods, err := s.store.ListPeriods(ctx)
	if err != nil {
		return nil, translateStoreError(err, "periods")
	}
	s.periodCache.Set(ckPeriodList, append([]models.Period{}, periods...), cache.DefaultExpiration)
	return periods, nil
}

// DeletePeriod removes the period and everything recorded in it.
func (s *periodServiceImpl) DeletePeriod(ctx context.Context, id string) error {
	if err := s.store.DeletePeriod(ctx, id); err != nil {
		return translateStoreError(err, "period "+id)
	}
	s.invalidate(id)
	logger.FromContext(ctx).Info("Period deleted", "periodID", id)
	return nil
}

func (s *periodServiceImpl) invalidate(id string) {
	s.periodCache.Delete(fmt.Sprintf(ckPeriod, id))
	s.periodCache.Delete(ckPeriodList)
}

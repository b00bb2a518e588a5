package service

import (
	"context"

	"github.com/kamaal111/forex-api/deploy/config"
	"github.com/kamaal111/forex-api/internal/entities"
)

type Service struct {
	storage Storage
	cfg     *config.Config
}

func NewService(storage Storage, cfg *config.Config) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}

func (s *Service) FetchAllRates(ctx context.Context) ([]entities.ExchangeRateRecord, error) {
	return s.storage.GetAllRates(ctx)
}

// FetchLatestRate resolves the base currency, looks up its most recent record
// and narrows the rates mapping to the requested symbols. With no usable
// symbols the record is returned as retrieved. A requested symbol missing from
// the stored rates is skipped.
func (s *Service) FetchLatestRate(ctx context.Context, base string, symbols string) (*entities.ExchangeRateRecord, error) {
	normalizedBase := entities.NormalizeBase(base)

	record, err := s.storage.GetLatestRate(ctx, normalizedBase)
	if err != nil {
		return nil, err
	}

	requested := entities.ParseSymbols(symbols, normalizedBase)
	if len(requested) == 0 {
		return record, nil
	}

	filtered := &entities.ExchangeRateRecord{
		Base:  record.Base,
		Date:  record.Date,
		Rates: make(map[string]float64, len(requested)),
	}
	for _, symbol := range requested {
		if rate, ok := record.Rates[symbol.String()]; ok {
			filtered.Rates[symbol.String()] = rate
		}
	}

	return filtered, nil
}

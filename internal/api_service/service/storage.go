package service

import (
	"context"

	"github.com/kamaal111/forex-api/internal/entities"
)

type Storage interface {
	GetLatestRate(ctx context.Context, base entities.Currency) (*entities.ExchangeRateRecord, error)
	GetAllRates(ctx context.Context) ([]entities.ExchangeRateRecord, error)
}

package public

import (
	"context"

	"github.com/kamaal111/forex-api/internal/entities"
)

type Service interface {
	FetchLatestRate(ctx context.Context, base string, symbols string) (record *entities.ExchangeRateRecord, err error)
	FetchAllRates(ctx context.Context) (records []entities.ExchangeRateRecord, err error)
}

package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kamaal111/forex-api/internal/entities"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GetLatestRate(ctx context.Context, base entities.Currency) (*entities.ExchangeRateRecord, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ExchangeRateRecord), args.Error(1)
}

func (m *MockStorage) GetAllRates(ctx context.Context) ([]entities.ExchangeRateRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ExchangeRateRecord), args.Error(1)
}

func sampleRecord() *entities.ExchangeRateRecord {
	return &entities.ExchangeRateRecord{
		Base: "EUR",
		Date: "2024-01-01",
		Rates: map[string]float64{
			"USD": 1.1,
			"GBP": 0.85,
		},
	}
}

func TestFetchLatestRate(t *testing.T) {
	ctx := context.Background()

	t.Run("filters to requested symbols and drops unknown tokens", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("GetLatestRate", ctx, entities.Currency("EUR")).Return(sampleRecord(), nil).Once()

		svc := NewService(storage, nil)

		record, err := svc.FetchLatestRate(ctx, "eur", "usd,xyz")
		require.NoError(t, err)

		assert.Equal(t, "EUR", record.Base)
		assert.Equal(t, "2024-01-01", record.Date)
		assert.Equal(t, map[string]float64{"USD": 1.1}, record.Rates)

		storage.AssertExpectations(t)
	})

	t.Run("defaults to EUR without params", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("GetLatestRate", ctx, entities.Currency("EUR")).Return(sampleRecord(), nil).Once()

		svc := NewService(storage, nil)

		record, err := svc.FetchLatestRate(ctx, "", "")
		require.NoError(t, err)

		assert.Equal(t, sampleRecord(), record)
		storage.AssertExpectations(t)
	})

	t.Run("defaults to EUR for unknown base", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("GetLatestRate", ctx, entities.Currency("EUR")).Return(sampleRecord(), nil).Once()

		svc := NewService(storage, nil)

		_, err := svc.FetchLatestRate(ctx, "INVALID", "")
		require.NoError(t, err)

		storage.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("GetLatestRate", ctx, entities.Currency("JPY")).Return(nil, entities.ErrNotFound).Once()

		svc := NewService(storage, nil)

		record, err := svc.FetchLatestRate(ctx, "jpy", "")
		assert.ErrorIs(t, err, entities.ErrNotFound)
		assert.Nil(t, record)
	})

	t.Run("propagates storage failure", func(t *testing.T) {
		storage := new(MockStorage)
		storeErr := errors.New("store unavailable")
		storage.On("GetLatestRate", ctx, entities.Currency("EUR")).Return(nil, storeErr).Once()

		svc := NewService(storage, nil)

		_, err := svc.FetchLatestRate(ctx, "EUR", "USD")
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("self-only symbols returns the full record", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("GetLatestRate", ctx, entities.Currency("EUR")).Return(sampleRecord(), nil).Once()

		svc := NewService(storage, nil)

		record, err := svc.FetchLatestRate(ctx, "eur", "eur")
		require.NoError(t, err)

		assert.Equal(t, sampleRecord().Rates, record.Rates)
	})

	t.Run("symbol absent from stored rates is skipped", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("GetLatestRate", ctx, entities.Currency("EUR")).Return(sampleRecord(), nil).Once()

		svc := NewService(storage, nil)

		// CHF is catalog-valid but the stored record has no CHF rate.
		record, err := svc.FetchLatestRate(ctx, "EUR", "USD,CHF")
		require.NoError(t, err)

		assert.Equal(t, map[string]float64{"USD": 1.1}, record.Rates)
	})

	t.Run("filtering narrows by key subset and keeps the original intact", func(t *testing.T) {
		storage := new(MockStorage)
		original := sampleRecord()
		storage.On("GetLatestRate", ctx, entities.Currency("EUR")).Return(original, nil).Once()

		svc := NewService(storage, nil)

		record, err := svc.FetchLatestRate(ctx, "EUR", "GBP")
		require.NoError(t, err)

		for symbol, rate := range record.Rates {
			assert.Equal(t, original.Rates[symbol], rate)
		}
		assert.Equal(t, sampleRecord(), original)
	})

	t.Run("identical calls yield identical results", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("GetLatestRate", ctx, entities.Currency("EUR")).Return(sampleRecord(), nil).Twice()

		svc := NewService(storage, nil)

		first, err := svc.FetchLatestRate(ctx, "eur", "usd,gbp")
		require.NoError(t, err)
		second, err := svc.FetchLatestRate(ctx, "eur", "usd,gbp")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestFetchAllRates(t *testing.T) {
	ctx := context.Background()

	t.Run("returns every stored record", func(t *testing.T) {
		storage := new(MockStorage)
		records := []entities.ExchangeRateRecord{
			*sampleRecord(),
			{Base: "USD", Date: "2024-01-02", Rates: map[string]float64{"EUR": 0.91}},
		}
		storage.On("GetAllRates", ctx).Return(records, nil).Once()

		svc := NewService(storage, nil)

		got, err := svc.FetchAllRates(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, records, got)
	})

	t.Run("propagates storage failure", func(t *testing.T) {
		storage := new(MockStorage)
		storeErr := errors.New("store unavailable")
		storage.On("GetAllRates", ctx).Return(nil, storeErr).Once()

		svc := NewService(storage, nil)

		_, err := svc.FetchAllRates(ctx)
		assert.ErrorIs(t, err, storeErr)
	})
}

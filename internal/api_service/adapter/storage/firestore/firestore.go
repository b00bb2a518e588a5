package firestore

import (
	"context"
	"log/slog"

	firestoredb "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"

	"github.com/kamaal111/forex-api/deploy/config"
	"github.com/kamaal111/forex-api/internal/entities"
)

type Storage struct {
	client *firestoredb.Client
	cfg    *config.Config
}

func NewStorage(client *firestoredb.Client, cfg *config.Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	const op = "storage.firestore.New"

	client, err := firestoredb.NewClient(ctx, cfg.Firestore.ProjectID)
	if err != nil {
		slog.Error("firestore connect failed", "error", err)
		return nil, errors.Wrap(err, op)
	}

	storage := NewStorage(client, cfg)

	slog.Info("Firestore storage initialized successfully")
	return storage, nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}

func (s *Storage) collection() *firestoredb.CollectionRef {
	return s.client.Collection(s.cfg.Firestore.Collection)
}

func (s *Storage) GetAllRates(ctx context.Context) ([]entities.ExchangeRateRecord, error) {
	const op = "storage.firestore.GetAllRates"

	documents := s.collection().Documents(ctx)
	defer documents.Stop()

	records := make([]entities.ExchangeRateRecord, 0)
	for {
		document, err := documents.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, op)
		}

		var record entities.ExchangeRateRecord
		if err := document.DataTo(&record); err != nil {
			return nil, errors.Wrap(err, op)
		}

		records = append(records, record)
	}

	return records, nil
}

func (s *Storage) GetLatestRate(ctx context.Context, base entities.Currency) (*entities.ExchangeRateRecord, error) {
	const op = "storage.firestore.GetLatestRate"

	documents := s.collection().
		OrderBy("date", firestoredb.Desc).
		Where("base", "==", base.String()).
		Limit(1).
		Documents(ctx)
	defer documents.Stop()

	document, err := documents.Next()
	if errors.Is(err, iterator.Done) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	var record entities.ExchangeRateRecord
	if err := document.DataTo(&record); err != nil {
		return nil, errors.Wrap(err, op)
	}

	return &record, nil
}

package ledger

import (
	"context"
	"fmt"

	"github.com/gofinances/backend/internal/importer"
	"github.com/gofinances/backend/internal/importer/parser/csvimport"
	"github.com/gofinances/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// ImportTransactions creates transactions for all valid records of a CSV source.
//
// The source is read completely before anything is written. Categories are
// resolved in one batch and all transactions are created with a single
// insert. Imported transactions are not checked against the balance.
//
// The source is removed after the transactions have been persisted, also
// if it did not contain any valid record. If the import fails, the source
// is kept.
func (s *Service) ImportTransactions(ctx context.Context, source importer.Source) ([]models.Transaction, error) {
	r, err := source.Open()
	if err != nil {
		return nil, err
	}

	candidates, err := csvimport.Parse(r)
	closeErr := r.Close()
	if err != nil {
		return nil, err
	}

	if closeErr != nil {
		return nil, fmt.Errorf("could not close import source: %w", closeErr)
	}

	titles := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		titles = append(titles, candidate.Category)
	}

	categories, err := s.ResolveCategories(ctx, titles)
	if err != nil {
		return nil, err
	}

	transactions := make([]models.Transaction, 0, len(candidates))
	for _, candidate := range candidates {
		category := categories[candidate.Category]

		transactions = append(transactions, models.Transaction{
			Title:      candidate.Title,
			Type:       models.TransactionType(candidate.Type),
			Value:      candidate.Value,
			CategoryID: category.ID,
			Category:   category,
		})
	}

	err = s.store.CreateTransactions(ctx, transactions)
	if err != nil {
		return nil, err
	}

	transactionsCreated.WithLabelValues("import").Add(float64(len(transactions)))

	// The transactions are persisted at this point, a leftover source is only logged
	err = source.Remove()
	if err != nil {
		log.Error().Err(err).Msg("import source could not be removed")
	}

	log.Info().Int("count", len(transactions)).Msg("imported transactions")
	return transactions, nil
}

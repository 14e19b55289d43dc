package ledger

import (
	"context"
	"errors"

	"github.com/gofinances/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// ResolveCategory returns the category with exactly the given title,
// creating it if it does not exist yet.
//
// If the category is created concurrently between lookup and insert, the
// unique index on the title rejects the insert and the existing category
// is returned.
func (s *Service) ResolveCategory(ctx context.Context, title string) (models.Category, error) {
	category, err := s.store.FindCategoryByTitle(ctx, title)
	if err == nil {
		return category, nil
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.Category{}, err
	}

	category, err = s.store.CreateCategory(ctx, title)
	if errors.Is(err, models.ErrCategoryTitleNotUnique) {
		log.Debug().Str("title", title).Msg("category created concurrently, using existing one")
		return s.store.FindCategoryByTitle(ctx, title)
	} else if err != nil {
		return models.Category{}, err
	}

	categoriesCreated.Inc()
	return category, nil
}

// ResolveCategories maps every title to its category, creating all
// missing categories at once.
//
// The store is read exactly once and written at most once, no matter how
// many titles are passed or how often a title repeats. Only if a
// concurrent writer created one of the missing categories in between,
// the remaining ones are looked up and created a second time.
func (s *Service) ResolveCategories(ctx context.Context, titles []string) (map[string]models.Category, error) {
	titles = unique(titles)

	existing, err := s.store.FindCategoriesByTitle(ctx, titles)
	if err != nil {
		return nil, err
	}

	categories := make(map[string]models.Category, len(titles))
	for _, category := range existing {
		categories[category.Title] = category
	}

	missing := make([]models.Category, 0)
	for _, title := range titles {
		if _, ok := categories[title]; !ok {
			missing = append(missing, models.Category{Title: title})
		}
	}

	if len(missing) == 0 {
		return categories, nil
	}

	created, err := s.store.CreateCategories(ctx, missing)
	if errors.Is(err, models.ErrCategoryTitleNotUnique) {
		log.Debug().Int("count", len(missing)).Msg("categories created concurrently, resolving again")
		created, err = s.createMissing(ctx, missing)
	} else if err == nil {
		categoriesCreated.Add(float64(len(created)))
	}

	if err != nil {
		return nil, err
	}

	for _, category := range created {
		categories[category.Title] = category
	}

	return categories, nil
}

// createMissing resolves categories after a conflicting batch insert.
// It returns the categories whether they existed or had to be created.
func (s *Service) createMissing(ctx context.Context, missing []models.Category) ([]models.Category, error) {
	titles := make([]string, 0, len(missing))
	for _, category := range missing {
		titles = append(titles, category.Title)
	}

	existing, err := s.store.FindCategoriesByTitle(ctx, titles)
	if err != nil {
		return nil, err
	}

	found := make(map[string]bool, len(existing))
	for _, category := range existing {
		found[category.Title] = true
	}

	remaining := make([]models.Category, 0)
	for _, category := range missing {
		if !found[category.Title] {
			remaining = append(remaining, category)
		}
	}

	created, err := s.store.CreateCategories(ctx, remaining)
	if err != nil {
		return nil, err
	}
	categoriesCreated.Add(float64(len(created)))

	return append(existing, created...), nil
}

// unique removes duplicates from titles, keeping the first occurrence.
func unique(titles []string) []string {
	seen := make(map[string]bool, len(titles))
	result := make([]string, 0, len(titles))

	for _, title := range titles {
		if seen[title] {
			continue
		}
		seen[title] = true
		result = append(result, title)
	}

	return result
}

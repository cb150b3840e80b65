package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/dmitrijs2005/todocards/internal/common"
	"github.com/dmitrijs2005/todocards/internal/server/models"
	"github.com/dmitrijs2005/todocards/internal/server/repositories/labels"
	"github.com/dmitrijs2005/todocards/internal/server/repositories/repomanager"
)

var labelNamePattern = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)

// NormalizeLabels collapses duplicates keeping the first occurrence and
// validates count and charset.
func NormalizeLabels(names []string) ([]string, error) {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}

	if len(result) > common.MaxLabelsPerCard {
		return nil, fmt.Errorf("%w: at most %d labels are allowed, got %d", common.ErrValidation, common.MaxLabelsPerCard, len(result))
	}
	for _, name := range result {
		if !labelNamePattern.MatchString(name) {
			return nil, fmt.Errorf("%w: label %q must be 1-32 characters of a-z, 0-9, '_' or '-'", common.ErrValidation, name)
		}
	}
	return result, nil
}

// LabelService maps label names to stable ids, creating missing labels.
type LabelService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewLabelService(db *sql.DB, m repomanager.RepositoryManager) *LabelService {
	return &LabelService{db: db, repomanager: m}
}

// ResolveOrCreate validates names and returns one label per distinct name,
// in input order.
func (s *LabelService) ResolveOrCreate(ctx context.Context, names []string) ([]models.Label, error) {
	names, err := NormalizeLabels(names)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Labels(s.db)
	result := make([]models.Label, 0, len(names))
	for _, name := range names {
		label, err := repo.FindByName(ctx, name)
		if errors.Is(err, common.ErrNotFound) {
			label, err = create(ctx, repo, name)
		}
		if err != nil {
			return nil, fmt.Errorf("error resolving label %q: %w", name, err)
		}
		result = append(result, *label)
	}
	return result, nil
}

func create(ctx context.Context, repo labels.Repository, name string) (*models.Label, error) {
	if err := repo.Insert(ctx, name); err != nil {
		return nil, err
	}
	label, err := repo.FindByName(ctx, name)
	if errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("%w: label missing after insert", common.ErrInternal)
	}
	return label, err
}

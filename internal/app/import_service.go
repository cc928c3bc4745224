package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/example/labops/internal/core/importer"
	"github.com/example/labops/internal/core/item"
	"github.com/example/labops/internal/ports/primary"
	"github.com/example/labops/internal/ports/secondary"
)

// ImportServiceImpl implements the ImportService interface.
type ImportServiceImpl struct {
	groupRepo secondary.TaskGroupRepository
}

// NewImportService creates a new ImportService with injected dependencies.
func NewImportService(groupRepo secondary.TaskGroupRepository) *ImportServiceImpl {
	return &ImportServiceImpl{groupRepo: groupRepo}
}

// ImportRows normalizes raw spreadsheet rows and persists the resulting
// pool groups. Rows failing the validity filter are counted and skipped,
// never raised.
func (s *ImportServiceImpl) ImportRows(ctx context.Context, req primary.ImportRequest) (*primary.ImportResponse, error) {
	rules := importer.DefaultSplitRules
	if req.SplitRulesPath != "" {
		loaded, err := importer.LoadSplitRules(req.SplitRulesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load split rules: %w", err)
		}
		rules = loaded
	}

	result := importer.Normalize(req.Rows, req.ExcludedColumns, rules)

	resp := &primary.ImportResponse{DroppedRows: result.Dropped}
	for _, group := range result.Groups {
		record := &secondary.TaskGroupRecord{
			ID:        uuid.NewString(),
			RequestID: group.RequestID,
			Category:  importer.SuggestCategory(group.Items),
			Items:     group.Items,
		}
		if err := s.groupRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to store imported group %s: %w", group.RequestID, err)
		}
		resp.GroupsCreated++
		resp.ItemsImported += len(group.Items)
	}

	if result.Dropped > 0 {
		log.Info().Int("dropped", result.Dropped).Msg("rows failed import validation")
	}

	return resp, nil
}

// ExportPool flattens the current pool back into exportable rows.
func (s *ImportServiceImpl) ExportPool(ctx context.Context) ([]item.Item, error) {
	groups, err := s.groupRepo.List(ctx, secondary.TaskGroupFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list pool: %w", err)
	}

	var rows []item.Item
	for _, g := range groups {
		rows = append(rows, g.Items...)
	}
	return rows, nil
}

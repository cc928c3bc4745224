package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/example/labops/internal/ports/primary"
	"github.com/example/labops/internal/ports/secondary"
)

// MappingServiceImpl implements the MappingService interface.
type MappingServiceImpl struct {
	mappingRepo secondary.MappingRepository
}

// NewMappingService creates a new MappingService with injected
// dependencies.
func NewMappingService(mappingRepo secondary.MappingRepository) *MappingServiceImpl {
	return &MappingServiceImpl{mappingRepo: mappingRepo}
}

// AddMapping adds a mapping rule row.
func (s *MappingServiceImpl) AddMapping(ctx context.Context, req primary.AddMappingRequest) (*primary.MappingRow, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("a mapping description is required")
	}
	if strings.TrimSpace(req.HeaderGroup) == "" {
		return nil, fmt.Errorf("a mapping header group is required")
	}

	record := &secondary.MappingRecord{
		ID:          uuid.NewString(),
		Description: req.Description,
		Variant:     req.Variant,
		HeaderGroup: req.HeaderGroup,
		HeaderSub:   req.HeaderSub,
		Order:       req.Order,
		HasOrder:    req.HasOrder,
	}
	if err := s.mappingRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create mapping: %w", err)
	}
	return recordToMappingRow(record), nil
}

// ListMappings returns all mapping rows in table order.
func (s *MappingServiceImpl) ListMappings(ctx context.Context) ([]*primary.MappingRow, error) {
	records, err := s.mappingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}
	rows := make([]*primary.MappingRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, recordToMappingRow(r))
	}
	return rows, nil
}

// RemoveMapping deletes one mapping row.
func (s *MappingServiceImpl) RemoveMapping(ctx context.Context, mappingID string) error {
	return s.mappingRepo.Delete(ctx, mappingID)
}

// ClearMappings deletes the whole table in sequential batches and
// returns the number of rows removed.
func (s *MappingServiceImpl) ClearMappings(ctx context.Context) (int, error) {
	records, err := s.mappingRepo.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list mappings: %w", err)
	}
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	if err := s.mappingRepo.DeleteMany(ctx, ids); err != nil {
		return 0, err
	}
	return len(ids), nil
}

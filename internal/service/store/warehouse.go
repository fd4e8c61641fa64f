package store

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/stroyteam/supplydesk/internal/model"
	"github.com/stroyteam/supplydesk/platform/logger"
)

// LoadProjectWarehouse refreshes one project's stock cache. On failure the
// entry is cleared so a stale view never survives the error; other projects'
// entries are untouched.
func (s *store) LoadProjectWarehouse(ctx context.Context, projectID int64) error {
	const op = "store.LoadProjectWarehouse"

	items, err := s.gw.WarehouseByProject(ctx, projectID)
	if err != nil {
		logger.Error(ctx, "load project warehouse",
			logger.Int64("project_id", projectID),
			logger.ErrorF(err),
		)
		s.mu.Lock()
		s.warehouse[projectID] = []model.WarehouseItem{}
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.warehouse[projectID] = items
	s.mu.Unlock()
	return nil
}

// UpdateWarehouseItem edits a stock record remotely and patches the cached
// copy under its project key.
func (s *store) UpdateWarehouseItem(ctx context.Context, projectID, itemID int64, params model.UpdateWarehouseItemParams) error {
	const op = "store.UpdateWarehouseItem"

	if err := s.gw.UpdateWarehouseItem(ctx, itemID, params); err != nil {
		logger.Error(ctx, "update warehouse item",
			logger.Int64("item_id", itemID),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	items := s.warehouse[projectID]
	for i := range items {
		if items[i].ID == itemID {
			items[i].Name = params.Name
			items[i].Content = params.Content
			items[i].Quantity = params.Quantity
			items[i].Unit = params.Unit
			items[i].Category = params.Category
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// DeleteWarehouseItem removes a stock record remotely, then drops it from the
// project's cached list.
func (s *store) DeleteWarehouseItem(ctx context.Context, projectID, itemID int64) error {
	const op = "store.DeleteWarehouseItem"

	if err := s.gw.DeleteWarehouseItem(ctx, itemID); err != nil {
		logger.Error(ctx, "delete warehouse item",
			logger.Int64("item_id", itemID),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.warehouse[projectID] = lo.Reject(s.warehouse[projectID], func(it model.WarehouseItem, _ int) bool {
		return it.ID == itemID
	})
	s.mu.Unlock()
	return nil
}

// findWarehouseItem searches every cached project bucket for the item.
func (s *store) findWarehouseItem(itemID int64) (model.WarehouseItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, items := range s.warehouse {
		if it, ok := lo.Find(items, func(it model.WarehouseItem) bool { return it.ID == itemID }); ok {
			return it, true
		}
	}
	return model.WarehouseItem{}, false
}

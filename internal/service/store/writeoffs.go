package store

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/stroyteam/supplydesk/internal/model"
	"github.com/stroyteam/supplydesk/internal/policy"
	"github.com/stroyteam/supplydesk/internal/workflow"
	"github.com/stroyteam/supplydesk/platform/logger"
)

// LoadWriteOffs replaces the write-off collection with the merged view of all
// three status buckets.
func (s *store) LoadWriteOffs(ctx context.Context) error {
	const op = "store.LoadWriteOffs"

	all, err := s.gw.ListAllWriteOffs(ctx)
	if err != nil {
		logger.Error(ctx, "load write-offs", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.writeOffs = all
	s.mu.Unlock()
	return nil
}

// CreateWriteOff validates the request against the cached warehouse before
// any remote call: the item must exist, the quantity must be positive and
// must not exceed the cached stock. The cache check is advisory; the backend
// remains authoritative.
func (s *store) CreateWriteOff(ctx context.Context, params model.CreateWriteOffParams) error {
	const op = "store.CreateWriteOff"

	if params.Quantity <= 0 {
		return fmt.Errorf("%s: quantity %v: %w", op, params.Quantity, model.ErrValidation)
	}

	item, ok := s.findWarehouseItem(params.WarehouseItemID)
	if !ok {
		return fmt.Errorf("%s: warehouse item %d: %w", op, params.WarehouseItemID, model.ErrNotFound)
	}
	if params.Quantity > item.Quantity {
		return fmt.Errorf("%s: quantity %v exceeds stock %v: %w",
			op, params.Quantity, item.Quantity, model.ErrValidation)
	}

	wo, err := s.gw.CreateWriteOff(ctx, params)
	if err != nil {
		logger.Error(ctx, "create write-off",
			logger.Int64("item_id", params.WarehouseItemID),
			logger.Float64("quantity", params.Quantity),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.writeOffs = append(s.writeOffs, *wo)
	s.mu.Unlock()
	return nil
}

// ApproveWriteOff confirms the deduction: the write-off must still be
// pending, the target item must be known (loading its project's warehouse on
// a cache miss), and only then does the remote approval run, followed by the
// stock deduction. A failed deduction after a successful approval surfaces as
// ErrPartialCompletion.
func (s *store) ApproveWriteOff(ctx context.Context, writeOffID int64) error {
	const op = "store.ApproveWriteOff"

	if err := s.checkPolicy(policy.ActionJudgeWriteOff); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	wo, ok := s.findWriteOff(writeOffID)
	if !ok {
		return fmt.Errorf("%s: write-off %d: %w", op, writeOffID, model.ErrNotFound)
	}
	if _, err := workflow.NextWriteOffStatus(wo.Status, model.WriteOffApproved); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	item, ok := s.findWarehouseItem(wo.WarehouseItemID)
	if !ok {
		if err := s.LoadProjectWarehouse(ctx, wo.ProjectID); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if item, ok = s.findWarehouseItem(wo.WarehouseItemID); !ok {
			return fmt.Errorf("%s: warehouse item %d: %w", op, wo.WarehouseItemID, model.ErrNotFound)
		}
	}

	if err := s.gw.ApproveWriteOff(ctx, writeOffID); err != nil {
		logger.Error(ctx, "approve write-off",
			logger.Int64("writeoff_id", writeOffID),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	rest := workflow.RemainingQuantity(item.Quantity, wo.Quantity)
	err := s.gw.UpdateWarehouseItem(ctx, item.ID, model.UpdateWarehouseItemParams{
		Name:     item.Name,
		Content:  item.Content,
		Quantity: rest,
		Unit:     item.Unit,
		Category: item.Category,
	})
	if err != nil {
		logger.Error(ctx, "deduct stock after approval",
			logger.Int64("writeoff_id", writeOffID),
			logger.Int64("item_id", item.ID),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: approved but stock not deducted: %w: %w",
			op, model.ErrPartialCompletion, err)
	}

	s.mu.Lock()
	s.patchWriteOffStatusLocked(writeOffID, model.WriteOffApproved)
	items := s.warehouse[item.ProjectID]
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity = rest
			break
		}
	}
	s.mu.Unlock()

	logger.Info(ctx, "write-off approved",
		logger.Int64("writeoff_id", writeOffID),
		logger.Int64("item_id", item.ID),
		logger.Float64("remaining", rest),
	)
	return nil
}

// RejectWriteOff closes a pending write-off without touching stock. A reason
// is required.
func (s *store) RejectWriteOff(ctx context.Context, writeOffID int64, reason string) error {
	const op = "store.RejectWriteOff"

	if err := s.checkPolicy(policy.ActionJudgeWriteOff); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if reason == "" {
		return fmt.Errorf("%s: empty reason: %w", op, model.ErrValidation)
	}

	wo, ok := s.findWriteOff(writeOffID)
	if !ok {
		return fmt.Errorf("%s: write-off %d: %w", op, writeOffID, model.ErrNotFound)
	}
	if _, err := workflow.NextWriteOffStatus(wo.Status, model.WriteOffRejected); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.gw.RejectWriteOff(ctx, writeOffID, reason); err != nil {
		logger.Error(ctx, "reject write-off",
			logger.Int64("writeoff_id", writeOffID),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.patchWriteOffStatusLocked(writeOffID, model.WriteOffRejected)
	for i := range s.writeOffs {
		if s.writeOffs[i].ID == writeOffID {
			s.writeOffs[i].Reason = reason
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// DeleteWriteOff removes the record in whatever status it is in. Deleting an
// approved write-off does not restore stock.
func (s *store) DeleteWriteOff(ctx context.Context, writeOffID int64) error {
	const op = "store.DeleteWriteOff"

	if err := s.gw.DeleteWriteOff(ctx, writeOffID); err != nil {
		logger.Error(ctx, "delete write-off",
			logger.Int64("writeoff_id", writeOffID),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.writeOffs = lo.Reject(s.writeOffs, func(wo model.WriteOff, _ int) bool {
		return wo.ID == writeOffID
	})
	s.mu.Unlock()
	return nil
}

// WriteOffsForProject filters the cached collection by project.
func (s *store) WriteOffsForProject(projectID int64) []model.WriteOff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Filter(s.writeOffs, func(wo model.WriteOff, _ int) bool {
		return wo.ProjectID == projectID
	})
}

func (s *store) findWriteOff(writeOffID int64) (model.WriteOff, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Find(s.writeOffs, func(wo model.WriteOff) bool { return wo.ID == writeOffID })
}

func (s *store) patchWriteOffStatusLocked(writeOffID int64, status model.WriteOffStatus) {
	for i := range s.writeOffs {
		if s.writeOffs[i].ID == writeOffID {
			s.writeOffs[i].Status = status
			return
		}
	}
}

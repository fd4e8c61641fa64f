package store

import (
	"context"
	"fmt"

	"github.com/stroyteam/supplydesk/internal/model"
	"github.com/stroyteam/supplydesk/internal/policy"
	"github.com/stroyteam/supplydesk/internal/workflow"
	"github.com/stroyteam/supplydesk/platform/logger"
)

const (
	approveComment = "Поставка соответствует требованиям"
	rejectComment  = "Поставка не соответствует требованиям"
)

// ApproveSupply records an approving inspection, expands the supply's
// materials into warehouse items for its project, deletes the supply, then
// refreshes the supplies list and the project's warehouse. A failure after
// the inspection is recorded surfaces as ErrPartialCompletion so the caller
// knows remote state moved.
func (s *store) ApproveSupply(ctx context.Context, supplyID int64, comment string) error {
	const op = "store.ApproveSupply"

	if err := s.checkPolicy(policy.ActionJudgeSupply); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	sup, ok := s.findSupply(supplyID)
	if !ok {
		return fmt.Errorf("%s: supply %d: %w", op, supplyID, model.ErrNotFound)
	}
	if comment == "" {
		comment = approveComment
	}

	err := s.gw.CreateInspection(ctx, model.CreateInspectionParams{
		SupplyID: supplyID,
		Status:   model.VerdictApproved,
		Comment:  comment,
	})
	if err != nil {
		logger.Error(ctx, "record approving inspection",
			logger.Int64("supply_id", supplyID),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	committed := 0
	for _, params := range workflow.ItemsFromSupply(sup) {
		if _, err := s.gw.CreateWarehouseItem(ctx, params); err != nil {
			logger.Error(ctx, "create warehouse item from supply",
				logger.Int64("supply_id", supplyID),
				logger.String("name", params.Name),
				logger.Int("committed", committed),
				logger.ErrorF(err),
			)
			return fmt.Errorf("%s: %d of %d items created: %w: %w",
				op, committed, len(sup.Materials), model.ErrPartialCompletion, err)
		}
		committed++
	}

	if err := s.gw.DeleteSupply(ctx, supplyID); err != nil {
		logger.Error(ctx, "delete approved supply",
			logger.Int64("supply_id", supplyID),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w: %w", op, model.ErrPartialCompletion, err)
	}

	if err := s.LoadSupplies(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.LoadProjectWarehouse(ctx, sup.ProjectID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "supply approved",
		logger.Int64("supply_id", supplyID),
		logger.Int64("project_id", sup.ProjectID),
		logger.Int("items", committed),
	)
	return nil
}

// RejectSupply records a rejecting inspection and deletes the supply. No
// warehouse items are created.
func (s *store) RejectSupply(ctx context.Context, supplyID int64, comment string) error {
	const op = "store.RejectSupply"

	if err := s.checkPolicy(policy.ActionJudgeSupply); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, ok := s.findSupply(supplyID); !ok {
		return fmt.Errorf("%s: supply %d: %w", op, supplyID, model.ErrNotFound)
	}
	if comment == "" {
		comment = rejectComment
	}

	err := s.gw.CreateInspection(ctx, model.CreateInspectionParams{
		SupplyID: supplyID,
		Status:   model.VerdictRejected,
		Comment:  comment,
	})
	if err != nil {
		logger.Error(ctx, "record rejecting inspection",
			logger.Int64("supply_id", supplyID),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.gw.DeleteSupply(ctx, supplyID); err != nil {
		logger.Error(ctx, "delete rejected supply",
			logger.Int64("supply_id", supplyID),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w: %w", op, model.ErrPartialCompletion, err)
	}

	if err := s.LoadSupplies(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "supply rejected", logger.Int64("supply_id", supplyID))
	return nil
}

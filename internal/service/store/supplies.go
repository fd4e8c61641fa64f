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

// LoadSupplies replaces the supplies collection and re-derives the inspection
// queue from it atomically. A failed fetch leaves both untouched.
func (s *store) LoadSupplies(ctx context.Context) error {
	const op = "store.LoadSupplies"

	supplies, err := s.gw.ListSupplies(ctx)
	if err != nil {
		logger.Error(ctx, "load supplies", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.supplies = supplies
	s.inspectionQueue = workflow.DeriveInspectionQueue(supplies)
	s.mu.Unlock()
	return nil
}

func (s *store) CreateSupply(ctx context.Context, params model.CreateSupplyParams) error {
	const op = "store.CreateSupply"

	if err := s.checkPolicy(policy.ActionCreateSupply); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.gw.CreateSupply(ctx, params); err != nil {
		logger.Error(ctx, "create supply",
			logger.String("supply_name", params.SupplyName),
			logger.Int64("project_id", params.ProjectID),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.LoadSupplies(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ChangeSupplyStatus validates the target against the closed status set
// before touching the network, then patches the cached supply in place and
// re-derives the inspection queue.
func (s *store) ChangeSupplyStatus(ctx context.Context, supplyID int64, status model.SupplyStatus) error {
	const op = "store.ChangeSupplyStatus"

	current := s.supplyStatus(supplyID)
	if err := workflow.ValidateTransition(current, status); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.gw.UpdateSupplyStatus(ctx, supplyID, status); err != nil {
		logger.Error(ctx, "update supply status",
			logger.Int64("supply_id", supplyID),
			logger.String("status", string(status)),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	for i := range s.supplies {
		if s.supplies[i].ID == supplyID {
			s.supplies[i].Status = status
			break
		}
	}
	s.inspectionQueue = workflow.DeriveInspectionQueue(s.supplies)
	s.mu.Unlock()
	return nil
}

// UploadDocuments attaches files to a supply. The stored paths returned by
// the backend are appended to the cached supply, which can move it into the
// inspection queue.
func (s *store) UploadDocuments(ctx context.Context, supplyID int64, files []model.DocumentFile) error {
	const op = "store.UploadDocuments"

	if len(files) == 0 {
		return fmt.Errorf("%s: no files: %w", op, model.ErrValidation)
	}

	stored, err := s.gw.UploadDocuments(ctx, supplyID, files)
	if err != nil {
		logger.Error(ctx, "upload documents",
			logger.Int64("supply_id", supplyID),
			logger.Int("files", len(files)),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	for i := range s.supplies {
		if s.supplies[i].ID == supplyID {
			s.supplies[i].Documents = append(s.supplies[i].Documents, stored...)
			break
		}
	}
	s.inspectionQueue = workflow.DeriveInspectionQueue(s.supplies)
	s.mu.Unlock()
	return nil
}

// AvailableSupplies filters the shared supplies list down to the projects the
// current user may see.
func (s *store) AvailableSupplies() []model.Supply {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visibleSuppliesLocked(s.supplies)
}

// InspectionQueue serves the derived queue through the same membership filter:
// a non-admin never sees inspection entries for projects outside their own.
func (s *store) InspectionQueue() []model.Supply {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visibleSuppliesLocked(s.inspectionQueue)
}

// visibleSuppliesLocked is the single membership filter every supply list
// exposure goes through. Callers hold at least a read lock.
func (s *store) visibleSuppliesLocked(list []model.Supply) []model.Supply {
	if s.session.Role() == model.RoleAdmin {
		return snapshot(list)
	}

	visible := lo.SliceToMap(s.userProjects, func(p model.Project) (int64, struct{}) {
		return p.ID, struct{}{}
	})
	return lo.Filter(list, func(sup model.Supply, _ int) bool {
		_, ok := visible[sup.ProjectID]
		return ok
	})
}

func (s *store) supplyStatus(supplyID int64) model.SupplyStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sup, ok := lo.Find(s.supplies, func(sup model.Supply) bool { return sup.ID == supplyID }); ok {
		return sup.Status
	}
	return model.StatusCreated
}

func (s *store) findSupply(supplyID int64) (model.Supply, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Find(s.supplies, func(sup model.Supply) bool { return sup.ID == supplyID })
}

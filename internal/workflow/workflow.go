// Package workflow holds the pure lifecycle rules shared by the domain store:
// the supply status machine, the inspection-eligibility derivation and the
// write-off state machine. Nothing here talks to the network or mutates
// store state.
package workflow

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/stroyteam/supplydesk/internal/model"
)

// DefaultUnit is stamped on warehouse items created from materials that carry
// no unit of their own.
const DefaultUnit = "шт."

// Inspectable reports whether a supply belongs in the inspection queue:
// it was delivered, or it already carries at least one document.
func Inspectable(s model.Supply) bool {
	return s.Status.Delivered() || len(s.Documents) > 0
}

// DeriveInspectionQueue recomputes the inspection queue from scratch. It is a
// pure function of the supplies list: idempotent and duplicate-free, so it is
// safe to call after every mutation of the source collection.
func DeriveInspectionQueue(supplies []model.Supply) []model.Supply {
	return lo.Filter(supplies, func(s model.Supply, _ int) bool {
		return Inspectable(s)
	})
}

// ValidateTransition guards client-initiated status changes. The backend
// accepts any ordering of the delivery statuses, so every known->known pair
// passes; targets outside the closed status set are rejected before any
// remote call.
func ValidateTransition(_, to model.SupplyStatus) error {
	if !to.Known() {
		return errors.Join(model.ErrValidation,
			fmt.Errorf("%w: %q", model.ErrUnknownStatus, to))
	}
	return nil
}

// NextWriteOffStatus enforces the one-way write-off machine:
// pending -> approved | rejected, both terminal.
func NextWriteOffStatus(current, target model.WriteOffStatus) (model.WriteOffStatus, error) {
	if target != model.WriteOffApproved && target != model.WriteOffRejected {
		return "", fmt.Errorf("%w: write-off target %q", model.ErrUnknownStatus, target)
	}
	if current != model.WriteOffPending {
		return "", fmt.Errorf("write-off already %s: %w", current, model.ErrConflict)
	}
	return target, nil
}

// RemainingQuantity floors stock deductions at zero.
func RemainingQuantity(quantity, deduction float64) float64 {
	rest := quantity - deduction
	if rest < 0 {
		return 0
	}
	return rest
}

// ItemsFromSupply expands an approved supply into the warehouse items that
// carry its provenance: one per material, each stamped with the supply id.
func ItemsFromSupply(s model.Supply) []model.CreateWarehouseItemParams {
	items := make([]model.CreateWarehouseItemParams, 0, len(s.Materials))
	for _, m := range s.Materials {
		unit := m.Unit
		if unit == "" {
			unit = DefaultUnit
		}
		items = append(items, model.CreateWarehouseItemParams{
			ProjectID: s.ProjectID,
			Name:      m.Name,
			Content:   m.Content,
			Quantity:  m.Quantity,
			Unit:      unit,
			Category:  m.Category,
			SupplyID:  s.ID,
		})
	}
	return items
}

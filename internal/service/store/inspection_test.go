package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stroyteam/supplydesk/internal/model"
)

func deliveredSupply() model.Supply {
	return model.Supply{
		ID:        11,
		ProjectID: 3,
		Status:    model.StatusDelivered,
		Materials: []model.Material{
			{Name: "Цемент", Category: "вяжущие", Quantity: 40, Unit: "мешок"},
			{Name: "Песок", Category: "инертные", Quantity: 2},
		},
	}
}

func TestApproveSupply(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	loadSupply := func(t *testing.T, st *store, d deps) {
		t.Helper()
		d.gateway.On("ListSupplies", mock.Anything).
			Return([]model.Supply{deliveredSupply()}, nil).Once()
		require.NoError(t, st.LoadSupplies(ctx))
	}

	t.Run("full sequence in order", func(t *testing.T) {
		t.Parallel()

		st, d := newTestStore(t, model.RoleInspector)
		loadSupply(t, st, d)

		d.gateway.On("CreateInspection", mock.Anything, mock.MatchedBy(func(p model.CreateInspectionParams) bool {
			return p.SupplyID == 11 && p.Status == model.VerdictApproved && p.Comment != ""
		})).Return(nil).Once()
		d.gateway.On("CreateWarehouseItem", mock.Anything, mock.MatchedBy(func(p model.CreateWarehouseItemParams) bool {
			return p.ProjectID == 3 && p.SupplyID == 11
		})).Return(&model.WarehouseItem{ID: 1}, nil).Twice()
		d.gateway.On("DeleteSupply", mock.Anything, int64(11)).Return(nil).Once()
		d.gateway.On("ListSupplies", mock.Anything).Return([]model.Supply{}, nil).Once()
		d.gateway.On("WarehouseByProject", mock.Anything, int64(3)).
			Return([]model.WarehouseItem{{ID: 1, ProjectID: 3, SupplyID: 11}}, nil).Once()

		require.NoError(t, st.ApproveSupply(ctx, 11, ""))

		// The inspection verdict always lands before stock creation, which in
		// turn precedes deletion of the source supply.
		var sequence []string
		for _, call := range d.gateway.Calls {
			sequence = append(sequence, call.Method)
		}
		assert.Equal(t, []string{
			"ListSupplies",
			"CreateInspection",
			"CreateWarehouseItem",
			"CreateWarehouseItem",
			"DeleteSupply",
			"ListSupplies",
			"WarehouseByProject",
		}, sequence)

		assert.Empty(t, st.Supplies())
		assert.Len(t, st.Warehouse(3), 1)
	})

	t.Run("item creation failure is a partial completion", func(t *testing.T) {
		t.Parallel()

		st, d := newTestStore(t, model.RoleInspector)
		loadSupply(t, st, d)

		d.gateway.On("CreateInspection", mock.Anything, mock.Anything).Return(nil).Once()
		d.gateway.On("CreateWarehouseItem", mock.Anything, mock.Anything).
			Return(&model.WarehouseItem{ID: 1}, nil).Once()
		d.gateway.On("CreateWarehouseItem", mock.Anything, mock.Anything).
			Return(nil, errors.New("backend down")).Once()

		err := st.ApproveSupply(ctx, 11, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrPartialCompletion)

		d.gateway.AssertNotCalled(t, "DeleteSupply", mock.Anything, mock.Anything)
	})

	t.Run("viewer denied before any remote call", func(t *testing.T) {
		t.Parallel()

		st, d := newTestStore(t, model.RoleViewer)

		err := st.ApproveSupply(ctx, 11, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)

		d.gateway.AssertNotCalled(t, "CreateInspection", mock.Anything, mock.Anything)
	})

	t.Run("unknown supply", func(t *testing.T) {
		t.Parallel()

		st, d := newTestStore(t, model.RoleInspector)

		err := st.ApproveSupply(ctx, 404, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)

		d.gateway.AssertNotCalled(t, "CreateInspection", mock.Anything, mock.Anything)
	})
}

func TestRejectSupply(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	st, d := newTestStore(t, model.RoleInspector)
	d.gateway.On("ListSupplies", mock.Anything).
		Return([]model.Supply{deliveredSupply()}, nil).Once()
	require.NoError(t, st.LoadSupplies(ctx))

	d.gateway.On("CreateInspection", mock.Anything, mock.MatchedBy(func(p model.CreateInspectionParams) bool {
		return p.SupplyID == 11 && p.Status == model.VerdictRejected && p.Comment == "Брак"
	})).Return(nil).Once()
	d.gateway.On("DeleteSupply", mock.Anything, int64(11)).Return(nil).Once()
	d.gateway.On("ListSupplies", mock.Anything).Return([]model.Supply{}, nil).Once()

	require.NoError(t, st.RejectSupply(ctx, 11, "Брак"))

	// Rejection never creates stock.
	d.gateway.AssertNotCalled(t, "CreateWarehouseItem", mock.Anything, mock.Anything)
	assert.Empty(t, st.Supplies())
}

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stroyteam/supplydesk/internal/model"
	"github.com/stroyteam/supplydesk/internal/service/mocks"
)

type deps struct {
	gateway *mocks.MockGateway
	session *mocks.MockSession
}

func newTestStore(t *testing.T, role model.Role) (*store, deps) {
	t.Helper()

	d := deps{
		gateway: mocks.NewMockGateway(t),
		session: mocks.NewMockSession(t),
	}
	d.session.On("Role").Return(role).Maybe()

	return NewStore(d.gateway, d.session), d
}

func loadMemberships(t *testing.T, st *store, d deps, projectIDs ...int64) {
	t.Helper()

	projects := make([]model.Project, 0, len(projectIDs))
	for _, id := range projectIDs {
		projects = append(projects, model.Project{ID: id})
	}
	d.gateway.On("MyProjects", mock.Anything).Return(projects, nil).Once()
	require.NoError(t, st.LoadMyProjects(context.Background()))
}

func TestLoadSupplies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	supplies := []model.Supply{
		{ID: 1, ProjectID: 1, Status: model.StatusDelivered},
		{ID: 2, ProjectID: 1, Status: model.StatusCreated},
		{ID: 3, ProjectID: 2, Status: model.StatusInTransit, Documents: []string{"uploads/ttn.pdf"}},
	}

	t.Run("derives the inspection queue atomically", func(t *testing.T) {
		t.Parallel()

		st, d := newTestStore(t, model.RoleManager)
		loadMemberships(t, st, d, 1, 2)
		d.gateway.On("ListSupplies", mock.Anything).Return(supplies, nil).Once()

		require.NoError(t, st.LoadSupplies(ctx))

		assert.Len(t, st.Supplies(), 3)
		queue := st.InspectionQueue()
		require.Len(t, queue, 2)
		assert.Equal(t, int64(1), queue[0].ID)
		assert.Equal(t, int64(3), queue[1].ID)
	})

	t.Run("failed refresh keeps the previous state", func(t *testing.T) {
		t.Parallel()

		st, d := newTestStore(t, model.RoleManager)
		loadMemberships(t, st, d, 1, 2)
		d.gateway.On("ListSupplies", mock.Anything).Return(supplies, nil).Once()
		require.NoError(t, st.LoadSupplies(ctx))

		d.gateway.On("ListSupplies", mock.Anything).Return(nil, errors.New("backend down")).Once()
		require.Error(t, st.LoadSupplies(ctx))

		assert.Len(t, st.Supplies(), 3, "stale data beats no data for a shared list")
		assert.Len(t, st.InspectionQueue(), 2)
	})
}

func TestMembershipFiltering(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	mixed := []model.Supply{
		{ID: 10, ProjectID: 1, Status: model.StatusDelivered},
		{ID: 20, ProjectID: 2, Status: model.StatusDelivered},
		{ID: 30, ProjectID: 3, Status: model.StatusCreated},
		{ID: 31, ProjectID: 3, Status: model.StatusInTransit, Documents: []string{"uploads/ttn.pdf"}},
	}

	t.Run("manager sees only membership projects", func(t *testing.T) {
		t.Parallel()

		st, d := newTestStore(t, model.RoleManager)
		loadMemberships(t, st, d, 1, 3)
		d.gateway.On("ListSupplies", mock.Anything).Return(mixed, nil).Once()
		require.NoError(t, st.LoadSupplies(ctx))

		available := st.AvailableSupplies()
		require.Len(t, available, 3)
		for _, sup := range available {
			assert.NotEqual(t, int64(2), sup.ProjectID)
		}

		// The derived inspection queue goes through the same filter: the
		// delivered supply of the foreign project never surfaces.
		queue := st.InspectionQueue()
		require.Len(t, queue, 2)
		assert.Equal(t, int64(10), queue[0].ID)
		assert.Equal(t, int64(31), queue[1].ID)
	})

	t.Run("admin sees every project", func(t *testing.T) {
		t.Parallel()

		st, d := newTestStore(t, model.RoleAdmin)
		d.gateway.On("ListSupplies", mock.Anything).Return(mixed, nil).Once()
		require.NoError(t, st.LoadSupplies(ctx))

		assert.Len(t, st.AvailableSupplies(), 4)
		assert.Len(t, st.InspectionQueue(), 3)
	})
}

func TestSnapshotsAreIsolated(t *testing.T) {
	t.Parallel()

	st, d := newTestStore(t, model.RoleManager)
	d.gateway.On("ListSupplies", mock.Anything).Return([]model.Supply{
		{ID: 1, Status: model.StatusCreated},
	}, nil).Once()
	require.NoError(t, st.LoadSupplies(context.Background()))

	got := st.Supplies()
	got[0].Status = model.StatusCancelled

	assert.Equal(t, model.StatusCreated, st.Supplies()[0].Status,
		"callers mutate copies, never the store's own slices")
}

func TestCreateSupplyPolicy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("viewer denied before any remote call", func(t *testing.T) {
		t.Parallel()

		st, d := newTestStore(t, model.RoleViewer)

		err := st.CreateSupply(ctx, model.CreateSupplyParams{SupplyName: "Бетон"})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)

		d.gateway.AssertNotCalled(t, "CreateSupply", mock.Anything, mock.Anything)
	})

	t.Run("manager creates and refreshes", func(t *testing.T) {
		t.Parallel()

		st, d := newTestStore(t, model.RoleManager)
		d.gateway.On("CreateSupply", mock.Anything, mock.Anything).
			Return(&model.Supply{ID: 9}, nil).Once()
		d.gateway.On("ListSupplies", mock.Anything).
			Return([]model.Supply{{ID: 9, Status: model.StatusCreated}}, nil).Once()

		require.NoError(t, st.CreateSupply(ctx, model.CreateSupplyParams{SupplyName: "Бетон"}))
		assert.Len(t, st.Supplies(), 1)
	})
}

func TestChangeSupplyStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("unknown target rejected before the gateway", func(t *testing.T) {
		t.Parallel()

		st, d := newTestStore(t, model.RoleManager)

		err := st.ChangeSupplyStatus(ctx, 1, model.SupplyStatus("утеряна"))
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)

		d.gateway.AssertNotCalled(t, "UpdateSupplyStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("patch re-derives the inspection queue", func(t *testing.T) {
		t.Parallel()

		st, d := newTestStore(t, model.RoleManager)
		loadMemberships(t, st, d, 1)
		d.gateway.On("ListSupplies", mock.Anything).Return([]model.Supply{
			{ID: 1, ProjectID: 1, Status: model.StatusInTransit},
		}, nil).Once()
		require.NoError(t, st.LoadSupplies(ctx))
		require.Empty(t, st.InspectionQueue())

		d.gateway.On("UpdateSupplyStatus", mock.Anything, int64(1), model.StatusDelivered).
			Return(nil).Once()

		require.NoError(t, st.ChangeSupplyStatus(ctx, 1, model.StatusDelivered))

		assert.Equal(t, model.StatusDelivered, st.Supplies()[0].Status)
		assert.Len(t, st.InspectionQueue(), 1, "delivered supply enters the queue")
	})
}

func TestUploadDocumentsMovesSupplyIntoQueue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	st, d := newTestStore(t, model.RoleManager)
	loadMemberships(t, st, d, 1)
	d.gateway.On("ListSupplies", mock.Anything).Return([]model.Supply{
		{ID: 5, ProjectID: 1, Status: model.StatusInTransit},
	}, nil).Once()
	require.NoError(t, st.LoadSupplies(ctx))
	require.Empty(t, st.InspectionQueue())

	files := []model.DocumentFile{{Name: "act.pdf", Data: []byte("pdf")}}
	d.gateway.On("UploadDocuments", mock.Anything, int64(5), files).
		Return([]string{"uploads/act.pdf"}, nil).Once()

	require.NoError(t, st.UploadDocuments(ctx, 5, files))

	assert.Equal(t, []string{"uploads/act.pdf"}, st.Supplies()[0].Documents)
	assert.Len(t, st.InspectionQueue(), 1, "a documented supply is inspectable")

	t.Run("empty upload is a validation error", func(t *testing.T) {
		err := st.UploadDocuments(ctx, 5, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
	})
}

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stroyteam/supplydesk/internal/model"
)

func loadUsers(t *testing.T, st *store, d deps, users []model.User) {
	t.Helper()
	d.gateway.On("ListUsers", mock.Anything).Return(users, nil).Once()
	require.NoError(t, st.LoadAllUsers(context.Background()))
}

func TestChangeUserRole(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("patches the roster locally", func(t *testing.T) {
		t.Parallel()

		st, d := newTestStore(t, model.RoleAdmin)
		loadUsers(t, st, d, []model.User{
			{ID: 5, Email: "pm@stroy.ru", Role: model.RoleUser},
			{ID: 6, Email: "qa@stroy.ru", Role: model.RoleInspector},
		})

		d.gateway.On("UpdateUserRole", mock.Anything, int64(5), model.RoleManager).
			Return(nil).Once()

		require.NoError(t, st.ChangeUserRole(ctx, 5, model.RoleManager))

		users := st.AdminUsers()
		assert.Equal(t, model.RoleManager, users[0].Role)
		assert.Equal(t, model.RoleInspector, users[1].Role, "other entries untouched")

		// No roster re-fetch for a point change.
		d.gateway.AssertNumberOfCalls(t, "ListUsers", 1)
	})

	t.Run("non-admin denied before the gateway", func(t *testing.T) {
		t.Parallel()

		st, d := newTestStore(t, model.RoleManager)

		err := st.ChangeUserRole(ctx, 5, model.RoleAdmin)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)

		d.gateway.AssertNotCalled(t, "UpdateUserRole", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	st, d := newTestStore(t, model.RoleAdmin)
	loadUsers(t, st, d, []model.User{
		{ID: 5, Email: "pm@stroy.ru"},
		{ID: 6, Email: "qa@stroy.ru"},
	})

	d.gateway.On("DeleteUser", mock.Anything, int64(5)).Return(nil).Once()

	require.NoError(t, st.DeleteUser(ctx, 5))

	users := st.AdminUsers()
	require.Len(t, users, 1)
	assert.Equal(t, int64(6), users[0].ID)
}

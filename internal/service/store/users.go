package store

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/stroyteam/supplydesk/internal/model"
	"github.com/stroyteam/supplydesk/internal/policy"
	"github.com/stroyteam/supplydesk/platform/logger"
)

// LoadAllUsers replaces the admin user roster. Admin only.
func (s *store) LoadAllUsers(ctx context.Context) error {
	const op = "store.LoadAllUsers"

	if err := s.checkPolicy(policy.ActionAdministerUsers); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	users, err := s.gw.ListUsers(ctx)
	if err != nil {
		logger.Error(ctx, "load users", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.adminUsers = users
	s.mu.Unlock()
	return nil
}

// ChangeUserRole updates the role remotely, then patches the cached roster
// entry in place instead of re-fetching the whole list.
func (s *store) ChangeUserRole(ctx context.Context, userID int64, role model.Role) error {
	const op = "store.ChangeUserRole"

	if err := s.checkPolicy(policy.ActionAdministerUsers); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.gw.UpdateUserRole(ctx, userID, role); err != nil {
		logger.Error(ctx, "update user role",
			logger.Int64("user_id", userID),
			logger.String("role", string(role)),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	for i := range s.adminUsers {
		if s.adminUsers[i].ID == userID {
			s.adminUsers[i].Role = role
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// DeleteUser removes the user remotely, then drops them from the cached
// roster locally.
func (s *store) DeleteUser(ctx context.Context, userID int64) error {
	const op = "store.DeleteUser"

	if err := s.checkPolicy(policy.ActionAdministerUsers); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.gw.DeleteUser(ctx, userID); err != nil {
		logger.Error(ctx, "delete user", logger.Int64("user_id", userID), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.adminUsers = lo.Reject(s.adminUsers, func(u model.User, _ int) bool {
		return u.ID == userID
	})
	s.mu.Unlock()
	return nil
}

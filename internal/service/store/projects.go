package store

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/stroyteam/supplydesk/internal/model"
	"github.com/stroyteam/supplydesk/internal/policy"
	"github.com/stroyteam/supplydesk/platform/logger"
)

// LoadMyProjects replaces the caller's project list. A failed fetch leaves
// the previous list untouched.
func (s *store) LoadMyProjects(ctx context.Context) error {
	const op = "store.LoadMyProjects"

	projects, err := s.gw.MyProjects(ctx)
	if err != nil {
		logger.Error(ctx, "load my projects", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.userProjects = projects
	s.mu.Unlock()
	return nil
}

// LoadAllProjects replaces the global project list. Admin only.
func (s *store) LoadAllProjects(ctx context.Context) error {
	const op = "store.LoadAllProjects"

	if err := s.checkPolicy(policy.ActionViewAllProjects); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	projects, err := s.gw.ListProjects(ctx)
	if err != nil {
		logger.Error(ctx, "load all projects", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.projects = projects
	s.mu.Unlock()
	return nil
}

// LoadProjectUsers refreshes one project's membership cache. On failure the
// entry is cleared rather than left stale; other projects' entries are never
// touched.
func (s *store) LoadProjectUsers(ctx context.Context, projectID int64) error {
	const op = "store.LoadProjectUsers"

	users, err := s.gw.ProjectUsers(ctx, projectID)
	if err != nil {
		logger.Error(ctx, "load project users",
			logger.Int64("project_id", projectID),
			logger.ErrorF(err),
		)
		s.mu.Lock()
		s.projectUsers[projectID] = []model.Membership{}
		s.mu.Unlock()
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.projectUsers[projectID] = users
	s.mu.Unlock()
	return nil
}

func (s *store) CreateProject(ctx context.Context, params model.CreateProjectParams) error {
	const op = "store.CreateProject"

	if err := s.checkPolicy(policy.ActionCreateProject); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.gw.CreateProject(ctx, params); err != nil {
		logger.Error(ctx, "create project", logger.String("name", params.Name), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.LoadAllProjects(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.LoadMyProjects(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *store) DeleteProject(ctx context.Context, projectID int64) error {
	const op = "store.DeleteProject"

	if err := s.checkPolicy(policy.ActionDeleteProject); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.gw.DeleteProject(ctx, projectID); err != nil {
		logger.Error(ctx, "delete project", logger.Int64("project_id", projectID), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.session.Role() == model.RoleAdmin {
		if err := s.LoadAllProjects(ctx); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	if err := s.LoadMyProjects(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *store) AddUserToProject(ctx context.Context, projectID, userID int64, role model.Role) error {
	const op = "store.AddUserToProject"

	if err := s.checkPolicy(policy.ActionAssignProjectUser); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err := s.gw.CreateMembership(ctx, model.CreateMembershipParams{
		UserID:    userID,
		ProjectID: projectID,
		Role:      role,
	})
	if err != nil {
		logger.Error(ctx, "add user to project",
			logger.Int64("project_id", projectID),
			logger.Int64("user_id", userID),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	return s.LoadProjectUsers(ctx, projectID)
}

func (s *store) RemoveUserFromProject(ctx context.Context, projectID, userID int64) error {
	const op = "store.RemoveUserFromProject"

	if err := s.checkPolicy(policy.ActionAssignProjectUser); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.gw.DeleteMembership(ctx, userID, projectID); err != nil {
		logger.Error(ctx, "remove user from project",
			logger.Int64("project_id", projectID),
			logger.Int64("user_id", userID),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	return s.LoadProjectUsers(ctx, projectID)
}

// AvailableProjects is the project list the current role may see: admins see
// the global list (falling back to their own while it is still empty),
// everyone else only their memberships.
func (s *store) AvailableProjects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session.Role() == model.RoleAdmin && len(s.projects) > 0 {
		return snapshot(s.projects)
	}
	return snapshot(s.userProjects)
}

// HasAccessToProject is the client-side visibility check: admins see every
// project, everyone else only those a membership exists for.
func (s *store) HasAccessToProject(projectID int64) bool {
	if s.session.Role() == model.RoleAdmin {
		return true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.SomeBy(s.userProjects, func(p model.Project) bool {
		return p.ID == projectID
	})
}

func (s *store) ProjectName(projectID int64) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := lo.Find(s.userProjects, func(p model.Project) bool { return p.ID == projectID }); ok {
		return p.Name
	}
	if p, ok := lo.Find(s.projects, func(p model.Project) bool { return p.ID == projectID }); ok {
		return p.Name
	}
	return fmt.Sprintf("Проект %d", projectID)
}

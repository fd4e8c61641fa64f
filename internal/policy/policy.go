package policy

import (
	"fmt"

	"github.com/stroyteam/supplydesk/internal/model"
)

type Action string

const (
	ActionCreateProject     Action = "project.create"
	ActionDeleteProject     Action = "project.delete"
	ActionAssignProjectUser Action = "project.assign_user"
	ActionAdministerUsers   Action = "users.administer"
	ActionViewAllProjects   Action = "projects.view_all"
	ActionCreateSupply      Action = "supply.create"
	ActionJudgeSupply       Action = "supply.judge"
	ActionJudgeWriteOff     Action = "writeoff.judge"
)

// Allowed is the pure (role, action) -> permitted mapping consulted before
// every mutating store operation.
func Allowed(role model.Role, action Action) bool {
	switch action {
	case ActionCreateProject,
		ActionDeleteProject,
		ActionAssignProjectUser,
		ActionAdministerUsers,
		ActionViewAllProjects:
		return role == model.RoleAdmin
	case ActionCreateSupply:
		return role == model.RoleAdmin || role == model.RoleManager
	case ActionJudgeSupply, ActionJudgeWriteOff:
		return role == model.RoleAdmin ||
			role == model.RoleManager ||
			role == model.RoleInspector
	default:
		return false
	}
}

func Check(role model.Role, action Action) error {
	if !Allowed(role, action) {
		return fmt.Errorf("%s denied for role %q: %w", action, role, model.ErrForbidden)
	}
	return nil
}

// Package store is the single source of truth for all fetched and derived
// domain collections. Every mutation goes through the remote gateway first;
// local state changes only after the remote call succeeds, either by a
// targeted re-fetch or by a local patch, and the inspection queue is
// re-derived after every supply mutation.
package store

import (
	"context"

	"sync"

	"github.com/stroyteam/supplydesk/internal/model"
	"github.com/stroyteam/supplydesk/internal/policy"
)

// Gateway is the remote API surface the store depends on.
type Gateway interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	MyProjects(ctx context.Context) ([]model.Project, error)
	CreateProject(ctx context.Context, params model.CreateProjectParams) (*model.Project, error)
	DeleteProject(ctx context.Context, id int64) error

	ProjectUsers(ctx context.Context, projectID int64) ([]model.Membership, error)
	CreateMembership(ctx context.Context, params model.CreateMembershipParams) error
	DeleteMembership(ctx context.Context, userID, projectID int64) error

	ListSupplies(ctx context.Context) ([]model.Supply, error)
	CreateSupply(ctx context.Context, params model.CreateSupplyParams) (*model.Supply, error)
	UpdateSupplyStatus(ctx context.Context, id int64, status model.SupplyStatus) error
	DeleteSupply(ctx context.Context, id int64) error

	UploadDocuments(ctx context.Context, supplyID int64, files []model.DocumentFile) ([]string, error)

	CreateInspection(ctx context.Context, params model.CreateInspectionParams) error

	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUserRole(ctx context.Context, id int64, role model.Role) error
	DeleteUser(ctx context.Context, id int64) error

	WarehouseByProject(ctx context.Context, projectID int64) ([]model.WarehouseItem, error)
	CreateWarehouseItem(ctx context.Context, params model.CreateWarehouseItemParams) (*model.WarehouseItem, error)
	UpdateWarehouseItem(ctx context.Context, id int64, params model.UpdateWarehouseItemParams) error
	DeleteWarehouseItem(ctx context.Context, id int64) error

	CreateWriteOff(ctx context.Context, params model.CreateWriteOffParams) (*model.WriteOff, error)
	DeleteWriteOff(ctx context.Context, id int64) error
	ListAllWriteOffs(ctx context.Context) ([]model.WriteOff, error)
	ApproveWriteOff(ctx context.Context, id int64) error
	RejectWriteOff(ctx context.Context, id int64, reason string) error
}

// Session exposes who is acting; the store consults it for every policy check.
type Session interface {
	CurrentUser() *model.User
	Role() model.Role
}

type store struct {
	gw      Gateway
	session Session

	mu              sync.RWMutex
	userProjects    []model.Project
	projects        []model.Project
	supplies        []model.Supply
	inspectionQueue []model.Supply
	adminUsers      []model.User
	warehouse       map[int64][]model.WarehouseItem
	projectUsers    map[int64][]model.Membership
	writeOffs       []model.WriteOff
}

func NewStore(gw Gateway, session Session) *store {
	return &store{
		gw:           gw,
		session:      session,
		warehouse:    map[int64][]model.WarehouseItem{},
		projectUsers: map[int64][]model.Membership{},
	}
}

func snapshot[T any](s []T) []T {
	return append([]T(nil), s...)
}

// Read-only snapshots. Views never see the store's own slices.

func (s *store) UserProjects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.userProjects)
}

func (s *store) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.projects)
}

func (s *store) Supplies() []model.Supply {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.supplies)
}

func (s *store) AdminUsers() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.adminUsers)
}

func (s *store) Warehouse(projectID int64) []model.WarehouseItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.warehouse[projectID])
}

func (s *store) ProjectUsers(projectID int64) []model.Membership {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.projectUsers[projectID])
}

func (s *store) WriteOffs() []model.WriteOff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.writeOffs)
}

func (s *store) checkPolicy(action policy.Action) error {
	return policy.Check(s.session.Role(), action)
}

// InitialLoad mirrors the dashboard boot sequence: the caller's projects
// first, the admin-only collections when the role warrants them, then the
// shared supplies list.
func (s *store) InitialLoad(ctx context.Context) error {
	if err := s.LoadMyProjects(ctx); err != nil {
		return err
	}

	if s.session.Role() == model.RoleAdmin {
		if err := s.LoadAllProjects(ctx); err != nil {
			return err
		}
		if err := s.LoadAllUsers(ctx); err != nil {
			return err
		}
	}

	return s.LoadSupplies(ctx)
}

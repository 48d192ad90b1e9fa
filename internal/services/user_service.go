package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	pgrepo "github.com/vijaydevops-git/AugConsultant-sub000/internal/repositories/postgres"
	"github.com/vijaydevops-git/AugConsultant-sub000/internal/utils"
)

type CreateUserInput struct {
	Email    string
	FullName string
	Password string
	Role     models.UserRole
}

type UserService interface {
	Create(ctx context.Context, actor Actor, in CreateUserInput) (*models.User, error)
	Get(ctx context.Context, actor Actor, id string) (*models.User, error)
	List(ctx context.Context, actor Actor) ([]models.User, error)
	UpdateRole(ctx context.Context, actor Actor, id string, role models.UserRole) (*models.User, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type userService struct {
	users pgrepo.UserRepository
}

func NewUserService(users pgrepo.UserRepository) UserService {
	return &userService{users: users}
}

func validRole(r models.UserRole) bool {
	return r == models.RoleAdmin || r == models.RoleRecruiter
}

func (s *userService) Create(ctx context.Context, actor Actor, in CreateUserInput) (*models.User, error) {
	const op = "UserService.Create"

	if !actor.IsAdmin() {
		return nil, utils.E(utils.CodeForbidden, op, "only admins can create users", nil)
	}
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Email == "" || in.FullName == "" || in.Password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "email, full_name and password are required", nil)
	}
	if !validRole(in.Role) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "role must be admin or recruiter", nil)
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, utils.E(utils.CodeConflict, op, "email already in use", nil)
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to check email", err)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}
	return u, nil
}

func (s *userService) Get(ctx context.Context, actor Actor, id string) (*models.User, error) {
	const op = "UserService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if !actor.IsAdmin() && actor.UserID != id {
		return nil, utils.E(utils.CodeForbidden, op, "forbidden", nil)
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get user", err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, actor Actor) ([]models.User, error) {
	const op = "UserService.List"

	if !actor.IsAdmin() {
		return nil, utils.E(utils.CodeForbidden, op, "only admins can list users", nil)
	}
	out, err := s.users.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list users", err)
	}
	return out, nil
}

func (s *userService) UpdateRole(ctx context.Context, actor Actor, id string, role models.UserRole) (*models.User, error) {
	const op = "UserService.UpdateRole"

	if !actor.IsAdmin() {
		return nil, utils.E(utils.CodeForbidden, op, "only admins can change roles", nil)
	}
	if !validRole(role) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "role must be admin or recruiter", nil)
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get user", err)
	}
	u.Role = role
	u.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, u); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update user", err)
	}
	return u, nil
}

func (s *userService) Delete(ctx context.Context, actor Actor, id string) error {
	const op = "UserService.Delete"

	if !actor.IsAdmin() {
		return utils.E(utils.CodeForbidden, op, "only admins can delete users", nil)
	}
	if actor.UserID == id {
		return utils.E(utils.CodeInvalidArgument, op, "cannot delete yourself", nil)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete user", err)
	}
	return nil
}

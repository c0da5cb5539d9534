package service

import (
	"fmt"

	"syscall-optimizer-backend/internal/models"
)

// UserService covers the admin-side user management operations.
type UserService struct {
	userStore     UserStore
	activityStore ActivityStore
}

func NewUserService(userStore UserStore, activityStore ActivityStore) *UserService {
	return &UserService{
		userStore:     userStore,
		activityStore: activityStore,
	}
}

// ListUsers returns all accounts, newest first.
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.userStore.ListUsers()
}

// ChangeRole assigns a new role to a user.
func (s *UserService) ChangeRole(userID uint, role string, adminID uint, meta RequestMeta) error {
	if role != models.RoleAdmin && role != models.RoleStaff && role != models.RoleUser {
		return fmt.Errorf("unknown role %q", role)
	}

	if _, err := s.userStore.FindUserByID(userID); err != nil {
		return err
	}

	if err := s.userStore.UpdateUserRole(userID, role); err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	_ = s.activityStore.CreateActivityLog(&adminID, models.ActionRoleChanged,
		fmt.Sprintf("Changed role of user %d to %s", userID, role), meta.IPAddress, meta.UserAgent)

	return nil
}

// SetActive soft-deactivates or reactivates an account. Accounts are never
// hard-deleted.
func (s *UserService) SetActive(userID uint, active bool, adminID uint, meta RequestMeta) error {
	if _, err := s.userStore.FindUserByID(userID); err != nil {
		return err
	}

	if err := s.userStore.SetUserActive(userID, active); err != nil {
		return fmt.Errorf("failed to update account state: %w", err)
	}

	state := "deactivated"
	if active {
		state = "reactivated"
	}
	_ = s.activityStore.CreateActivityLog(&adminID, models.ActionAccountToggled,
		fmt.Sprintf("Account %d %s", userID, state), meta.IPAddress, meta.UserAgent)

	return nil
}

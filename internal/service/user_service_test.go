package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Muskan244/CareClock/internal/dto"
	"github.com/Muskan244/CareClock/internal/model"
	"github.com/Muskan244/CareClock/internal/repository"
)

// ── 测试辅助 ──

func setupTestUserService() (UserService, *mockUserRepo) {
	userRepo := newMockUserRepo()
	repo := &repository.Repository{
		User:     userRepo,
		Facility: newMockFacilityRepo(),
		Shift:    newMockShiftRepo(),
	}
	svc := NewUserService(repo, zap.NewNop())
	return svc, userRepo
}

// ── UpdateRole 测试 ──

func TestUserService_UpdateRole_WorkerToManager(t *testing.T) {
	svc, userRepo := setupTestUserService()
	userRepo.users["user-1"] = &model.User{
		UserID:    "user-1",
		Email:     "worker@example.com",
		FirstName: "小明",
		Role:      model.RoleWorker,
	}

	result, err := svc.UpdateRole(context.Background(), "user-1", &dto.UpdateRoleRequest{
		Role: model.RoleManager,
	})
	if err != nil {
		t.Fatalf("UpdateRole 应成功: %v", err)
	}
	if result.Role != model.RoleManager {
		t.Errorf("期望角色=manager，实际=%s", result.Role)
	}
	if userRepo.users["user-1"].Role != model.RoleManager {
		t.Error("角色变更未持久化")
	}
}

func TestUserService_UpdateRole_ManagerToWorker(t *testing.T) {
	svc, userRepo := setupTestUserService()
	userRepo.users["user-1"] = &model.User{
		UserID: "user-1",
		Role:   model.RoleManager,
	}

	result, err := svc.UpdateRole(context.Background(), "user-1", &dto.UpdateRoleRequest{
		Role: model.RoleWorker,
	})
	if err != nil {
		t.Fatalf("UpdateRole 应成功: %v", err)
	}
	if result.Role != model.RoleWorker {
		t.Errorf("期望角色=worker，实际=%s", result.Role)
	}
}

func TestUserService_UpdateRole_NotFound(t *testing.T) {
	svc, _ := setupTestUserService()

	_, err := svc.UpdateRole(context.Background(), "no-such-user", &dto.UpdateRoleRequest{
		Role: model.RoleManager,
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

// ── GetByID 测试 ──

func TestUserService_GetByID(t *testing.T) {
	svc, userRepo := setupTestUserService()
	userRepo.users["user-1"] = &model.User{
		UserID:       "user-1",
		Email:        "worker@example.com",
		PasswordHash: "hashed",
		FirstName:    "小明",
		LastName:     "王",
		Role:         model.RoleWorker,
	}

	result, err := svc.GetByID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if result.Email != "worker@example.com" {
		t.Errorf("期望Email=worker@example.com，实际=%s", result.Email)
	}

	_, err = svc.GetByID(context.Background(), "no-such-user")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

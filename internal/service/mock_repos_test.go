package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/Muskan244/CareClock/internal/model"
	"github.com/Muskan244/CareClock/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id 或 "email:"+email
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users[user.UserID] = user
	if user.Email != "" {
		m.users["email:"+user.Email] = user
	}
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := m.users["email:"+email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	if user.Email != "" {
		m.users["email:"+user.Email] = user
	}
	return nil
}

// ── Mock FacilityRepository ──

type mockFacilityRepo struct {
	cfg *model.FacilityConfig
}

func newMockFacilityRepo() *mockFacilityRepo {
	return &mockFacilityRepo{}
}

func (m *mockFacilityRepo) Get(_ context.Context) (*model.FacilityConfig, error) {
	if m.cfg == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.cfg, nil
}

func (m *mockFacilityRepo) Replace(_ context.Context, cfg *model.FacilityConfig) error {
	cfg.Singleton = true
	cfg.UpdatedAt = time.Now()
	m.cfg = cfg
	return nil
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	records   map[string]*model.ShiftRecord
	idCounter int
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{records: make(map[string]*model.ShiftRecord)}
}

// CreateOpen 模拟部分唯一索引：同一员工已有打开记录时报重复
func (m *mockShiftRepo) CreateOpen(_ context.Context, rec *model.ShiftRecord) error {
	for _, r := range m.records {
		if r.WorkerID == rec.WorkerID && r.IsOpen {
			return repository.ErrDuplicateOpenShift
		}
	}
	m.idCounter++
	if rec.ShiftRecordID == "" {
		rec.ShiftRecordID = fmt.Sprintf("shift-%d", m.idCounter)
	}
	rec.IsOpen = true
	rec.ClockOutTime = nil
	rec.CreatedAt = time.Now()
	m.records[rec.ShiftRecordID] = rec
	return nil
}

func (m *mockShiftRepo) GetOpenByWorker(_ context.Context, workerID string) (*model.ShiftRecord, error) {
	for _, r := range m.records {
		if r.WorkerID == workerID && r.IsOpen {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// Close 模拟条件更新：记录已关闭时返回 ErrRecordNotFound
func (m *mockShiftRepo) Close(_ context.Context, rec *model.ShiftRecord) error {
	stored, ok := m.records[rec.ShiftRecordID]
	if !ok || !stored.IsOpen {
		return gorm.ErrRecordNotFound
	}
	stored.ClockOutTime = rec.ClockOutTime
	stored.ClockOutLatitude = rec.ClockOutLatitude
	stored.ClockOutLongitude = rec.ClockOutLongitude
	stored.ClockOutLocation = rec.ClockOutLocation
	stored.ClockOutNote = rec.ClockOutNote
	stored.IsOpen = false
	rec.IsOpen = false
	return nil
}

// ListByWorker 与真实仓储一致：按 clock_in_time 倒序（最新在前）
func (m *mockShiftRepo) ListByWorker(_ context.Context, workerID string, start, end *time.Time) ([]model.ShiftRecord, error) {
	var result []model.ShiftRecord
	for _, r := range m.records {
		if r.WorkerID != workerID {
			continue
		}
		if start != nil && end != nil {
			if r.ClockInTime.Before(*start) || r.ClockInTime.After(*end) {
				continue
			}
		}
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ClockInTime.After(result[j].ClockInTime)
	})
	return result, nil
}

func (m *mockShiftRepo) ListAllOpen(_ context.Context) ([]model.ShiftRecord, error) {
	var result []model.ShiftRecord
	for _, r := range m.records {
		if r.IsOpen {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ClockInTime.After(result[j].ClockInTime)
	})
	return result, nil
}

func (m *mockShiftRepo) ListOpenedBetween(_ context.Context, from, to time.Time) ([]model.ShiftRecord, error) {
	var result []model.ShiftRecord
	for _, r := range m.records {
		if !r.ClockInTime.Before(from) && !r.ClockInTime.After(to) {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ClockInTime.Before(result[j].ClockInTime)
	})
	return result, nil
}

func (m *mockShiftRepo) CountOpen(_ context.Context) (int64, error) {
	var n int64
	for _, r := range m.records {
		if r.IsOpen {
			n++
		}
	}
	return n, nil
}

func (m *mockShiftRepo) CountOpenedBetween(_ context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, r := range m.records {
		if !r.ClockInTime.Before(from) && !r.ClockInTime.After(to) {
			n++
		}
	}
	return n, nil
}

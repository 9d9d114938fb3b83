package services_test

import (
	"context"
	"sync"
	"time"

	"job-marketplace-api/internal/models"
	"job-marketplace-api/internal/storage"
	"job-marketplace-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// fakeTx records how a transaction ended. Only Commit and Rollback are ever called on it.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	txs []*fakeTx
}

func (d *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	tx := &fakeTx{}
	d.txs = append(d.txs, tx)
	return tx, nil
}

func (d *fakeDB) lastTx() *fakeTx {
	if len(d.txs) == 0 {
		return nil
	}
	return d.txs[len(d.txs)-1]
}

var _ storage.TxBeginner = (*fakeDB)(nil)

// MockJobRepository is a mock type for the storage.JobRepository interface
type MockJobRepository struct {
	mock.Mock
}

var _ storage.JobRepository = (*MockJobRepository)(nil)

func (m *MockJobRepository) WithTx(tx pgx.Tx) storage.JobRepository { return m }

func (m *MockJobRepository) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) GetDetails(ctx context.Context, id uuid.UUID) (*models.JobDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobDetails), args.Error(1)
}

func (m *MockJobRepository) List(ctx context.Context, req *dto.ListJobsRequest) ([]models.JobDetails, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobDetails), args.Error(1)
}

func (m *MockJobRepository) ListByPoster(ctx context.Context, req *dto.ListMyJobsRequest) ([]models.JobDetails, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobDetails), args.Error(1)
}

func (m *MockJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) (*models.Job, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) SetSelectedApplicant(ctx context.Context, req *dto.SetSelectedApplicantRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

// MockJobApplicationRepository is a mock type for the storage.JobApplicationRepository interface
type MockJobApplicationRepository struct {
	mock.Mock
}

var _ storage.JobApplicationRepository = (*MockJobApplicationRepository)(nil)

func (m *MockJobApplicationRepository) WithTx(tx pgx.Tx) storage.JobApplicationRepository { return m }

func (m *MockJobApplicationRepository) Create(ctx context.Context, req *dto.CreateJobApplicationRequest) (*models.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobApplication), args.Error(1)
}

func (m *MockJobApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobApplication), args.Error(1)
}

func (m *MockJobApplicationRepository) GetOwned(ctx context.Context, req *dto.GetJobApplicationRequest) (*models.ApplicationDetails, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ApplicationDetails), args.Error(1)
}

func (m *MockJobApplicationRepository) ListByApplicant(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.ApplicationDetails, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApplicationDetails), args.Error(1)
}

func (m *MockJobApplicationRepository) ListByPoster(ctx context.Context, req *dto.ListEmployerApplicationsRequest) ([]models.ApplicationDetails, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApplicationDetails), args.Error(1)
}

func (m *MockJobApplicationRepository) ListByJob(ctx context.Context, req *dto.ListJobApplicationsRequest) ([]models.ApplicationDetails, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApplicationDetails), args.Error(1)
}

func (m *MockJobApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.JobApplication, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobApplication), args.Error(1)
}

func (m *MockJobApplicationRepository) DeleteOwned(ctx context.Context, req *dto.WithdrawApplicationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockUserRepository is a mock type for the storage.UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

var _ storage.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, req *dto.ListUsersRequest) ([]models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.UserStatus) (*models.User, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockCategoryRepository is a mock type for the storage.CategoryRepository interface
type MockCategoryRepository struct {
	mock.Mock
}

var _ storage.CategoryRepository = (*MockCategoryRepository)(nil)

func (m *MockCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCodeIssuer struct {
	mock.Mock
}

func (m *MockCodeIssuer) Issue(ctx context.Context, userID uuid.UUID, account string) (string, error) {
	args := m.Called(ctx, userID, account)
	return args.String(0), args.Error(1)
}

func (m *MockCodeIssuer) Verify(ctx context.Context, userID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, userID, code)
	return args.Bool(0), args.Error(1)
}

type MockCodeSender struct {
	mock.Mock
}

func (m *MockCodeSender) SendVerificationCode(ctx context.Context, user *models.User, code string) error {
	args := m.Called(ctx, user, code)
	return args.Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Generate(userID uuid.UUID, role models.UserRole) (string, time.Time, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// memoryStore is an in-process cache.Store.
type memoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string][]byte{}}
}

func (s *memoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key], nil
}

func (s *memoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	s.sets++
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func ptrUUID(id uuid.UUID) *uuid.UUID { return &id }

func ptrString(s string) *string { return &s }

func ptrTime(t time.Time) *time.Time { return &t }

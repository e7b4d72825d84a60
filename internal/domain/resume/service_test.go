package resume

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, d Draft) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockRepository) Get(ctx context.Context, id string) (*Draft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Draft), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, d Draft) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context) ([]Draft, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Draft), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func draftFixture(id string) *Draft {
	return &Draft{ID: id, Record: NewRecord()}
}

func TestService_CreateDraft(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testLogger())

	repo.On("Create", mock.Anything, mock.MatchedBy(func(d Draft) bool {
		return d.ID != "" && len(d.Record.Experience) == 1 && len(d.Record.Education) == 1
	})).Return(nil)

	d, err := svc.CreateDraft(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, NewRecord(), d.Record)
	repo.AssertExpectations(t)
}

func TestService_UpdatePersonal(t *testing.T) {
	t.Run("saves updated record", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, testLogger())

		repo.On("Get", mock.Anything, "d1").Return(draftFixture("d1"), nil)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(d Draft) bool {
			return d.Record.Personal.Name == "Jane Doe"
		})).Return(nil)

		d, err := svc.UpdatePersonal(context.Background(), "d1", FieldName, "Jane Doe")

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", d.Record.Personal.Name)
		repo.AssertExpectations(t)
	})

	t.Run("unknown field does not touch the store", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, testLogger())

		repo.On("Get", mock.Anything, "d1").Return(draftFixture("d1"), nil)

		_, err := svc.UpdatePersonal(context.Background(), "d1", "nickname", "jd")

		assert.ErrorIs(t, err, ErrUnknownField)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("missing draft", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, testLogger())

		repo.On("Get", mock.Anything, "nope").Return(nil, ErrNotFound)

		_, err := svc.UpdatePersonal(context.Background(), "nope", FieldName, "x")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_ExperienceOps(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testLogger())

	repo.On("Get", mock.Anything, "d1").Return(draftFixture("d1"), nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	d, err := svc.AppendExperience(context.Background(), "d1")
	require.NoError(t, err)
	assert.Len(t, d.Record.Experience, 2)

	_, err = svc.RemoveExperience(context.Background(), "d1", 7)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestService_UpdatePhoto(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testLogger())

	repo.On("Get", mock.Anything, "d1").Return(draftFixture("d1"), nil)

	_, err := svc.UpdatePhoto(context.Background(), "d1", "not-a-data-uri")
	assert.ErrorIs(t, err, ErrInvalidPhoto)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_ValidateDraft(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testLogger())

	d := draftFixture("d1")
	d.Record.Personal = Personal{Name: "Jane Doe", Phone: "555-1234"}
	repo.On("Get", mock.Anything, "d1").Return(d, nil)

	errs, err := svc.ValidateDraft(context.Background(), "d1")

	require.NoError(t, err)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs, FieldEmail)
}

package profile

import (
	"context"
	"testing"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/repository"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByUserName(ctx context.Context, userName string) (*domain.Profile, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockRepo) Save(ctx context.Context, p *domain.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func newTestService(repo Repository) *Service {
	log, _ := test.NewNullLogger()
	return NewService(repo, log)
}

var session = &auth.Session{IsAuthenticated: true, UserName: "Asha"}

func TestGetProfile_Default(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	repo.On("GetByUserName", ctx, "Asha").Return(nil, repository.ErrNotFound)

	p, err := newTestService(repo).GetProfile(ctx, session)

	require.NoError(t, err)
	assert.Equal(t, "Asha", p.Name)
	assert.Equal(t, "user@example.com", p.Email)
	assert.Equal(t, "1990-01-01", p.DOB)
}

func TestGetProfile_UsesSessionPicture(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	repo.On("GetByUserName", ctx, "Asha").Return(nil, repository.ErrNotFound)

	s := &auth.Session{IsAuthenticated: true, UserName: "Asha", UserPic: "https://example.com/a.png"}
	p, err := newTestService(repo).GetProfile(ctx, s)

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.png", p.ProfilePic)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	repo.On("GetByUserName", ctx, "Asha").Return(nil, repository.ErrNotFound)
	repo.On("Save", ctx, mock.MatchedBy(func(p *domain.Profile) bool {
		return p.UserName == "Asha" && p.Email == "asha@example.com"
	})).Return(nil)

	p, err := newTestService(repo).UpdateProfile(ctx, session, UpdateProfileRequest{
		Name: "Asha R", Email: "asha@example.com", Pincode: "560001",
	})

	require.NoError(t, err)
	assert.Equal(t, "Asha R", p.Name)
	assert.Equal(t, "560001", p.Pincode)
	repo.AssertExpectations(t)
}

func TestUpdateProfile_Validation(t *testing.T) {
	repo := new(mockRepo)

	_, err := newTestService(repo).UpdateProfile(context.Background(), session, UpdateProfileRequest{Email: "nope"})

	assert.ErrorIs(t, err, ErrValidation)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "required", verr.Fields["Name"])
	assert.Equal(t, "email", verr.Fields["Email"])
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestChangePassword_Mismatch(t *testing.T) {
	repo := new(mockRepo)

	err := newTestService(repo).ChangePassword(context.Background(), session, ChangePasswordRequest{
		Current: "old", New: "one", Confirm: "two",
	})

	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestChangePassword_StoresHash(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	repo.On("GetByUserName", ctx, "Asha").Return(nil, repository.ErrNotFound)

	var saved *domain.Profile
	repo.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.Profile)
	}).Return(nil)

	err := newTestService(repo).ChangePassword(ctx, session, ChangePasswordRequest{
		Current: "anything", New: "s3cret", Confirm: "s3cret",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("s3cret")))
}

func TestChangePassword_ChecksCurrent(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("old"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(mockRepo)
	repo.On("GetByUserName", ctx, "Asha").Return(&domain.Profile{ID: 1, UserName: "Asha", PasswordHash: string(hash)}, nil)

	err = newTestService(repo).ChangePassword(ctx, session, ChangePasswordRequest{
		Current: "wrong", New: "new", Confirm: "new",
	})

	assert.ErrorIs(t, err, ErrIncorrectPassword)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

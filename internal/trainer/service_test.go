package trainer

import (
	"context"
	"testing"

	"fitcircle/internal/apperror"
	"fitcircle/internal/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct{ mock.Mock }

func (m *MockRepository) Create(ctx context.Context, t *Trainer) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Trainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Trainer), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, t *Trainer) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CreateRating(ctx context.Context, r *Rating) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRepository) GetRating(ctx context.Context, id uuid.UUID) (*Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Rating), args.Error(1)
}

func (m *MockRepository) UpdateRating(ctx context.Context, r *Rating) error {
	return m.Called(ctx, r).Error(0)
}

type MockGymFinder struct{ mock.Mock }

func (m *MockGymFinder) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// stored returns a fresh copy of t so each load in a retry loop sees
// persisted state.
func stored(t *testing.T, tr *Trainer) *Trainer {
	t.Helper()
	cp, err := Restore(tr.Record(), tr.Ratings())
	require.NoError(t, err)
	return cp
}

func storedRating(t *testing.T, r *Rating) *Rating {
	t.Helper()
	cp, err := RestoreRating(r.Record())
	require.NoError(t, err)
	return cp
}

func member() auth.Principal {
	return auth.Principal{UserID: uuid.New(), Email: "member@fitcircle.az", Role: auth.RoleMember}
}

func trainerRequest() TrainerRequest {
	p := validProfile()
	return TrainerRequest{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		Bio:       p.Bio,
	}
}

func TestService_Create(t *testing.T) {
	gymID := uuid.New()

	t.Run("ok", func(t *testing.T) {
		repo, gyms := new(MockRepository), new(MockGymFinder)
		gyms.On("Exists", mock.Anything, gymID).Return(true, nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*trainer.Trainer")).Return(nil)

		tr, err := NewService(repo, gyms).Create(context.Background(), gymID, trainerRequest())
		require.NoError(t, err)
		assert.Equal(t, gymID, tr.GymID())
		repo.AssertExpectations(t)
	})

	t.Run("unknown gym", func(t *testing.T) {
		repo, gyms := new(MockRepository), new(MockGymFinder)
		gyms.On("Exists", mock.Anything, gymID).Return(false, nil)

		_, err := NewService(repo, gyms).Create(context.Background(), gymID, trainerRequest())
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestService_UpdateProfileRetriesOnConflict(t *testing.T) {
	repo := new(MockRepository)
	tr := newTestTrainer(t)

	repo.On("GetByID", mock.Anything, tr.ID()).Return(stored(t, tr), nil).Once()
	repo.On("GetByID", mock.Anything, tr.ID()).Return(stored(t, tr), nil).Once()
	repo.On("Update", mock.Anything, mock.Anything).
		Return(apperror.Conflict("trainer.update", "stale")).Once()
	repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := NewService(repo, nil).UpdateProfile(context.Background(), tr.ID(), ProfileRequest{
		FirstName: "Leyla",
		LastName:  "Aliyeva",
		Phone:     "+994551112233",
	})
	require.NoError(t, err)
	assert.Equal(t, "Aliyeva", updated.Profile().LastName)
	repo.AssertNumberOfCalls(t, "GetByID", 2)
}

func TestService_Rate(t *testing.T) {
	tr := newTestTrainer(t)
	p := member()

	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, tr.ID()).Return(stored(t, tr), nil)
	repo.On("CreateRating", mock.Anything, mock.MatchedBy(func(r *Rating) bool {
		return r.UserID() == p.UserID && r.TrainerID() == tr.ID() && r.Rating() == 5
	})).Return(nil)

	r, err := NewService(repo, nil).Rate(context.Background(), p, tr.ID(), RatingRequest{Rating: 5, Comment: "Great"})
	require.NoError(t, err)
	assert.Equal(t, "Great", r.Comment())
	repo.AssertExpectations(t)
}

func TestService_RateRejected(t *testing.T) {
	tr := newTestTrainer(t)

	tests := []struct {
		name    string
		caller  auth.Principal
		req     RatingRequest
		wantErr error
	}{
		{"out of range", member(), RatingRequest{Rating: 7}, apperror.ErrRange},
		{"self rating", auth.Principal{UserID: uuid.New(), Email: "leyla@irontemple.az", Role: auth.RoleTrainer}, RatingRequest{Rating: 5}, apperror.ErrValidation},
		{"self rating mixed case email", auth.Principal{UserID: uuid.New(), Email: " Leyla@IronTemple.az", Role: auth.RoleTrainer}, RatingRequest{Rating: 4}, apperror.ErrValidation},
		{"self rating by trainer id", auth.Principal{UserID: tr.ID(), Role: auth.RoleTrainer}, RatingRequest{Rating: 5}, apperror.ErrValidation},
		{"blocked comment", member(), RatingRequest{Rating: 1, Comment: "useless"}, apperror.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			repo.On("GetByID", mock.Anything, tr.ID()).Return(stored(t, tr), nil)

			_, err := NewService(repo, nil).Rate(context.Background(), tt.caller, tr.ID(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "CreateRating", mock.Anything, mock.Anything)
		})
	}
}

func TestService_UpdateRating(t *testing.T) {
	author := member()
	r, err := NewRating(uuid.New(), author.UserID, 3, "ok")
	require.NoError(t, err)

	t.Run("author edits", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetRating", mock.Anything, r.ID()).Return(storedRating(t, r), nil)
		repo.On("UpdateRating", mock.Anything, mock.Anything).Return(nil)

		comment := "better now"
		updated, err := NewService(repo, nil).UpdateRating(context.Background(), author, r.ID(),
			UpdateRatingRequest{Rating: 4, Comment: &comment})
		require.NoError(t, err)
		assert.Equal(t, 4, updated.Rating())
		assert.Equal(t, "better now", updated.Comment())
		assert.True(t, updated.IsEdited())
	})

	t.Run("same value is not an edit", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetRating", mock.Anything, r.ID()).Return(storedRating(t, r), nil)
		repo.On("UpdateRating", mock.Anything, mock.Anything).Return(nil)

		updated, err := NewService(repo, nil).UpdateRating(context.Background(), author, r.ID(),
			UpdateRatingRequest{Rating: 3})
		require.NoError(t, err)
		assert.False(t, updated.IsEdited())
		assert.Equal(t, "ok", updated.Comment())
	})

	t.Run("someone else", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetRating", mock.Anything, r.ID()).Return(storedRating(t, r), nil)

		_, err := NewService(repo, nil).UpdateRating(context.Background(), member(), r.ID(),
			UpdateRatingRequest{Rating: 1})
		assert.ErrorIs(t, err, apperror.ErrForbidden)
		repo.AssertNotCalled(t, "UpdateRating", mock.Anything, mock.Anything)
	})
}

func TestService_SetRatingActive(t *testing.T) {
	r := newTestRating(t, uuid.New(), 2)

	repo := new(MockRepository)
	repo.On("GetRating", mock.Anything, r.ID()).Return(storedRating(t, r), nil)
	repo.On("UpdateRating", mock.Anything, mock.MatchedBy(func(r *Rating) bool { return !r.IsActive() })).Return(nil)

	updated, err := NewService(repo, nil).SetRatingActive(context.Background(), r.ID(), false)
	require.NoError(t, err)
	assert.False(t, updated.IsActive())
	repo.AssertExpectations(t)
}

package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/akutuzov/jobgraph/internal/domain"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) FetchUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserStore) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type mockEmbedder struct {
	mock.Mock
}

func (m *mockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	embedding, _ := args.Get(0).([]float32)
	return embedding, args.Error(1)
}

func TestUpsertUser_Execute(t *testing.T) {
	t.Run("new_user_gets_generated_id_and_embedding", func(t *testing.T) {
		embedder := &mockEmbedder{}
		embedder.On("EmbedText", mock.Anything, "Go developer with 5 years experience").
			Return([]float32{0.1, 0.2}, nil)

		users := &mockUserStore{}
		users.On("FetchUser", mock.Anything, mock.Anything).Return(nil, nil)
		users.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
			return u.ID != "" && len(u.Embedding) == 2
		})).Return(nil)

		cmd := NewUpsertUser(embedder, users)

		user, err := cmd.Execute(context.Background(), UpsertUserRequest{
			Username:   "dev",
			ResumeText: "Go developer with 5 years experience",
			Skills:     []string{"Go"},
		})

		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, []float32{0.1, 0.2}, user.Embedding)
		users.AssertExpectations(t)
	})

	t.Run("existing_preferences_survive_profile_update", func(t *testing.T) {
		users := &mockUserStore{}
		users.On("FetchUser", mock.Anything, "user1").Return(&domain.User{
			ID:          "user1",
			Preferences: map[string]float64{"go": 0.8},
		}, nil)
		users.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
			return u.Preferences["go"] == 0.8
		})).Return(nil)

		cmd := NewUpsertUser(&mockEmbedder{}, users)

		user, err := cmd.Execute(context.Background(), UpsertUserRequest{
			ID:       "user1",
			Username: "dev",
			Skills:   []string{"Go", "SQL"},
		})

		require.NoError(t, err)
		assert.InDelta(t, 0.8, user.Preferences["go"], 0.0001)
		users.AssertExpectations(t)
	})

	t.Run("blank_resume_skips_embedding", func(t *testing.T) {
		embedder := &mockEmbedder{}

		users := &mockUserStore{}
		users.On("FetchUser", mock.Anything, "user1").Return(nil, nil)
		users.On("SaveUser", mock.Anything, mock.Anything).Return(nil)

		cmd := NewUpsertUser(embedder, users)

		user, err := cmd.Execute(context.Background(), UpsertUserRequest{
			ID:         "user1",
			ResumeText: "   ",
		})

		require.NoError(t, err)
		assert.Nil(t, user.Embedding)
		embedder.AssertNotCalled(t, "EmbedText", mock.Anything, mock.Anything)
	})

	t.Run("embedding_failure_degrades_to_save_without_vector", func(t *testing.T) {
		embedder := &mockEmbedder{}
		embedder.On("EmbedText", mock.Anything, mock.Anything).
			Return(nil, errors.New("provider unavailable"))

		users := &mockUserStore{}
		users.On("FetchUser", mock.Anything, "user1").Return(nil, nil)
		users.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
			return u.Embedding == nil
		})).Return(nil)

		cmd := NewUpsertUser(embedder, users)

		_, err := cmd.Execute(context.Background(), UpsertUserRequest{
			ID:         "user1",
			ResumeText: "Go developer",
		})

		require.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("save_error_returned", func(t *testing.T) {
		users := &mockUserStore{}
		users.On("FetchUser", mock.Anything, "user1").Return(nil, nil)
		users.On("SaveUser", mock.Anything, mock.Anything).Return(errors.New("write failed"))

		cmd := NewUpsertUser(&mockEmbedder{}, users)

		_, err := cmd.Execute(context.Background(), UpsertUserRequest{ID: "user1"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "saving user")
	})
}

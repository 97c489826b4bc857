package command

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/akutuzov/jobgraph/internal/domain"
)

type mockUserPreferencesSaver struct {
	mock.Mock
}

func (m *mockUserPreferencesSaver) SaveUserPreferences(
	ctx context.Context, userID string, preferences map[string]float64,
) error {
	args := m.Called(ctx, userID, preferences)
	return args.Error(0)
}

func TestUpdateUserPreferences_Execute(t *testing.T) {
	t.Run("like_persists_updated_weights", func(t *testing.T) {
		users := &mockUserFetcher{}
		users.On("FetchUser", mock.Anything, "user1").Return(&domain.User{
			ID:          "user1",
			Preferences: map[string]float64{"go": 0.5},
		}, nil)

		prefs := &mockUserPreferencesSaver{}
		prefs.On("SaveUserPreferences", mock.Anything, "user1",
			mock.MatchedBy(func(p map[string]float64) bool {
				return len(p) == 1 && p["go"] > 0.59 && p["go"] < 0.6
			})).Return(nil)

		cmd := NewUpdateUserPreferences(users, prefs, domain.DefaultFeedbackConfig())

		_, err := cmd.Execute(context.Background(), UpdateUserPreferencesRequest{
			UserID: "user1",
			Kind:   domain.FeedbackLiked,
			Skills: []string{"Go"},
		})

		require.NoError(t, err)
		prefs.AssertExpectations(t)
	})

	t.Run("view_rejected", func(t *testing.T) {
		cmd := NewUpdateUserPreferences(&mockUserFetcher{}, &mockUserPreferencesSaver{}, domain.DefaultFeedbackConfig())

		_, err := cmd.Execute(context.Background(), UpdateUserPreferencesRequest{
			UserID: "user1",
			Kind:   domain.FeedbackViewed,
			Skills: []string{"Go"},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not update preferences")
	})

	t.Run("empty_skills_is_noop", func(t *testing.T) {
		users := &mockUserFetcher{}
		prefs := &mockUserPreferencesSaver{}
		cmd := NewUpdateUserPreferences(users, prefs, domain.DefaultFeedbackConfig())

		_, err := cmd.Execute(context.Background(), UpdateUserPreferencesRequest{
			UserID: "user1",
			Kind:   domain.FeedbackLiked,
		})

		require.NoError(t, err)
		users.AssertNotCalled(t, "FetchUser", mock.Anything, mock.Anything)
		prefs.AssertNotCalled(t, "SaveUserPreferences", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown_user_skipped", func(t *testing.T) {
		users := &mockUserFetcher{}
		users.On("FetchUser", mock.Anything, "missing").Return(nil, nil)

		prefs := &mockUserPreferencesSaver{}
		cmd := NewUpdateUserPreferences(users, prefs, domain.DefaultFeedbackConfig())

		_, err := cmd.Execute(context.Background(), UpdateUserPreferencesRequest{
			UserID: "missing",
			Kind:   domain.FeedbackDisliked,
			Skills: []string{"Go"},
		})

		require.NoError(t, err)
		prefs.AssertNotCalled(t, "SaveUserPreferences", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("save_error_returned", func(t *testing.T) {
		users := &mockUserFetcher{}
		users.On("FetchUser", mock.Anything, "user1").Return(&domain.User{
			ID:          "user1",
			Preferences: map[string]float64{},
		}, nil)

		prefs := &mockUserPreferencesSaver{}
		prefs.On("SaveUserPreferences", mock.Anything, "user1", mock.Anything).
			Return(errors.New("write failed"))

		cmd := NewUpdateUserPreferences(users, prefs, domain.DefaultFeedbackConfig())

		_, err := cmd.Execute(context.Background(), UpdateUserPreferencesRequest{
			UserID: "user1",
			Kind:   domain.FeedbackLiked,
			Skills: []string{"Go"},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "write failed")
	})
}

func TestUpdateUserPreferences_ConcurrentUpdatesAllApplied(t *testing.T) {
	// Every concurrent like for the same user must be read-modify-written in
	// sequence, so the final weight reflects all of them.
	const updates = 10

	var mu sync.Mutex
	stored := map[string]float64{}

	fetch := func(ctx context.Context, userID string) (*domain.User, error) {
		mu.Lock()
		defer mu.Unlock()
		prefs := make(map[string]float64, len(stored))
		for k, v := range stored {
			prefs[k] = v
		}
		return &domain.User{ID: userID, Preferences: prefs}, nil
	}
	save := func(ctx context.Context, userID string, preferences map[string]float64) error {
		mu.Lock()
		defer mu.Unlock()
		stored = preferences
		return nil
	}

	cmd := NewUpdateUserPreferences(userFetcherFunc(fetch), preferencesSaverFunc(save), domain.DefaultFeedbackConfig())

	var wg sync.WaitGroup
	for i := 0; i < updates; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cmd.Execute(context.Background(), UpdateUserPreferencesRequest{
				UserID: "user1",
				Kind:   domain.FeedbackLiked,
				Skills: []string{"Go"},
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Ten sequential likes from zero land well above what any single lost
	// update would leave behind.
	sequential := map[string]float64{}
	for i := 0; i < updates; i++ {
		sequential = domain.UpdatePreferences(sequential, domain.FeedbackLiked, []string{"Go"}, domain.DefaultFeedbackConfig())
	}
	assert.InDelta(t, sequential["go"], stored["go"], 0.0001)
}

func TestUpdateUserPreferences_LockStriping(t *testing.T) {
	cmd := NewUpdateUserPreferences(&mockUserFetcher{}, &mockUserPreferencesSaver{}, domain.DefaultFeedbackConfig())

	assert.Same(t, cmd.lockFor("user1"), cmd.lockFor("user1"))

	// Arbitrarily many distinct users map onto the fixed lock table.
	locks := map[*sync.Mutex]struct{}{}
	for i := 0; i < 10*preferenceLockStripes; i++ {
		locks[cmd.lockFor(fmt.Sprintf("user-%d", i))] = struct{}{}
	}
	assert.LessOrEqual(t, len(locks), preferenceLockStripes)
}

type userFetcherFunc func(ctx context.Context, userID string) (*domain.User, error)

func (f userFetcherFunc) FetchUser(ctx context.Context, userID string) (*domain.User, error) {
	return f(ctx, userID)
}

type preferencesSaverFunc func(ctx context.Context, userID string, preferences map[string]float64) error

func (f preferencesSaverFunc) SaveUserPreferences(ctx context.Context, userID string, preferences map[string]float64) error {
	return f(ctx, userID, preferences)
}

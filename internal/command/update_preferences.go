package command

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/akutuzov/jobgraph/internal/datasources"
	"github.com/akutuzov/jobgraph/internal/domain"
)

// UpdateUserPreferencesRequest is the request for the UpdateUserPreferences command.
type UpdateUserPreferencesRequest struct {
	UserID string
	Kind   domain.FeedbackKind
	Skills []string
}

// preferenceLockStripes fixes the size of the lock table; memory does not
// grow with the number of users seen.
const preferenceLockStripes = 64

// UpdateUserPreferences applies one rated-vacancy feedback event to a user's
// learned skill weights. Updates for the same user are serialized so the
// read-modify-write of the preference mapping never loses a concurrent
// update. Locks are striped by user ID; unrelated users may share a stripe.
// Each call persists the full updated mapping or nothing.
type UpdateUserPreferences struct {
	Users  datasources.UserFetcher
	Prefs  datasources.UserPreferencesSaver
	Config domain.FeedbackConfig

	userLocks [preferenceLockStripes]sync.Mutex
}

// NewUpdateUserPreferences creates a properly initialized UpdateUserPreferences command.
func NewUpdateUserPreferences(
	users datasources.UserFetcher,
	prefs datasources.UserPreferencesSaver,
	config domain.FeedbackConfig,
) *UpdateUserPreferences {
	return &UpdateUserPreferences{
		Users:  users,
		Prefs:  prefs,
		Config: config,
	}
}

// Execute updates and persists the user's preference weights. Failures are
// returned to the caller so the feedback event can be retried.
func (c *UpdateUserPreferences) Execute(
	ctx context.Context, req UpdateUserPreferencesRequest,
) (Empty, error) {
	if !req.Kind.AffectsPreferences() {
		return Empty{}, fmt.Errorf("feedback kind [%s] does not update preferences", req.Kind)
	}
	if len(req.Skills) == 0 {
		return Empty{}, nil
	}

	lock := c.lockFor(req.UserID)
	lock.Lock()
	defer lock.Unlock()

	user, err := c.Users.FetchUser(ctx, req.UserID)
	if err != nil {
		return Empty{}, fmt.Errorf("fetching user: %w", err)
	}
	if user == nil {
		logger := domain.LoggerFromContext(ctx)
		logger.DebugContext(ctx, "skipping preference update for unknown user", "user_id", req.UserID)
		return Empty{}, nil
	}

	updated := domain.UpdatePreferences(user.Preferences, req.Kind, req.Skills, c.Config)

	if err := c.Prefs.SaveUserPreferences(ctx, req.UserID, updated); err != nil {
		return Empty{}, fmt.Errorf("saving preferences: %w", err)
	}

	return Empty{}, nil
}

func (c *UpdateUserPreferences) lockFor(userID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return &c.userLocks[h.Sum32()%preferenceLockStripes]
}

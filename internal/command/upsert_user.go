package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/akutuzov/jobgraph/internal/datasources"
	"github.com/akutuzov/jobgraph/internal/domain"
)

// UpsertUserRequest is the request for the UpsertUser command. An empty ID
// creates a new user; a populated one overwrites that user's profile.
type UpsertUserRequest struct {
	ID         string
	Username   string
	ResumeText string
	Skills     []string
}

// UpsertUser creates or updates a user profile, embedding the resume text so
// the user can participate in semantic scoring.
type UpsertUser struct {
	Embedder datasources.Embedder
	Users    interface {
		datasources.UserFetcher
		datasources.UserSaver
	}
}

// NewUpsertUser creates a properly initialized UpsertUser command.
func NewUpsertUser(embedder datasources.Embedder, users interface {
	datasources.UserFetcher
	datasources.UserSaver
}) *UpsertUser {
	return &UpsertUser{
		Embedder: embedder,
		Users:    users,
	}
}

// Execute saves the user and returns the stored profile. Existing preference
// weights survive a profile update; an embedding failure degrades to a user
// without a resume vector rather than failing the save.
func (c *UpsertUser) Execute(ctx context.Context, req UpsertUserRequest) (domain.User, error) {
	logger := domain.LoggerFromContext(ctx)

	user := domain.User{
		ID:         req.ID,
		Username:   req.Username,
		ResumeText: req.ResumeText,
		Skills:     req.Skills,
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	existing, err := c.Users.FetchUser(ctx, user.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching existing user: %w", err)
	}
	if existing != nil {
		user.Preferences = existing.Preferences
	}

	if strings.TrimSpace(user.ResumeText) != "" {
		embedding, err := c.Embedder.EmbedText(ctx, user.ResumeText)
		if err != nil {
			logger.WarnContext(ctx, "embedding resume text failed; saving user without embedding",
				"error", err)
		} else {
			user.Embedding = embedding
		}
	}

	if err := c.Users.SaveUser(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("saving user: %w", err)
	}

	return user, nil
}

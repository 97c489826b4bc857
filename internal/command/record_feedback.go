package command

import (
	"context"
	"fmt"
	"time"

	"github.com/akutuzov/jobgraph/internal/datasources"
	"github.com/akutuzov/jobgraph/internal/domain"
)

// RecordFeedbackRequest is the request for the RecordFeedback command.
type RecordFeedbackRequest struct {
	UserID    string
	VacancyID string
	Kind      domain.FeedbackKind
}

// RecordFeedback stores a feedback edge between a user and a vacancy and,
// for likes and dislikes, feeds the vacancy's skills into the preference
// learner. Views and applications are recorded but never move preferences.
type RecordFeedback struct {
	Recorder      datasources.FeedbackRecorder
	VacancySkills datasources.VacancySkillsFetcher
	Preferences   Command[UpdateUserPreferencesRequest, Empty]
}

// NewRecordFeedback creates a properly initialized RecordFeedback command.
func NewRecordFeedback(
	recorder datasources.FeedbackRecorder,
	vacancySkills datasources.VacancySkillsFetcher,
	preferences Command[UpdateUserPreferencesRequest, Empty],
) *RecordFeedback {
	return &RecordFeedback{
		Recorder:      recorder,
		VacancySkills: vacancySkills,
		Preferences:   preferences,
	}
}

// Execute records the feedback event. Any failure is returned so the caller
// can retry; recording the same feedback twice is idempotent.
func (c *RecordFeedback) Execute(ctx context.Context, req RecordFeedbackRequest) (Empty, error) {
	if !req.Kind.Valid() {
		return Empty{}, fmt.Errorf("unknown feedback kind [%s]", req.Kind)
	}

	err := c.Recorder.RecordFeedback(ctx, domain.Feedback{
		UserID:    req.UserID,
		VacancyID: req.VacancyID,
		Kind:      req.Kind,
		Timestamp: time.Now(),
	})
	if err != nil {
		return Empty{}, fmt.Errorf("recording feedback: %w", err)
	}

	if !req.Kind.AffectsPreferences() {
		return Empty{}, nil
	}

	skills, err := c.VacancySkills.FetchVacancySkills(ctx, req.VacancyID)
	if err != nil {
		return Empty{}, fmt.Errorf("fetching vacancy skills for preference update: %w", err)
	}
	if len(skills) == 0 {
		return Empty{}, nil
	}

	if _, err := c.Preferences.Execute(ctx, UpdateUserPreferencesRequest{
		UserID: req.UserID,
		Kind:   req.Kind,
		Skills: skills,
	}); err != nil {
		return Empty{}, fmt.Errorf("updating preferences: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "recorded feedback",
		"vacancy_id", req.VacancyID, "kind", req.Kind)

	return Empty{}, nil
}

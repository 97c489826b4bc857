package domain

import "time"

// FeedbackKind is the relationship type recorded between a user and a vacancy.
type FeedbackKind string

const (
	FeedbackLiked    FeedbackKind = "LIKED"
	FeedbackDisliked FeedbackKind = "DISLIKED"
	FeedbackViewed   FeedbackKind = "VIEWED"
	FeedbackApplied  FeedbackKind = "APPLIED"
)

// Valid reports whether k is one of the recognised feedback kinds.
func (k FeedbackKind) Valid() bool {
	switch k {
	case FeedbackLiked, FeedbackDisliked, FeedbackViewed, FeedbackApplied:
		return true
	}
	return false
}

// AffectsPreferences reports whether feedback of this kind triggers a
// preference-weight update. Views and applications are recorded but never
// move weights.
func (k FeedbackKind) AffectsPreferences() bool {
	return k == FeedbackLiked || k == FeedbackDisliked
}

// Feedback is a single user-vacancy feedback event. At most one edge per kind
// exists between a given pair; repeated identical feedback is idempotent.
type Feedback struct {
	UserID    string       `json:"user_id"`
	VacancyID string       `json:"vacancy_id"`
	Kind      FeedbackKind `json:"kind"`
	Timestamp time.Time    `json:"timestamp"`
}

// FeedbackEntry is a row of a user's feedback history.
type FeedbackEntry struct {
	Kind         FeedbackKind `json:"kind"`
	VacancyID    string       `json:"vacancy_id"`
	VacancyTitle string       `json:"vacancy_title"`
	Timestamp    time.Time    `json:"timestamp"`
}

package domain

// User is a job seeker profile stored in the graph.
// Preferences maps normalized skill keys to learned affinity weights in [0,1];
// it is mutated only through UpdatePreferences.
type User struct {
	ID          string             `json:"id"`
	Username    string             `json:"username"`
	ResumeText  string             `json:"resume_text"`
	Skills      []string           `json:"skills"`
	Preferences map[string]float64 `json:"preferences"`
	Embedding   []float32          `json:"-"`
}

package controller

import (
	"encoding/json"
	"net/http"

	"github.com/akutuzov/jobgraph/internal/command"
	"github.com/akutuzov/jobgraph/internal/domain"
)

type UserUpsert struct {
	Command command.Command[command.UpsertUserRequest, domain.User]
}

type UserUpsertBody struct {
	Username   string   `json:"username"`
	ResumeText string   `json:"resume_text"`
	Skills     []string `json:"skills"`
}

func (c UserUpsert) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var body UserUpsertBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.ErrorContext(ctx, "unable to decode user profile body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	user, err := c.Command.Execute(ctx, command.UpsertUserRequest{
		ID:         userID,
		Username:   body.Username,
		ResumeText: body.ResumeText,
		Skills:     body.Skills,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to save user profile", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(user); err != nil {
		logger.ErrorContext(ctx, "unable to write user profile to response", "error", err)
	}
}

package hh

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/akutuzov/jobgraph/internal/domain"
)

// Field-length caps applied to upstream data before storage.
const (
	maxTitleLen       = 200
	maxDescriptionLen = 5000
	maxNameLen        = 100
)

type vacancyPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	KeySkills   []struct {
		Name string `json:"name"`
	} `json:"key_skills"`
	Salary *struct {
		From     *float64 `json:"from"`
		To       *float64 `json:"to"`
		Currency string   `json:"currency"`
	} `json:"salary"`
	Experience *struct {
		Name string `json:"name"`
	} `json:"experience"`
	Employment *struct {
		Name string `json:"name"`
	} `json:"employment"`
	Employer *struct {
		Name string `json:"name"`
	} `json:"employer"`
	Area *struct {
		Name string `json:"name"`
	} `json:"area"`
	PublishedAt string `json:"published_at"`
}

func parseVacancy(payload vacancyPayload) (*domain.Vacancy, error) {
	if payload.ID == "" {
		return nil, fmt.Errorf("vacancy payload has no id")
	}

	vacancy := &domain.Vacancy{
		ID:          "hh_" + payload.ID,
		ExternalID:  payload.ID,
		Title:       truncate(stripHTML(payload.Name), maxTitleLen),
		Description: truncate(stripHTML(payload.Description), maxDescriptionLen),
	}

	for _, skill := range payload.KeySkills {
		if skill.Name == "" {
			continue
		}
		vacancy.Skills = append(vacancy.Skills, truncate(skill.Name, maxNameLen))
	}

	if payload.Salary != nil {
		vacancy.SalaryFrom = payload.Salary.From
		vacancy.SalaryTo = payload.Salary.To
		vacancy.Currency = payload.Salary.Currency
	}
	if payload.Experience != nil {
		vacancy.Experience = payload.Experience.Name
	}
	if payload.Employment != nil {
		vacancy.Employment = payload.Employment.Name
	}
	if payload.Employer != nil {
		vacancy.CompanyName = truncate(payload.Employer.Name, maxNameLen)
	}
	if payload.Area != nil {
		vacancy.LocationName = truncate(payload.Area.Name, maxNameLen)
	}

	vacancy.PublishedAt = parsePublishedAt(payload.PublishedAt)

	return vacancy, nil
}

// parsePublishedAt accepts both RFC3339 and the zone-without-colon variant
// the HH API actually emits. Unparseable values become the zero time.
func parsePublishedAt(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05-0700"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// stripHTML extracts the text content of an HTML fragment, collapsing
// the markup HH embeds in vacancy descriptions.
func stripHTML(fragment string) string {
	if fragment == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}

	return strings.TrimSpace(strings.Join(strings.Fields(doc.Text()), " "))
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

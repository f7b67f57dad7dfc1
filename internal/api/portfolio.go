package api

import (
	"net/http"

	"github.com/lilswapnil/scotty/internal/portfolio"
)

// Projects handles GET /api/projects.
func (h *Handler) Projects(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, portfolio.Projects)
}

// Skills handles GET /api/skills. Groups are returned in display order.
func (h *Handler) Skills(w http.ResponseWriter, r *http.Request) {
	type group struct {
		Category string            `json:"category"`
		Skills   []portfolio.Skill `json:"skills"`
	}
	out := make([]group, 0, len(portfolio.SkillGroupOrder))
	for _, category := range portfolio.SkillGroupOrder {
		if skills, ok := portfolio.SkillSet[category]; ok {
			out = append(out, group{Category: category, Skills: skills})
		}
	}
	JSON(w, http.StatusOK, out)
}

// Credentials handles GET /api/credentials.
func (h *Handler) Credentials(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, portfolio.Credentials{
		Education:    portfolio.EducationHistory,
		Certificates: portfolio.Certificates,
	})
}

// Experience handles GET /api/experience.
func (h *Handler) Experience(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, portfolio.WorkExperience)
}

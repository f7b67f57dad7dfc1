package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lilswapnil/scotty/internal/portfolio"
)

func TestProjects(t *testing.T) {
	h := NewHandler(&fakeCompleter{}, "p", nil)

	w := httptest.NewRecorder()
	h.Projects(w, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var got []portfolio.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, len(portfolio.Projects))
	require.Equal(t, portfolio.Projects[0].ID, got[0].ID)
}

func TestSkills_GroupsInDisplayOrder(t *testing.T) {
	h := NewHandler(&fakeCompleter{}, "p", nil)

	w := httptest.NewRecorder()
	h.Skills(w, httptest.NewRequest(http.MethodGet, "/api/skills", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var got []struct {
		Category string            `json:"category"`
		Skills   []portfolio.Skill `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, len(portfolio.SkillGroupOrder))
	for i, g := range got {
		require.Equal(t, portfolio.SkillGroupOrder[i], g.Category)
		require.NotEmpty(t, g.Skills)
	}
}

func TestCredentials(t *testing.T) {
	h := NewHandler(&fakeCompleter{}, "p", nil)

	w := httptest.NewRecorder()
	h.Credentials(w, httptest.NewRequest(http.MethodGet, "/api/credentials", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var got portfolio.Credentials
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.NotEmpty(t, got.Education)
	require.NotEmpty(t, got.Certificates)
}

func TestExperience(t *testing.T) {
	h := NewHandler(&fakeCompleter{}, "p", nil)

	w := httptest.NewRecorder()
	h.Experience(w, httptest.NewRequest(http.MethodGet, "/api/experience", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var got []portfolio.Experience
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, len(portfolio.WorkExperience))
}

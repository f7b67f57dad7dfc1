package portfolio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectByID(t *testing.T) {
	p, ok := ProjectByID("musix")
	require.True(t, ok)
	require.Equal(t, "Musix", p.Title)

	_, ok = ProjectByID("does-not-exist")
	require.False(t, ok)
}

// The gallery carries the full project catalog, not just the recent entries.
func TestProjectsCatalogComplete(t *testing.T) {
	require.Len(t, Projects, 9)
	for _, id := range []string{
		"musix", "movizzz", "trends-analytics", "wildlife-monitoring",
		"university-erp", "llm-from-scratch", "lms-using-agenticai",
		"ai-assistant", "book-scraper",
	} {
		_, ok := ProjectByID(id)
		require.True(t, ok, "project %q missing from catalog", id)
	}
}

func TestCertificatesComplete(t *testing.T) {
	require.Len(t, Certificates, 16)

	byID := make(map[string]Certificate, len(Certificates))
	for _, c := range Certificates {
		require.NotEmpty(t, c.ID)
		require.NotEmpty(t, c.Name)
		require.NotEmpty(t, c.Issuer)
		byID[c.ID] = c
	}
	require.Len(t, byID, 16, "certificate ids must be unique")

	stanford, ok := byID["stanford-divide-and-conquer-2024-12"]
	require.True(t, ok)
	require.Equal(t, "U26E67KZ7XT5", stanford.CredentialID)

	google, ok := byID["google-technical-support-fundamentals-2021-05"]
	require.True(t, ok)
	require.Equal(t, "Google", google.Issuer)
}

func TestSkillSetCarriesAllEntries(t *testing.T) {
	names := make(map[string]bool)
	for _, skills := range SkillSet {
		for _, s := range skills {
			names[s.Name] = true
		}
	}
	for _, want := range []string{
		"Bootstrap", "Express.js", "Django", "Firebase",
		"Apache", "Notion", "Slack", "REST API",
	} {
		require.True(t, names[want], "skill %q missing", want)
	}
}

func TestSkillGroupOrderMatchesSkillSet(t *testing.T) {
	require.Len(t, SkillGroupOrder, len(SkillSet))
	for _, category := range SkillGroupOrder {
		require.Contains(t, SkillSet, category)
		require.NotEmpty(t, SkillSet[category])
	}
}

// Every skill icon must resolve through the fixed lookup table.
func TestAllSkillIconsResolve(t *testing.T) {
	for category, skills := range SkillSet {
		for _, s := range skills {
			_, ok := IconClasses[s.Icon]
			require.True(t, ok, "icon %q in %q has no style entry", s.Icon, category)
		}
	}
}

func TestIconClassFallback(t *testing.T) {
	require.Equal(t, defaultIconClass, IconClass("no-such-icon"))
	require.Equal(t, "bg-[#61dafb]", IconClass("react"))
}

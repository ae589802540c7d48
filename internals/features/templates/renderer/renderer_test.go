// file: internals/features/templates/renderer/renderer_test.go
package renderer

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	profileModel "portfolioku_backend/internals/features/portfolio/profile/model"
	skillModel "portfolioku_backend/internals/features/portfolio/skills/model"
	timelineModel "portfolioku_backend/internals/features/portfolio/timeline/model"
	"portfolioku_backend/internals/features/templates/registry"
	tenantModel "portfolioku_backend/internals/features/templates/user_profiles/model"
)

func tenantFor(id registry.TemplateID) *tenantModel.UserProfileModel {
	up := tenantModel.NewDefault(uuid.New(), "tester")
	up.SelectedTemplate = string(id)
	return up
}

func TestRenderDispatchesByTemplate(t *testing.T) {
	tests := []struct {
		id      registry.TemplateID
		heading string
	}{
		{registry.TemplateDeveloper, "Technical Skills"},
		{registry.TemplateDeveloper, "Featured Projects"},
		{registry.TemplateDesigner, "Selected Works"},
		{registry.TemplateDesigner, "Design Tools"},
		{registry.TemplateFinance, "Professional Summary"},
		{registry.TemplateFinance, "Industries Served"},
		{registry.TemplateProfessional, "Core Expertise"},
		{registry.TemplateProfessional, "Career History"},
	}
	for _, tc := range tests {
		t.Run(string(tc.id)+"_"+tc.heading, func(t *testing.T) {
			html, err := Render(tc.id, tenantFor(tc.id), PortfolioData{})
			require.NoError(t, err)
			assert.Contains(t, html, tc.heading)
		})
	}
}

func TestRenderUnknownTemplateFallsBackToDeveloper(t *testing.T) {
	html, err := Render(registry.TemplateID("retired-layout"), tenantFor("retired-layout"), PortfolioData{})
	require.NoError(t, err)
	assert.Contains(t, html, "Technical Skills")
}

func TestRenderPlaceholdersWhenProfileMissing(t *testing.T) {
	html, err := Render(registry.TemplateDeveloper, tenantFor(registry.TemplateDeveloper), PortfolioData{})
	require.NoError(t, err)
	assert.Contains(t, html, "Full Stack Developer")
	assert.Contains(t, html, "Available for work")

	html, err = Render(registry.TemplateFinance, tenantFor(registry.TemplateFinance), PortfolioData{})
	require.NoError(t, err)
	assert.Contains(t, html, "Certified Public Accountant")
}

func TestRenderUsesProfileOverPlaceholders(t *testing.T) {
	resume := "https://example.com/cv.pdf"
	data := PortfolioData{
		Profile: &profileModel.ProfileModel{
			Name:      "Ada Lovelace",
			Role:      "Analytical Engineer",
			Bio:       "Long bio",
			ShortBio:  "Short bio",
			Location:  "London",
			ResumeURL: &resume,
		},
	}
	html, err := Render(registry.TemplateDeveloper, tenantFor(registry.TemplateDeveloper), data)
	require.NoError(t, err)
	assert.Contains(t, html, "Ada Lovelace")
	assert.Contains(t, html, "Analytical Engineer")
	assert.Contains(t, html, "https://example.com/cv.pdf")
	assert.NotContains(t, html, "Full Stack Developer")
}

func TestRenderThemeVariables(t *testing.T) {
	// default designer colors land in the CSS custom properties
	html, err := Render(registry.TemplateDesigner, tenantFor(registry.TemplateDesigner), PortfolioData{})
	require.NoError(t, err)
	assert.Contains(t, html, "--template-primary: #8B5CF6")
	assert.Contains(t, html, "--template-accent: #F59E0B")

	// a tenant override wins over the catalog
	up := tenantFor(registry.TemplateDesigner)
	cust := up.Customizations.Data()
	cust.ColorScheme.Primary = "#000000"
	up.Customizations = datatypes.NewJSONType(cust)

	html, err = Render(registry.TemplateDesigner, up, PortfolioData{})
	require.NoError(t, err)
	assert.Contains(t, html, "--template-primary: #000000")
	assert.Contains(t, html, "--template-accent: #F59E0B")
}

func TestRenderLayoutFlagGating(t *testing.T) {
	up := tenantFor(registry.TemplateDesigner)
	html, err := Render(registry.TemplateDesigner, up, PortfolioData{})
	require.NoError(t, err)
	assert.NotContains(t, html, "Client Love")

	cust := up.Customizations.Data()
	cust.Layout.ShowTestimonials = true
	up.Customizations = datatypes.NewJSONType(cust)

	html, err = Render(registry.TemplateDesigner, up, PortfolioData{})
	require.NoError(t, err)
	assert.Contains(t, html, "Client Love")
}

func TestRenderCurrentExperienceShowsPresent(t *testing.T) {
	data := PortfolioData{
		Experiences: []timelineModel.ExperienceModel{
			{
				Company:   "Acme",
				Role:      "Engineer",
				StartDate: time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
				Current:   true,
			},
		},
	}
	html, err := Render(registry.TemplateDeveloper, tenantFor(registry.TemplateDeveloper), data)
	require.NoError(t, err)
	assert.Contains(t, html, "Mar 2022")
	assert.Contains(t, html, "Present")
}

func TestRenderGroupsSkillsByCategory(t *testing.T) {
	data := PortfolioData{
		Skills: []skillModel.SkillModel{
			{Name: "PostgreSQL", Category: "Database", Proficiency: 80},
			{Name: "Go", Category: "Backend", Proficiency: 90},
			{Name: "Fiber", Category: "Backend", Proficiency: 85},
		},
	}
	groups := groupSkills(data.Skills)
	require.Len(t, groups, 2)
	assert.Equal(t, "Backend", groups[0].Category)
	assert.Equal(t, []string{"Fiber", "Go"}, []string{groups[0].Skills[0].Name, groups[0].Skills[1].Name})
	assert.Equal(t, "Database", groups[1].Category)
}

func TestRenderNilUserProfile(t *testing.T) {
	// legacy rows can reference a tenant that no longer resolves; the page
	// must still render with catalog defaults
	html, err := Render(registry.TemplateDeveloper, nil, PortfolioData{})
	require.NoError(t, err)
	assert.Contains(t, html, "--template-primary: #3B82F6")
	assert.Contains(t, html, "Professional Portfolio")
}

// file: internals/features/templates/renderer/renderer.go
//
// Pure presentation: Render projects a resolved tenant profile plus the shared
// domain data into one of the four HTML layouts. No fetching, no writes; the
// page controller loads everything once and hands it in.
package renderer

import (
	"bytes"
	"sort"

	projectModel "portfolioku_backend/internals/features/portfolio/projects/model"
	skillModel "portfolioku_backend/internals/features/portfolio/skills/model"
	socialModel "portfolioku_backend/internals/features/portfolio/social_links/model"
	timelineModel "portfolioku_backend/internals/features/portfolio/timeline/model"
	"portfolioku_backend/internals/features/templates/registry"
	tenantModel "portfolioku_backend/internals/features/templates/user_profiles/model"
	profileModel "portfolioku_backend/internals/features/portfolio/profile/model"
)

// PortfolioData is the immutable domain-data bundle every layout renders from.
type PortfolioData struct {
	Profile     *profileModel.ProfileModel
	Skills      []skillModel.SkillModel
	Projects    []projectModel.ProjectModel
	Experiences []timelineModel.ExperienceModel
	Educations  []timelineModel.EducationModel
	SocialLinks []socialModel.SocialLinkModel
}

// Render dispatches on the template id. The switch is the single place a new
// template has to be wired; an unknown/legacy id falls back to the developer
// layout instead of failing (never show a blank page).
func Render(id registry.TemplateID, up *tenantModel.UserProfileModel, data PortfolioData) (string, error) {
	view := buildView(id, up, data)

	var tpl = developerTpl
	switch id {
	case registry.TemplateDesigner:
		tpl = designerTpl
	case registry.TemplateFinance:
		tpl = financeTpl
	case registry.TemplateProfessional:
		tpl = professionalTpl
	case registry.TemplateDeveloper:
		tpl = developerTpl
	default:
		tpl = developerTpl
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// NotFoundPage is the HTML body served when no tenant owns the requested
// username.
func NotFoundPage() string {
	return notFoundPage
}

/* ===============================
   View model
=================================*/

type themeVars struct {
	Primary   string
	Secondary string
	Accent    string
}

type skillGroup struct {
	Category string
	Skills   []skillModel.SkillModel
}

type layoutView struct {
	Theme themeVars
	SEO   tenantModel.SEOSettings
	Flags tenantModel.LayoutFlags

	// profile fields with layout-specific placeholder fallbacks
	Name         string
	Role         string
	Bio          string
	ShortBio     string
	Location     string
	ProfileImage string
	ResumeURL    string

	SkillGroups      []skillGroup
	Projects         []projectModel.ProjectModel
	FeaturedProjects []projectModel.ProjectModel
	Experiences      []timelineModel.ExperienceModel
	Educations       []timelineModel.EducationModel
	SocialLinks      []socialModel.SocialLinkModel
}

// placeholder copy per layout, matching the public pages' fallbacks
type placeholders struct {
	name, role, shortBio, location string
}

var layoutPlaceholders = map[registry.TemplateID]placeholders{
	registry.TemplateDeveloper: {
		name:     "Developer",
		role:     "Full Stack Developer",
		shortBio: "Passionate about creating amazing digital experiences with modern technologies.",
		location: "Available for work",
	},
	registry.TemplateDesigner: {
		name:     "Creative Designer",
		role:     "UI/UX Designer & Creative Director",
		shortBio: "Design is not just what it looks like — design is how it works.",
		location: "Available worldwide",
	},
	registry.TemplateFinance: {
		name:     "Finance Professional",
		role:     "Certified Public Accountant & Financial Advisor",
		shortBio: "Helping businesses and individuals secure their financial future.",
		location: "Available for consultation",
	},
	registry.TemplateProfessional: {
		name:     "Professional",
		role:     "Consultant",
		shortBio: "Bringing experience and dedication to every engagement.",
		location: "Available for work",
	},
}

func buildView(id registry.TemplateID, up *tenantModel.UserProfileModel, data PortfolioData) layoutView {
	ph, ok := layoutPlaceholders[id]
	if !ok {
		ph = layoutPlaceholders[registry.TemplateDeveloper]
	}

	view := layoutView{
		Theme:            resolveTheme(id, up),
		Name:             ph.name,
		Role:             ph.role,
		ShortBio:         ph.shortBio,
		Location:         ph.location,
		SkillGroups:      groupSkills(data.Skills),
		Projects:         data.Projects,
		FeaturedProjects: featuredOf(data.Projects),
		Experiences:      data.Experiences,
		Educations:       data.Educations,
		SocialLinks:      data.SocialLinks,
	}

	if up != nil {
		view.SEO = up.SEOSettings.Data()
		view.Flags = up.Customizations.Data().Layout
	}
	if view.SEO.Title == "" {
		view.SEO.Title = "Professional Portfolio"
	}

	if p := data.Profile; p != nil {
		if p.Name != "" {
			view.Name = p.Name
		}
		if p.Role != "" {
			view.Role = p.Role
		}
		if p.ShortBio != "" {
			view.ShortBio = p.ShortBio
		}
		if p.Location != "" {
			view.Location = p.Location
		}
		view.Bio = p.Bio
		view.ProfileImage = p.ProfileImage
		if p.ResumeURL != nil {
			view.ResumeURL = *p.ResumeURL
		}
	}

	return view
}

// resolveTheme prefers the tenant's customization, then the template's
// registry defaults.
func resolveTheme(id registry.TemplateID, up *tenantModel.UserProfileModel) themeVars {
	def, ok := registry.Lookup(id)
	if !ok {
		def = registry.Default()
	}
	theme := themeVars{
		Primary:   def.ColorScheme.Primary,
		Secondary: def.ColorScheme.Secondary,
		Accent:    def.ColorScheme.Accent,
	}
	if up == nil {
		return theme
	}
	cs := up.Customizations.Data().ColorScheme
	if cs.Primary != "" {
		theme.Primary = cs.Primary
	}
	if cs.Secondary != "" {
		theme.Secondary = cs.Secondary
	}
	if cs.Accent != "" {
		theme.Accent = cs.Accent
	}
	return theme
}

// groupSkills buckets by category, categories and names both ascending.
// The list endpoint already sorts this way; re-sorting keeps the renderer
// correct for any caller.
func groupSkills(skills []skillModel.SkillModel) []skillGroup {
	byCat := map[string][]skillModel.SkillModel{}
	for _, s := range skills {
		byCat[s.Category] = append(byCat[s.Category], s)
	}

	cats := make([]string, 0, len(byCat))
	for c := range byCat {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	groups := make([]skillGroup, 0, len(cats))
	for _, c := range cats {
		ss := byCat[c]
		sort.Slice(ss, func(i, j int) bool { return ss[i].Name < ss[j].Name })
		groups = append(groups, skillGroup{Category: c, Skills: ss})
	}
	return groups
}

func featuredOf(projects []projectModel.ProjectModel) []projectModel.ProjectModel {
	out := make([]projectModel.ProjectModel, 0, len(projects))
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

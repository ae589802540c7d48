// file: internals/features/templates/registry/registry.go
//
// Fixed catalog of the portfolio templates. Pure data: the selection UI lists
// it, the tenant resolver validates against it and sources its defaults from
// it. Adding a template means one entry here, a default color scheme, and a
// renderer case.
package registry

// TemplateID is the closed set of layout identifiers.
type TemplateID string

const (
	TemplateDeveloper    TemplateID = "developer"
	TemplateDesigner     TemplateID = "designer"
	TemplateFinance      TemplateID = "finance"
	TemplateProfessional TemplateID = "professional"
)

type ColorScheme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

type Template struct {
	ID          TemplateID  `json:"id"`
	Name        string      `json:"name"`
	TargetRole  string      `json:"target_role"`
	Description string      `json:"description"`
	Sections    []string    `json:"sections"`
	ColorScheme ColorScheme `json:"color_scheme"`
	Features    []string    `json:"features"`
	Preview     string      `json:"preview"`
}

var templates = []Template{
	{
		ID:          TemplateDeveloper,
		Name:        "Developer Portfolio",
		TargetRole:  "Software Developer",
		Description: "Perfect for developers, engineers, and tech professionals",
		Sections:    []string{"Hero", "Skills", "Projects", "Experience", "Education", "Blog", "Contact"},
		ColorScheme: ColorScheme{Primary: "#3B82F6", Secondary: "#1E293B", Accent: "#10B981"},
		Features:    []string{"GitHub Integration", "Code Snippets", "Tech Stack Display", "Project Demos"},
		Preview:     "/templates/developer-preview.jpg",
	},
	{
		ID:          TemplateDesigner,
		Name:        "Designer Portfolio",
		TargetRole:  "UI/UX Designer",
		Description: "Showcase your creative work and design process",
		Sections:    []string{"Hero", "About", "Case Studies", "Gallery", "Tools", "Testimonials", "Contact"},
		ColorScheme: ColorScheme{Primary: "#8B5CF6", Secondary: "#F3F4F6", Accent: "#F59E0B"},
		Features:    []string{"Case Study Layouts", "Image Galleries", "Design Process", "Tool Showcase"},
		Preview:     "/templates/designer-preview.jpg",
	},
	{
		ID:          TemplateFinance,
		Name:        "Finance Professional",
		TargetRole:  "Accountant / Finance",
		Description: "Professional template for finance and accounting experts",
		Sections:    []string{"Summary", "Certifications", "Services", "Experience", "Industries", "Achievements", "Contact"},
		ColorScheme: ColorScheme{Primary: "#1E40AF", Secondary: "#F8FAFC", Accent: "#059669"},
		Features:    []string{"Certification Display", "Service Listings", "Industry Experience", "Professional Summary"},
		Preview:     "/templates/finance-preview.jpg",
	},
	{
		ID:          TemplateProfessional,
		Name:        "General Professional",
		TargetRole:  "Marketing / Manager / Consultant",
		Description: "Versatile template for various professional roles",
		Sections:    []string{"Overview", "Expertise", "Case Studies", "History", "Testimonials", "Contact"},
		ColorScheme: ColorScheme{Primary: "#DC2626", Secondary: "#F9FAFB", Accent: "#7C3AED"},
		Features:    []string{"Case Studies", "Testimonials", "Achievement Highlights", "Professional Timeline"},
		Preview:     "/templates/professional-preview.jpg",
	},
}

// All returns the catalog in display order. Copied so handlers serializing it
// can never mutate the source of truth.
func All() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// Lookup returns the descriptor for id.
func Lookup(id TemplateID) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// IsValid reports whether id names a known template.
func IsValid(id TemplateID) bool {
	_, ok := Lookup(id)
	return ok
}

// Default returns the developer template. The tenant resolver takes its
// fallback colors from here, there is no second copy of the defaults.
func Default() Template {
	t, _ := Lookup(TemplateDeveloper)
	return t
}

// file: internals/features/templates/renderer/templates.go
package renderer

import (
	"html/template"
	"time"
)

var tplFuncs = template.FuncMap{
	"fmtDate": func(t time.Time) string { return t.Format("Jan 2006") },
	"fmtEnd": func(end *time.Time, current bool) string {
		if current || end == nil {
			return "Present"
		}
		return end.Format("Jan 2006")
	},
}

func mustLayout(name, body string) *template.Template {
	return template.Must(template.New(name).Funcs(tplFuncs).Parse(body))
}

var (
	developerTpl    = mustLayout("developer", developerLayout)
	designerTpl     = mustLayout("designer", designerLayout)
	financeTpl      = mustLayout("finance", financeLayout)
	professionalTpl = mustLayout("professional", professionalLayout)
)

// shared head: SEO meta plus the theme exposed as CSS custom properties so
// each layout styles itself off --template-* only.
const layoutHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.SEO.Title}}</title>
<meta name="description" content="{{.SEO.Description}}">
<style>
:root {
  --template-primary: {{.Theme.Primary}};
  --template-secondary: {{.Theme.Secondary}};
  --template-accent: {{.Theme.Accent}};
}
body { margin: 0; font-family: system-ui, sans-serif; }
h1 { color: var(--template-primary); }
h2 { color: var(--template-primary); border-bottom: 2px solid var(--template-accent); padding-bottom: .25rem; }
a { color: var(--template-accent); }
section { max-width: 960px; margin: 0 auto; padding: 2rem 1rem; }
header.hero { background: var(--template-secondary); padding: 4rem 1rem; text-align: center; }
.badge { display: inline-block; background: var(--template-secondary); border-radius: 9999px; padding: .25rem .75rem; margin: .125rem; }
.meter { background: var(--template-secondary); border-radius: 4px; height: 8px; overflow: hidden; }
.meter > span { display: block; height: 100%; background: var(--template-primary); }
</style>
</head>
<body>`

const layoutFoot = `
<footer>
<section>
<nav>
{{range .SocialLinks}}<a href="{{.URL}}" rel="noopener">{{.Platform}}</a> {{end}}
</nav>
</section>
</footer>
</body>
</html>`

const developerLayout = layoutHead + `
<header class="hero">
<h1>{{.Name}}</h1>
<p>{{.Role}}</p>
<p>{{.ShortBio}}</p>
<p>{{.Location}}</p>
{{if .ResumeURL}}<p><a href="{{.ResumeURL}}">Download Resume</a></p>{{end}}
</header>

<section id="about">
<h2>About Me</h2>
<p>{{.Bio}}</p>
</section>

<section id="skills">
<h2>Technical Skills</h2>
{{range .SkillGroups}}
<h3>{{.Category}}</h3>
<ul>
{{range .Skills}}
<li>{{.Name}} <div class="meter"><span style="width: {{.Proficiency}}%"></span></div></li>
{{end}}
</ul>
{{end}}
</section>

<section id="projects">
<h2>Featured Projects</h2>
{{range .FeaturedProjects}}
<article>
<h3>{{.Title}}</h3>
<p>{{.Description}}</p>
<p>{{range .Technologies}}<span class="badge">{{.}}</span>{{end}}</p>
{{if .GithubURL}}<a href="{{.GithubURL}}">Code</a>{{end}}
{{if .LiveURL}}<a href="{{.LiveURL}}">Live Demo</a>{{end}}
</article>
{{end}}
</section>

<section id="experience">
<h2>Work Experience</h2>
{{range .Experiences}}
<article>
<h3>{{.Role}} · {{.Company}}</h3>
<p>{{fmtDate .StartDate}} – {{fmtEnd .EndDate .Current}}</p>
<p>{{.Description}}</p>
</article>
{{end}}
</section>

<section id="education">
<h2>Education</h2>
{{range .Educations}}
<article>
<h3>{{.Degree}} in {{.Field}}</h3>
<p>{{.School}} · {{fmtDate .StartDate}} – {{fmtEnd .EndDate .Current}}</p>
{{if .GPA}}<p>GPA: {{.GPA}}</p>{{end}}
</article>
{{end}}
</section>

{{if .Flags.ShowBlog}}
<section id="blog">
<h2>Latest Articles</h2>
<p>Coming soon.</p>
</section>
{{end}}
` + layoutFoot

const designerLayout = layoutHead + `
<header class="hero">
<h1>{{.Name}}</h1>
<p>{{.Role}}</p>
<p>{{.ShortBio}}</p>
</header>

<section id="about">
<h2>About</h2>
<p>{{.Bio}}</p>
<p>{{.Location}}</p>
</section>

<section id="portfolio">
<h2>Selected Works</h2>
{{range .Projects}}
<article>
<h3>{{.Title}}</h3>
{{if .Image}}<img src="{{.Image}}" alt="{{.Title}}">{{end}}
<p>{{.Description}}</p>
{{if .LiveURL}}<a href="{{.LiveURL}}">View Project</a>{{end}}
</article>
{{end}}
</section>

<section id="skills">
<h2>Design Tools</h2>
{{range .SkillGroups}}
<h3>{{.Category}}</h3>
<p>{{range .Skills}}<span class="badge">{{.Name}}</span>{{end}}</p>
{{end}}
</section>

{{if .Flags.ShowTestimonials}}
<section id="testimonials">
<h2>Client Love</h2>
<p>What clients say about working together.</p>
</section>
{{end}}

<section id="experience">
<h2>Experience</h2>
{{range .Experiences}}
<article>
<h3>{{.Role}} · {{.Company}}</h3>
<p>{{fmtDate .StartDate}} – {{fmtEnd .EndDate .Current}}</p>
</article>
{{end}}
</section>
` + layoutFoot

const financeLayout = layoutHead + `
<header class="hero">
<h1>{{.Name}}</h1>
<p>{{.Role}}</p>
<p>{{.Location}}</p>
</header>

<section id="summary">
<h2>Professional Summary</h2>
<p>{{if .Bio}}{{.Bio}}{{else}}{{.ShortBio}}{{end}}</p>
</section>

<section id="services">
<h2>Professional Services</h2>
{{range .SkillGroups}}
<h3>{{.Category}}</h3>
<ul>
{{range .Skills}}<li>{{.Name}}</li>{{end}}
</ul>
{{end}}
</section>

{{if .Flags.ShowCertifications}}
<section id="certifications">
<h2>Certifications &amp; Licenses</h2>
<ul>
{{range .Educations}}<li>{{.Degree}} — {{.School}}</li>{{end}}
</ul>
</section>
{{end}}

<section id="experience">
<h2>Professional Experience</h2>
{{range .Experiences}}
<article>
<h3>{{.Role}}, {{.Company}}</h3>
<p>{{fmtDate .StartDate}} – {{fmtEnd .EndDate .Current}}</p>
<p>{{.Description}}</p>
</article>
{{end}}
</section>

<section id="industries">
<h2>Industries Served</h2>
{{range .Projects}}
<article>
<h3>{{.Title}}</h3>
<p>{{.Description}}</p>
</article>
{{end}}
</section>
` + layoutFoot

const professionalLayout = layoutHead + `
<header class="hero">
<h1>{{.Name}}</h1>
<p>{{.Role}}</p>
<p>{{.Location}}</p>
{{if .ResumeURL}}<p><a href="{{.ResumeURL}}">Resume</a></p>{{end}}
</header>

<section id="overview">
<h2>Professional Overview</h2>
<p>{{if .Bio}}{{.Bio}}{{else}}{{.ShortBio}}{{end}}</p>
</section>

<section id="expertise">
<h2>Core Expertise</h2>
{{range .SkillGroups}}
<h3>{{.Category}}</h3>
<p>{{range .Skills}}<span class="badge">{{.Name}}</span>{{end}}</p>
{{end}}
</section>

<section id="cases">
<h2>Case Studies</h2>
{{range .Projects}}
<article>
<h3>{{.Title}}</h3>
<p>{{.Description}}</p>
{{if .LiveURL}}<a href="{{.LiveURL}}">Details</a>{{end}}
</article>
{{end}}
</section>

<section id="career">
<h2>Career History</h2>
{{range .Experiences}}
<article>
<h3>{{.Role}} — {{.Company}}</h3>
<p>{{fmtDate .StartDate}} – {{fmtEnd .EndDate .Current}}</p>
<p>{{.Description}}</p>
</article>
{{end}}
</section>

{{if .Flags.ShowTestimonials}}
<section id="testimonials">
<h2>Testimonials</h2>
<p>References available on request.</p>
</section>
{{end}}

<section id="education">
<h2>Education</h2>
{{range .Educations}}
<article>
<h3>{{.Degree}} in {{.Field}}</h3>
<p>{{.School}} · {{fmtDate .StartDate}} – {{fmtEnd .EndDate .Current}}</p>
</article>
{{end}}
</section>
` + layoutFoot

// served for GET /portfolio/:username when no tenant owns that username
const notFoundPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Portfolio not found</title>
<style>body { font-family: system-ui, sans-serif; text-align: center; padding: 6rem 1rem; }</style>
</head>
<body>
<h1>Portfolio not found</h1>
<p>There is no portfolio published at this address.</p>
</body>
</html>`

// Copyright Punit Mishra, 2026. All rights reserved.

package resume

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/punitmishra/publish-engine/pkg/types"
)

// resumeTemplate renders the full document with inline styles only, so
// the output string is self-contained: no stylesheet, no scripts, ready
// for a PDF rasterizer or a browser print dialog. List fields render in
// input order; nothing is sorted or filtered.
var resumeTemplate = template.Must(template.New("resume").Funcs(template.FuncMap{
	"join": func(items []string) string { return strings.Join(items, ", ") },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.PersonalInfo.Name}} — Resume</title>
</head>
<body style="font-family: Georgia, 'Times New Roman', serif; color: #1a1a1a; max-width: 800px; margin: 0 auto; padding: 40px 32px; line-height: 1.5;">
<header style="border-bottom: 2px solid #1a1a1a; padding-bottom: 16px; margin-bottom: 24px;">
<h1 style="margin: 0 0 4px 0; font-size: 28px;">{{.PersonalInfo.Name}}</h1>
{{if .PersonalInfo.Title}}<p style="margin: 0 0 8px 0; font-size: 16px; color: #444;">{{.PersonalInfo.Title}}</p>{{end}}
<p style="margin: 0; font-size: 13px; color: #555;">{{.PersonalInfo.Email}}{{if .PersonalInfo.Phone}} · {{.PersonalInfo.Phone}}{{end}}{{if .PersonalInfo.Location}} · {{.PersonalInfo.Location}}{{end}}</p>
{{if or .PersonalInfo.Website .PersonalInfo.GitHub .PersonalInfo.LinkedIn}}<p style="margin: 4px 0 0 0; font-size: 13px; color: #555;">{{.PersonalInfo.Website}}{{if .PersonalInfo.GitHub}} · {{.PersonalInfo.GitHub}}{{end}}{{if .PersonalInfo.LinkedIn}} · {{.PersonalInfo.LinkedIn}}{{end}}</p>{{end}}
</header>
{{if .Summary}}<section style="margin-bottom: 24px;">
<h2 style="font-size: 16px; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #ccc; padding-bottom: 4px;">Summary</h2>
<p style="margin: 8px 0 0 0; font-size: 14px;">{{.Summary}}</p>
</section>{{end}}
{{if .Experience}}<section style="margin-bottom: 24px;">
<h2 style="font-size: 16px; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #ccc; padding-bottom: 4px;">Experience</h2>
{{range .Experience}}<div style="margin: 12px 0 0 0;">
<p style="margin: 0; font-size: 15px;"><strong>{{.Role}}</strong> — {{.Company}}{{if .Location}}, {{.Location}}{{end}}</p>
{{if .Period}}<p style="margin: 0; font-size: 13px; color: #555;">{{.Period}}</p>{{end}}
{{if .Achievements}}<ul style="margin: 6px 0 0 0; padding-left: 20px; font-size: 14px;">
{{range .Achievements}}<li style="margin-bottom: 2px;">{{.}}</li>
{{end}}</ul>{{end}}
{{if .TechStack}}<p style="margin: 6px 0 0 0; font-size: 13px; color: #555;"><em>Tech: {{join .TechStack}}</em></p>{{end}}
</div>
{{end}}</section>{{end}}
{{if .Education}}<section style="margin-bottom: 24px;">
<h2 style="font-size: 16px; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #ccc; padding-bottom: 4px;">Education</h2>
{{range .Education}}<div style="margin: 12px 0 0 0;">
<p style="margin: 0; font-size: 15px;"><strong>{{.Degree}}</strong> — {{.Institution}}</p>
{{if .Period}}<p style="margin: 0; font-size: 13px; color: #555;">{{.Period}}</p>{{end}}
{{if .Specializations}}<p style="margin: 4px 0 0 0; font-size: 13px; color: #555;">{{join .Specializations}}</p>{{end}}
</div>
{{end}}</section>{{end}}
{{if .Skills}}<section style="margin-bottom: 24px;">
<h2 style="font-size: 16px; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #ccc; padding-bottom: 4px;">Skills</h2>
<ul style="margin: 8px 0 0 0; padding-left: 20px; font-size: 14px;">
{{range .Skills}}<li style="margin-bottom: 2px;"><strong>{{.Name}}:</strong> {{join .Skills}}</li>
{{end}}</ul>
</section>{{end}}
{{if .Certifications}}<section style="margin-bottom: 24px;">
<h2 style="font-size: 16px; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #ccc; padding-bottom: 4px;">Certifications</h2>
<ul style="margin: 8px 0 0 0; padding-left: 20px; font-size: 14px;">
{{range .Certifications}}<li style="margin-bottom: 2px;">{{.Name}}{{if .Issuer}} — {{.Issuer}}{{end}}{{if .Year}} ({{.Year}}){{end}}</li>
{{end}}</ul>
</section>{{end}}
</body>
</html>
`))

// BuildHTML renders data into the resume document. The output is
// deterministic: identical input yields a byte-identical string.
func BuildHTML(data types.ResumeData) (string, error) {
	var b strings.Builder
	if err := resumeTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering resume: %w", err)
	}
	return b.String(), nil
}

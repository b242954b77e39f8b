package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// Transactional templates rendered by the email worker. Kept deliberately
// small; anything fancier belongs in the sending provider.
var templates = map[string]*template.Template{
	"welcome": template.Must(template.New("welcome").Parse(`
<h2>Welcome to DevConnect{{if .Name}}, {{.Name}}{{end}}!</h2>
<p>Your account is ready. Create your developer profile, share posts and
connect with other developers.</p>
`)),
}

// Subjects per template name.
var subjects = map[string]string{
	"welcome": "Welcome to DevConnect",
}

// Render produces subject and HTML body for a named template.
func Render(name string, data map[string]any) (subject, html string, err error) {
	tpl, ok := templates[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subjects[name], buf.String(), nil
}

package adapthttp

import (
	"html/template"
	"io"
	"log"
	"net/http"
	"time"
)

// View models for the HTML renders. User-supplied text goes through
// html/template so it is escaped on output.

type pasteView struct {
	Text      string
	CreatedAt string
}

type pasteItem struct {
	ID        string
	CreatedAt string
}

type userPastesView struct {
	Username string
	Pastes   []pasteItem
}

var (
	pasteTmpl = template.Must(template.New("paste").Parse(
		`<h1>Paste</h1><p>Created at: {{.CreatedAt}}</p><pre>{{.Text}}</pre>`))

	userPastesTmpl = template.Must(template.New("user").Parse(
		`<h1>Pastes by {{.Username}}</h1><ul>{{range .Pastes}}<li><a href="/paste/{{.ID}}">{{.ID}}</a> - {{.CreatedAt}}</li>{{end}}</ul>`))

	noPastesTmpl = template.Must(template.New("nopastes").Parse(
		`<h2>User {{.}} has no pastes (or does not exist)</h2>`))
)

const pasteFormPage = `<h1>Add a paste</h1>
<form method="POST" action="/paste">
    <textarea name="text" rows="10" cols="60"></textarea><br>
    <button type="submit">Submit</button>
</form>`

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05 MST")
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func renderTemplate(w http.ResponseWriter, status int, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.Execute(w, data); err != nil {
		log.Printf("render %s: %v", tmpl.Name(), err)
	}
}

// Package render produces the HTML fragments shown to users: input prompts
// for both query kinds and the formatted answers. Every label is escaped.
package render

import (
	"bytes"
	"html/template"

	"github.com/katalvlaran/lvroute/query"
)

const fragments = `
{{define "path-prompt" -}}
<div><label for="start">Start Location:</label><input type="text" id="start" name="start"><label for="end">Destination:</label><input type="text" id="end" name="end"><button onclick="findShortestPath()">Find Shortest Path</button></div>
{{- end}}

{{define "nearest-prompt" -}}
<div><label for="from">Starting Location:</label><input type="text" id="from" name="from"><button onclick="findTenClosestDestinations()">Ten Closest Destinations</button></div>
{{- end}}

{{define "path-response" -}}
{{if .Err -}}
<p>ERROR: Couldn't find the shortest path between {{.Start}} and {{.End}}. {{.Err}}</p>
{{- else if not .Locations -}}
<p>No path found between {{.Start}} and {{.End}}.</p>
{{- else -}}
<p>Shortest path from {{.Start}} to {{.End}}:</p><ol>{{range .Locations}}<li>{{.}}</li>{{end}}</ol><p>Total travel time: {{printf "%.2f" .Total}} units.</p>
{{- end}}
{{- end}}

{{define "nearest-response" -}}
{{if .Err -}}
<p>ERROR: Couldn't find the closest destinations from {{.Start}}. {{.Err}}</p>
{{- else if not .Labels -}}
<p>There are no close destinations from {{.Start}}.</p>
{{- else -}}
<p>The closest destinations from {{.Start}} are:</p><ul>{{range .Labels}}<li>{{.}}</li>{{end}}</ul>
{{- end}}
{{- end}}

{{define "page" -}}
<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
{{template "path-prompt"}}
<div id="path-result"></div>
{{template "nearest-prompt"}}
<div id="nearest-result"></div>
<script>
async function fill(id, url) {
  const res = await fetch(url);
  document.getElementById(id).innerHTML = await res.text();
}
function findShortestPath() {
  const q = new URLSearchParams({start: document.getElementById("start").value, end: document.getElementById("end").value});
  fill("path-result", "/v1/fragments/path?" + q);
}
function findTenClosestDestinations() {
  const q = new URLSearchParams({from: document.getElementById("from").value});
  fill("nearest-result", "/v1/fragments/nearest?" + q);
}
</script>
</body>
</html>
{{- end}}
`

var tmpl = template.Must(template.New("render").Parse(fragments))

// ShortestPathPrompt returns the form asking for a start (id "start") and a
// destination (id "end").
func ShortestPathPrompt() (template.HTML, error) {
	return execute("path-prompt", nil)
}

// NearestPrompt returns the form asking for an origin (id "from").
func NearestPrompt() (template.HTML, error) {
	return execute("nearest-prompt", nil)
}

// ShortestPathResponse describes r: a header paragraph, an ordered list of
// locations and the total travel time. A route without locations renders
// as "No path found", and a non-nil err renders as an error paragraph.
func ShortestPathResponse(start, end string, r query.Route, err error) (template.HTML, error) {
	data := struct {
		Start, End string
		Locations  []string
		Total      float64
		Err        error
	}{start, end, nil, r.Total, err}
	if r.Found() {
		data.Locations = r.Locations
	}

	return execute("path-response", data)
}

// NearestResponse describes the destinations closest to start as an
// unordered list.
func NearestResponse(start string, labels []string, err error) (template.HTML, error) {
	data := struct {
		Start  string
		Labels []string
		Err    error
	}{start, labels, err}

	return execute("nearest-response", data)
}

// Page returns a complete HTML document with both prompts and the script
// that requests fragments from the server.
func Page(title string) (template.HTML, error) {
	return execute("page", struct{ Title string }{title})
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template
}

package responders

import (
	"github.com/breedlens/breedlens-frontend/controllers"
	"github.com/breedlens/breedlens-frontend/data"
	"html/template"
	"net/http"
)

var breedHubTemplate = template.Must(template.New("breedhub").Funcs(template.FuncMap{
	"Plural": func(n int, singular, plural string) string {
		if n == 1 {
			return singular
		}
		return plural
	},
}).Parse(
	`<html>
<head>
	<link rel="stylesheet" type="text/css" href="/static/breedlens.css" />
</head>
<body class="breed-hub-page">
<h1>Breed Hub</h1>
<form id="breed-search-form" action="/breeds">
	<input type="text" placeholder="Search by breed name, origin, or category..." name="q" value="{{.SearchTerm}}" class="breed-search-input"></input>
</form>
{{if .Breeds}}<div class="breed-count">Showing {{len .Breeds}} {{Plural (len .Breeds) "breed" "breeds"}}</div>
<div class="breed-list">
	{{range .Breeds}}<div class="breed">
		<a href="/breeds/{{.ID}}" class="breed-link">{{.Name}}</a>
		<span class="breed-origin">{{.Origin}}</span>
		<span class="breed-category">{{.Category}}</span>
	</div>
	{{end}}
</div>{{else}}<div class="breed-list-empty">No breeds found matching your search</div>{{end}}
</body>
</html>`))

var breedDetailTemplate = template.Must(template.New("breeddetail").Parse(
	`<html>
<head>
	<link rel="stylesheet" type="text/css" href="/static/breedlens.css" />
</head>
<body class="breed-detail-page">
<a href="/breeds" class="back-link">Back to Breed Hub</a>
<h1 class="breed-name">{{.Name}}</h1>
<div class="breed-origin">{{.Origin}}</div>
<div class="breed-category">{{.Category}}</div>
<p class="breed-about">{{.About}}</p>
<h2>Key Characteristics</h2>
<ul class="breed-characteristics">
	{{range .Characteristics}}<li>{{.}}</li>
	{{end}}
</ul>
<h2>Primary Uses</h2>
<ul class="breed-uses">
	{{range .Uses}}<li>{{.}}</li>
	{{end}}
</ul>
</body>
</html>`))

type WebBreedHubResponder struct{}

func (_ *WebBreedHubResponder) OnContextError(w http.ResponseWriter, err error) {
	http.Error(w, "Internal Server Error", 500)
}

func (_ *WebBreedHubResponder) OnResult(w http.ResponseWriter, r *controllers.BreedHubResult) {
	breedHubTemplate.Execute(w, r)
}

type WebBreedDetailResponder struct{}

func (_ *WebBreedDetailResponder) OnContextError(w http.ResponseWriter, err error) {
	http.Error(w, "Internal Server Error", 500)
}

func (_ *WebBreedDetailResponder) OnNotFound(w http.ResponseWriter) {
	http.Error(w, "Breed Not Found", 404)
}

func (_ *WebBreedDetailResponder) OnResult(w http.ResponseWriter, b *data.Breed) {
	breedDetailTemplate.Execute(w, b)
}

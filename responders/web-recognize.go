package responders

import (
	"github.com/breedlens/breedlens-frontend/controllers"
	"html/template"
	"net/http"
)

var recognizeTemplate = template.Must(template.New("recognize").Parse(
	`<html>
<head>
	<link rel="stylesheet" type="text/css" href="/static/breedlens.css" />
</head>
<body class="recognize-page">
<h1>Recognize Cattle Breed</h1>
<form id="recognize-form" action="/" method="post" enctype="multipart/form-data">
	<div class="upload-hint">Upload a photo to identify the breed. Supports JPG, PNG, WebP{{if .UploadLimit}} (max {{.UploadLimit}}){{end}}.</div>
	<input type="file" name="image" accept="image/*" class="image-input"></input>
	<button type="submit" class="classify-button">Classify Breed</button>
</form>
{{if .Prediction}}<div class="prediction-result-msg">
	<div class="prediction-result-title">Primary Match</div>
	<div class="prediction-label">{{.Prediction.Label}}</div>
	<div class="prediction-confidence">{{.Prediction.Confidence}}%</div>
	<progress class="prediction-progress" max="100" value="{{.Prediction.Confidence}}"></progress>
	{{if .Breed}}<a href="/breeds/{{.Breed.ID}}" class="breed-link">Learn more about {{.Breed.Name}}</a>{{end}}
	{{if .Prediction.Alternatives}}<div class="alternative-list">
		<div class="alternative-list-title">Other possibilities</div>
		{{range .Prediction.Alternatives}}<div class="alternative"><span class="alternative-label">{{.Label}}</span><span class="alternative-confidence">{{.Confidence}}%</span></div>
		{{end}}
	</div>{{end}}
</div>{{end}}
{{if .PredictionErr}}<div class="prediction-fault-msg">Classification failed!<div id="prediction-fault">{{.PredictionErr}}</div></div>{{end}}
{{if not .Submitted}}<div class="prediction-placeholder">Upload and classify an image to see results</div>{{end}}
</body>
</html>`))

type WebRecognizeResponder struct{}

func (_ *WebRecognizeResponder) OnContextError(w http.ResponseWriter, err error) {
	http.Error(w, "Internal Server Error", 500)
}

func (_ *WebRecognizeResponder) OnResult(w http.ResponseWriter, r *controllers.RecognizeResult) {
	recognizeTemplate.Execute(w, r)
}

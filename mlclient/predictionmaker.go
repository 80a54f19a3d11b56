package mlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/breedlens/breedlens-frontend/data"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/pkg/errors"
	"math"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

const predictPath = "/predict"
const imageFieldName = "image"
const defaultImageName = "upload"

type PredictionMaker struct {
	BaseURL         string
	HttpClientMaker HttpClientMaker
}

// Predict sends the image to the classification service and returns its prediction
// with confidences converted to integer percentages.
func (pm *PredictionMaker) Predict(ctx context.Context, image *data.ImageFile) (data.PredictionResult, error) {
	l := ctxlogrus.Get(ctx)

	if image == nil {
		return data.PredictionResult{}, errors.New("predict called without an image")
	}
	l.Debugf("Predicting from image %q (%d bytes)", image.Name, len(image.Data))

	body, contentType, err := newPredictRequestBody(image)
	if err != nil {
		return data.PredictionResult{}, errors.Wrap(err, "predict couldn't create request body")
	}

	req, err := http.NewRequest(http.MethodPost, serviceURL(pm.BaseURL, predictPath), body)
	if err != nil {
		return data.PredictionResult{}, errors.Wrap(err, "predict couldn't create request")
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	l.Info("Making predict call...")
	statusCode, payload, err := send(ctx, pm.HttpClientMaker, req)
	if err != nil {
		return data.PredictionResult{}, errors.Wrap(err, "predict failed")
	}

	if !isSuccess(statusCode) {
		l.Warnf("Predict call failed with status %d", statusCode)
		return data.PredictionResult{}, newServiceError(statusCode, payload)
	}

	result, err := parsePredictResponse(payload)
	if err != nil {
		l.Warn("Got a malformed predict call response")
		return data.PredictionResult{}, err
	}

	return result, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func newPredictRequestBody(image *data.ImageFile) (*bytes.Buffer, string, error) {
	name := image.Name
	if name == "" {
		name = defaultImageName
	}
	contentType := image.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(image.Data)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, imageFieldName, quoteEscaper.Replace(name)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(image.Data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return &buf, w.FormDataContentType(), nil
}

type predictResponse struct {
	Label        json.RawMessage `json:"label"`
	Confidence   json.RawMessage `json:"confidence"`
	Alternatives json.RawMessage `json:"alternatives"`
}

type predictAlternative struct {
	Label      json.RawMessage `json:"label"`
	Confidence json.RawMessage `json:"confidence"`
}

func parsePredictResponse(payload []byte) (data.PredictionResult, error) {
	trimmed := bytes.TrimSpace(payload)

	var r predictResponse
	if err := json.Unmarshal(trimmed, &r); err != nil {
		return data.PredictionResult{}, &MalformedResponseError{Reason: "couldn't decode response", Err: err}
	}
	// A bare null decodes without error.
	if trimmed[0] != '{' {
		return data.PredictionResult{}, &MalformedResponseError{Reason: "response is not a JSON object"}
	}

	var alternatives []predictAlternative
	if !isJSONNull(r.Alternatives) {
		if err := json.Unmarshal(r.Alternatives, &alternatives); err != nil {
			return data.PredictionResult{}, &MalformedResponseError{Reason: "alternatives is not a list of objects", Err: err}
		}
	}

	result := data.PredictionResult{
		Label:        displayLabel(r.Label),
		Confidence:   displayConfidence(r.Confidence),
		Alternatives: make([]data.PredictionAlternative, 0, len(alternatives)),
	}
	for _, alt := range alternatives {
		result.Alternatives = append(result.Alternatives, data.PredictionAlternative{
			Label:      displayLabel(alt.Label),
			Confidence: displayConfidence(alt.Confidence),
		})
	}

	return result, nil
}

func isJSONNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// displayConfidence turns a fractional score into a percentage in [0, 100].
// Anything that isn't a JSON number counts as 0.
func displayConfidence(raw json.RawMessage) int {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}
	f, ok := v.(float64)
	if !ok {
		return 0
	}

	pct := math.Floor(f*100 + 0.5)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(pct)
}

// displayLabel returns strings as-is and the JSON text of any other non-null value.
func displayLabel(raw json.RawMessage) string {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

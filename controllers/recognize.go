package controllers

import (
	"context"
	"github.com/breedlens/breedlens-frontend/data"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const DefaultMaxUploadBytes = 10 << 20

// Room for the multipart framing around the image itself.
const multipartOverhead = 64 << 10

type Recognize struct {
	PredictionMaker PredictionMaker
	Catalog         BreedCatalog
	MaxUploadBytes  int64
	PredictTimeout  time.Duration
}

type RecognizeInput struct {
	Image    *data.ImageFile
	InputErr error
}

type RecognizeResult struct {
	UploadLimit   string
	Submitted     bool
	Prediction    *data.PredictionResult
	PredictionErr error
	Breed         *data.Breed
}

type WebRecognizeResponder interface {
	OnContextError(w http.ResponseWriter, err error)
	OnResult(w http.ResponseWriter, r *RecognizeResult)
}

func (c *Recognize) HandleFunc(cm ContextMaker, resp WebRecognizeResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := cm.MakeContext(r)
		if err != nil {
			resp.OnContextError(w, err)
			return
		}

		var input *RecognizeInput
		if r.Method == http.MethodPost {
			input = c.readInput(w, r)
		}
		result := c.handle(ctx, input)
		resp.OnResult(w, result)
	}
}

func (c *Recognize) maxUploadBytes() int64 {
	if c.MaxUploadBytes > 0 {
		return c.MaxUploadBytes
	}
	return DefaultMaxUploadBytes
}

// readInput prefilters the upload; only image files within the size limit are passed on.
func (c *Recognize) readInput(w http.ResponseWriter, r *http.Request) *RecognizeInput {
	max := c.maxUploadBytes()
	r.Body = http.MaxBytesReader(w, r.Body, max+multipartOverhead)

	f, header, err := r.FormFile("image")
	if err != nil {
		if isBodyTooLarge(err) {
			return &RecognizeInput{InputErr: newUploadTooLargeError(max)}
		}
		return &RecognizeInput{InputErr: errors.Wrap(err, "no image uploaded")}
	}
	defer f.Close()

	content, err := ioutil.ReadAll(io.LimitReader(f, max+1))
	if err != nil {
		return &RecognizeInput{InputErr: errors.Wrap(err, "couldn't read uploaded image")}
	}
	if int64(len(content)) > max {
		return &RecognizeInput{InputErr: newUploadTooLargeError(max)}
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(content)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return &RecognizeInput{InputErr: errors.New("only image files can be classified")}
	}

	return &RecognizeInput{
		Image: &data.ImageFile{
			Name:        header.Filename,
			ContentType: contentType,
			Data:        content,
		},
	}
}

// http.MaxBytesReader reports an overrun with this message.
func isBodyTooLarge(err error) bool {
	return strings.Contains(err.Error(), "request body too large")
}

func newUploadTooLargeError(max int64) error {
	return errors.Errorf("image is larger than %s", formatUploadLimit(max))
}

func formatUploadLimit(n int64) string {
	switch {
	case n >= 1<<20 && n%(1<<20) == 0:
		return strconv.FormatInt(n>>20, 10) + " MB"
	case n >= 1<<20:
		return strconv.FormatFloat(float64(n)/(1<<20), 'f', 1, 64) + " MB"
	default:
		return strconv.FormatInt(n, 10) + " bytes"
	}
}

func (c *Recognize) handle(ctx context.Context, input *RecognizeInput) *RecognizeResult {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"controller": "Recognize",
	})
	l := ctxlogrus.Get(ctx)

	result := &RecognizeResult{UploadLimit: formatUploadLimit(c.maxUploadBytes())}
	if input == nil {
		return result
	}
	result.Submitted = true

	if input.InputErr != nil {
		l.Infof("Rejected upload: %s", input.InputErr)
		result.PredictionErr = input.InputErr
		return result
	}

	if c.PredictTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.PredictTimeout)
		defer cancel()
	}

	prediction, err := c.PredictionMaker.Predict(ctx, input.Image)
	if err != nil {
		l.Errorf("Unable to classify image: %s", err)
		result.PredictionErr = err
		return result
	}
	result.Prediction = &prediction

	if breed, ok := c.Catalog.Lookup(prediction.Label); ok {
		result.Breed = &breed
	}

	return result
}

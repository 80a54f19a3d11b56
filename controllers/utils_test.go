package controllers

import (
	"bytes"
	"context"
	"fmt"
	"github.com/breedlens/breedlens-frontend/data"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
)

func newTestPredictionMaker(t *testing.T) *testPredictionMaker {
	return &testPredictionMaker{
		PredictFunc: func(ctx context.Context, image *data.ImageFile) (data.PredictionResult, error) {
			t.Error("Predict should not be called")
			return data.PredictionResult{}, nil
		},
	}
}

type testPredictionMaker struct {
	PredictFunc func(ctx context.Context, image *data.ImageFile) (data.PredictionResult, error)
}

func (pm *testPredictionMaker) Predict(ctx context.Context, image *data.ImageFile) (data.PredictionResult, error) {
	return pm.PredictFunc(ctx, image)
}

func newTestBreedCatalog(t *testing.T) *testBreedCatalog {
	return &testBreedCatalog{
		AllFunc: func() []data.Breed {
			t.Error("All should not be called")
			return nil
		},
		SearchFunc: func(term string) []data.Breed {
			t.Error("Search should not be called")
			return nil
		},
		GetFunc: func(id string) (data.Breed, error) {
			t.Error("Get should not be called")
			return data.Breed{}, nil
		},
		LookupFunc: func(label string) (data.Breed, bool) {
			t.Error("Lookup should not be called")
			return data.Breed{}, false
		},
	}
}

type testBreedCatalog struct {
	AllFunc    func() []data.Breed
	SearchFunc func(term string) []data.Breed
	GetFunc    func(id string) (data.Breed, error)
	LookupFunc func(label string) (data.Breed, bool)
}

func (c *testBreedCatalog) All() []data.Breed {
	return c.AllFunc()
}

func (c *testBreedCatalog) Search(term string) []data.Breed {
	return c.SearchFunc(term)
}

func (c *testBreedCatalog) Get(id string) (data.Breed, error) {
	return c.GetFunc(id)
}

func (c *testBreedCatalog) Lookup(label string) (data.Breed, bool) {
	return c.LookupFunc(label)
}

func newTestStatusChecker(t *testing.T) *testStatusChecker {
	return &testStatusChecker{
		CheckStatusFunc: func(ctx context.Context) (data.ServiceStatus, error) {
			t.Error("CheckStatus should not be called")
			return data.ServiceStatus{}, nil
		},
	}
}

type testStatusChecker struct {
	CheckStatusFunc func(ctx context.Context) (data.ServiceStatus, error)
}

func (sc *testStatusChecker) CheckStatus(ctx context.Context) (data.ServiceStatus, error) {
	return sc.CheckStatusFunc(ctx)
}

func newUploadRequest(t *testing.T, filename, contentType string, content []byte) *http.Request {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("Couldn't create upload part: %s", err)
	}
	part.Write(content)
	w.Close()

	r := httptest.NewRequest("POST", "/", &buf)
	r.Header.Set("Content-Type", w.FormDataContentType())
	return r
}

package controllers

import (
	"context"
	"github.com/breedlens/breedlens-frontend/data"
	"net/http"
)

type ContextMaker interface {
	MakeContext(r *http.Request) (context.Context, error)
}

type PredictionMaker interface {
	Predict(ctx context.Context, image *data.ImageFile) (data.PredictionResult, error)
}

type BreedCatalog interface {
	All() []data.Breed
	Search(term string) []data.Breed
	Get(id string) (data.Breed, error)
	Lookup(label string) (data.Breed, bool)
}

type StatusChecker interface {
	CheckStatus(ctx context.Context) (data.ServiceStatus, error)
}

package controllers

import (
	"context"
	"github.com/breedlens/breedlens-frontend/data"
	"net/http"
	"strings"
)

type BreedHub struct {
	Catalog BreedCatalog
}

type BreedHubInput struct {
	SearchTerm string
}

type BreedHubResult struct {
	SearchTerm string
	Breeds     []data.Breed
}

type WebBreedHubResponder interface {
	OnContextError(w http.ResponseWriter, err error)
	OnResult(w http.ResponseWriter, r *BreedHubResult)
}

func (c *BreedHub) HandleFunc(cm ContextMaker, resp WebBreedHubResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := cm.MakeContext(r)
		if err != nil {
			resp.OnContextError(w, err)
			return
		}

		input := &BreedHubInput{SearchTerm: r.FormValue("q")}
		resp.OnResult(w, c.handle(ctx, input))
	}
}

func (c *BreedHub) handle(ctx context.Context, input *BreedHubInput) *BreedHubResult {
	result := &BreedHubResult{SearchTerm: input.SearchTerm}
	if strings.TrimSpace(input.SearchTerm) == "" {
		result.Breeds = c.Catalog.All()
	} else {
		result.Breeds = c.Catalog.Search(input.SearchTerm)
	}
	return result
}

// BreedDetail serves the reference page for one breed, addressed as <PathPrefix><id>.
type BreedDetail struct {
	Catalog    BreedCatalog
	PathPrefix string
}

type WebBreedDetailResponder interface {
	OnContextError(w http.ResponseWriter, err error)
	OnNotFound(w http.ResponseWriter)
	OnResult(w http.ResponseWriter, b *data.Breed)
}

func (c *BreedDetail) HandleFunc(cm ContextMaker, resp WebBreedDetailResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := cm.MakeContext(r)
		if err != nil {
			resp.OnContextError(w, err)
			return
		}

		id := strings.Trim(strings.TrimPrefix(r.URL.Path, c.PathPrefix), "/")
		breed, err := c.handle(ctx, id)
		if err != nil {
			resp.OnNotFound(w)
			return
		}
		resp.OnResult(w, breed)
	}
}

func (c *BreedDetail) handle(ctx context.Context, id string) (*data.Breed, error) {
	breed, err := c.Catalog.Get(id)
	if err != nil {
		return nil, err
	}
	return &breed, nil
}

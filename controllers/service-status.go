package controllers

import (
	"context"
	"github.com/breedlens/breedlens-frontend/data"
	"github.com/pkg/errors"
	"net/http"
)

type ServiceStatus struct {
	StatusChecker StatusChecker
}

type WebServiceStatusResponder interface {
	OnContextError(w http.ResponseWriter, err error)
	OnError(ctx context.Context, w http.ResponseWriter, err error)
	OnSuccess(w http.ResponseWriter, status *data.ServiceStatus)
}

func (c *ServiceStatus) HandleFunc(cm ContextMaker, resp WebServiceStatusResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := cm.MakeContext(r)
		if err != nil {
			resp.OnContextError(w, err)
			return
		}

		status, err := c.handle(ctx)
		if err != nil {
			resp.OnError(ctx, w, err)
		} else {
			resp.OnSuccess(w, status)
		}
	}
}

func (c *ServiceStatus) handle(ctx context.Context) (*data.ServiceStatus, error) {
	status, err := c.StatusChecker.CheckStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "classification service unavailable")
	}
	if !status.ModelLoaded {
		return nil, errors.New("classification service has no model loaded")
	}

	return &status, nil
}

package mlclient

import (
	"context"
	"encoding/json"
	"github.com/breedlens/breedlens-frontend/data"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/pkg/errors"
	"net/http"
)

const statusPath = "/"

// StatusChecker reads the classification service's health report.
type StatusChecker struct {
	BaseURL         string
	HttpClientMaker HttpClientMaker
}

type statusResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

func (sc *StatusChecker) CheckStatus(ctx context.Context) (data.ServiceStatus, error) {
	l := ctxlogrus.Get(ctx)

	req, err := http.NewRequest(http.MethodGet, serviceURL(sc.BaseURL, statusPath), nil)
	if err != nil {
		return data.ServiceStatus{}, errors.Wrap(err, "status check couldn't create request")
	}
	req.Header.Set("Accept", "application/json")

	statusCode, payload, err := send(ctx, sc.HttpClientMaker, req)
	if err != nil {
		return data.ServiceStatus{}, errors.Wrap(err, "status check failed")
	}
	if !isSuccess(statusCode) {
		l.Warnf("Status call failed with status %d", statusCode)
		return data.ServiceStatus{}, newServiceError(statusCode, payload)
	}

	var r statusResponse
	if err := json.Unmarshal(payload, &r); err != nil {
		return data.ServiceStatus{}, &MalformedResponseError{Reason: "couldn't decode status", Err: err}
	}

	return data.ServiceStatus{
		Status:      r.Status,
		ModelLoaded: r.ModelLoaded,
	}, nil
}

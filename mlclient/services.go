package mlclient

import (
	"context"
	"net/http"
)

type HttpClientMaker interface {
	MakeClient(ctx context.Context) (*http.Client, error)
}

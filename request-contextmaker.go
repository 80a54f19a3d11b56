package main

import (
	"context"
	"github.com/google/uuid"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/sirupsen/logrus"
	"net/http"
)

const requestIDHeader = "X-Request-ID"

type RequestContextMaker struct{}

func (cm *RequestContextMaker) MakeContext(r *http.Request) (context.Context, error) {
	requestID := r.Header.Get(requestIDHeader)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	ctx := ctxlogrus.WithFields(r.Context(), logrus.Fields{
		"request_id": requestID,
		"method":     r.Method,
		"path":       r.URL.Path,
	})
	return ctx, nil
}

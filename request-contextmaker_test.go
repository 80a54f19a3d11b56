package main

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestRequestContextMaker_MakeContext(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/breeds/gir", nil)
	r.Header.Set("X-Request-ID", "abc-123")

	cm := &RequestContextMaker{}
	ctx, err := cm.MakeContext(r)
	if err != nil {
		t.Errorf("Unexpected error from MakeContext: %s", err)
	}
	if ctx == nil {
		t.Fatal("Expected a context from MakeContext, got nil")
	}
}

func TestRequestContextMaker_MakeContext_Cancelled(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/", nil)
	reqCtx, cancel := context.WithCancel(r.Context())
	r = r.WithContext(reqCtx)
	cancel()

	cm := &RequestContextMaker{}
	ctx, err := cm.MakeContext(r)
	if err != nil {
		t.Fatalf("Unexpected error from MakeContext: %s", err)
	}
	if ctx.Err() == nil {
		t.Error("Expected request cancellation to carry into the made context")
	}
}

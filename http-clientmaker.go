package main

import (
	"context"
	"net/http"
)

// DefaultHttpClientMaker hands out a shared client with no timeout of its own;
// callers bound requests through their context.
type DefaultHttpClientMaker struct {
	client *http.Client
}

func NewDefaultHttpClientMaker() *DefaultHttpClientMaker {
	return &DefaultHttpClientMaker{
		client: &http.Client{},
	}
}

func (cm *DefaultHttpClientMaker) MakeClient(ctx context.Context) (*http.Client, error) {
	return cm.client, nil
}

package mlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/pkg/errors"
	"io/ioutil"
	"net/http"
	"strings"
)

func serviceURL(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}

// send runs a single request and returns the status code and the full response body.
// There is no retry; any timeout comes from the caller's context.
func send(ctx context.Context, cm HttpClientMaker, req *http.Request) (int, []byte, error) {
	client, err := cm.MakeClient(ctx)
	if err != nil {
		return 0, nil, errors.Wrap(err, "couldn't create client")
	}

	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return 0, nil, errors.Wrap(err, "couldn't run request")
	}
	defer resp.Body.Close()

	payload, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, errors.Wrap(err, "couldn't read response")
	}

	return resp.StatusCode, payload, nil
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode <= 299
}

func newServiceError(statusCode int, body []byte) *ServiceError {
	return &ServiceError{
		StatusCode: statusCode,
		Message:    serviceErrorMessage(statusCode, body),
	}
}

// serviceErrorMessage prefers a JSON "detail" field, then the JSON text itself,
// then the raw body, and finally a message naming the status code.
func serviceErrorMessage(statusCode int, body []byte) string {
	var v interface{}
	if err := json.Unmarshal(body, &v); err == nil {
		if obj, ok := v.(map[string]interface{}); ok {
			switch detail := obj["detail"].(type) {
			case nil:
			case string:
				if detail != "" {
					return detail
				}
			default:
				if encoded, err := json.Marshal(detail); err == nil {
					return string(encoded)
				}
			}
		}

		var buf bytes.Buffer
		if err := json.Compact(&buf, body); err == nil {
			return buf.String()
		}
	}

	text := string(body)
	if strings.TrimSpace(text) != "" {
		return text
	}
	return fmt.Sprintf("Request failed with status %d", statusCode)
}

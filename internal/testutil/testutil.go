package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
)

// NewFormRequest creates a urlencoded form submission for testing
func NewFormRequest(method, path string, values url.Values) *http.Request {
	r := httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// NewJSONRequest creates a new HTTP request with a JSON body for testing
func NewJSONRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code     int
	Header   http.Header
	Body     string
	Location string
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	return RecordResponse{
		Code:     result.StatusCode,
		Header:   result.Header,
		Body:     string(bodyBytes),
		Location: result.Header.Get("Location"),
	}
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}

// AssertRedirect checks that the response redirects to location
func AssertRedirect(t interface {
	Errorf(format string, args ...any)
}, resp RecordResponse, location string) {
	if resp.Code != http.StatusSeeOther {
		t.Errorf("got status code %d, want %d", resp.Code, http.StatusSeeOther)
	}
	if resp.Location != location {
		t.Errorf("got redirect to %q, want %q", resp.Location, location)
	}
}

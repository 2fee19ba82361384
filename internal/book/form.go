package book

import (
	"encoding/json"
	"fmt"
	"math"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// readForm collects the submitted fields from a urlencoded, multipart or JSON body.
func readForm(r *http.Request) (url.Values, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		return readJSON(r)
	}
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			return nil, err
		}
		return r.PostForm, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.PostForm, nil
}

func readJSON(r *http.Request) (url.Values, error) {
	var body map[string]any
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	values := url.Values{}
	for k, v := range body {
		switch v := v.(type) {
		case nil:
		case []any:
			for _, item := range v {
				values.Add(k, fmt.Sprint(item))
			}
		default:
			values.Set(k, fmt.Sprint(v))
		}
	}
	return values, nil
}

// fieldsFrom maps submitted values to Fields. Blank or unparsable numbers and
// dates are left unset.
func fieldsFrom(v url.Values) Fields {
	return Fields{
		Title:         strings.TrimSpace(v.Get("title")),
		Author:        strings.TrimSpace(v.Get("author")),
		Rate:          parseFloat(v.Get("rate")),
		Date:          parseDate(v.Get("date")),
		Notes:         v.Get("notes"),
		Quote:         v.Get("quote"),
		CoverImage:    strings.TrimSpace(v.Get("cover_image")),
		PageCount:     parseInt(v.Get("page_count")),
		AverageRating: parseFloat(v.Get("average_rating")),
	}
}

// parseID returns nil for a blank id and an error for a malformed one.
func parseID(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: book id %q", ErrInvalidInput, s)
	}
	return &id, nil
}

func parseFloat(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func parseInt(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

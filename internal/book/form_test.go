package book

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadForm_URLEncoded(t *testing.T) {
	body := url.Values{"title": {"Pandora"}, "rate": {"8.5"}}.Encode()
	r := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form, err := readForm(r)
	require.NoError(t, err)
	assert.Equal(t, "Pandora", form.Get("title"))
	assert.Equal(t, "8.5", form.Get("rate"))
}

func TestReadForm_JSON(t *testing.T) {
	body := `{"title":"Pandora","page_count":320,"rate":7.5,"notes":null,"categories":["a","b"]}`
	r := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")

	form, err := readForm(r)
	require.NoError(t, err)
	assert.Equal(t, "Pandora", form.Get("title"))
	assert.Equal(t, "320", form.Get("page_count"))
	assert.Equal(t, "7.5", form.Get("rate"))
	assert.Equal(t, "", form.Get("notes"))
	assert.Equal(t, []string{"a", "b"}, form["categories"])
}

func TestReadForm_BadJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader("{"))
	r.Header.Set("Content-Type", "application/json")

	_, err := readForm(r)
	assert.Error(t, err)
}

func TestFieldsFrom(t *testing.T) {
	f := fieldsFrom(url.Values{
		"title":          {"  Eternal Night "},
		"author":         {""},
		"rate":           {"9.1"},
		"date":           {"2024-03-01"},
		"notes":          {"first\nsecond"},
		"cover_image":    {""},
		"page_count":     {"210"},
		"average_rating": {"abc"},
	})

	assert.Equal(t, "Eternal Night", f.Title)
	assert.Equal(t, "", f.Author)
	require.NotNil(t, f.Rate)
	assert.InDelta(t, 9.1, *f.Rate, 0.0001)
	require.NotNil(t, f.Date)
	assert.True(t, f.Date.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "first\nsecond", f.Notes)
	require.NotNil(t, f.PageCount)
	assert.Equal(t, 210, *f.PageCount)
	assert.Nil(t, f.AverageRating)
}

func TestParseHelpers(t *testing.T) {
	assert.Nil(t, parseFloat(""))
	assert.Nil(t, parseFloat("NaN"))
	assert.Nil(t, parseFloat("Inf"))
	assert.Nil(t, parseInt("1.5"))
	assert.Nil(t, parseDate("yesterday"))
	assert.NotNil(t, parseDate("2024-03-01T10:00:00Z"))
}

func TestParseID(t *testing.T) {
	id, err := parseID("")
	assert.NoError(t, err)
	assert.Nil(t, id)

	id, err = parseID(" 42 ")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(42), *id)

	_, err = parseID("abc")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

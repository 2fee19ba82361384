// Package cover synthesizes cover-image URLs from book titles.
//
// Nothing here fetches or verifies an image: a resolver only builds a URL, which
// may point at an image that does not exist.
package cover

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultSearchTemplate is an image-search endpoint with fixed mood keywords.
	DefaultSearchTemplate = "https://source.unsplash.com/800x1200/?book,dark,%s"

	// DefaultStaticTemplate points at the repository's bundled cover assets.
	DefaultStaticTemplate = "https://raw.githubusercontent.com/MerveAltnsk/Books_Website/main/public/assets/covers/{slug}.jpg"

	// OpenLibraryTemplate is the Open Library title-cover endpoint.
	OpenLibraryTemplate = "https://covers.openlibrary.org/b/title/{slug}-{size}.jpg"
)

// Resolver maps a title to a cover-image URL.
type Resolver interface {
	Resolve(title string) string
}

// SearchResolver builds a keyword-search URL from the first word of a title.
type SearchResolver struct {
	// Template must contain a single %s for the escaped keyword.
	Template string
}

// NewSearchResolver returns a SearchResolver, falling back to DefaultSearchTemplate
// when template is empty.
func NewSearchResolver(template string) *SearchResolver {
	if template == "" {
		template = DefaultSearchTemplate
	}
	return &SearchResolver{Template: template}
}

func (r *SearchResolver) Resolve(title string) string {
	keyword := ""
	if fields := strings.Fields(title); len(fields) > 0 {
		keyword = strings.ToLower(fields[0])
	}
	return fmt.Sprintf(r.Template, url.QueryEscape(keyword))
}

// SlugResolver builds a static-asset URL from a slug of the whole title.
type SlugResolver struct {
	// Template may reference {slug} and {size}.
	Template  string
	Separator string
	Size      string
}

// NewStaticAssetResolver returns the slug resolver used when seeding the catalog.
func NewStaticAssetResolver(template string) *SlugResolver {
	if template == "" {
		template = DefaultStaticTemplate
	}
	return &SlugResolver{Template: template, Separator: "-"}
}

// NewOpenLibraryResolver returns a slug resolver for Open Library title covers.
// Size is one of S, M or L; empty means L.
func NewOpenLibraryResolver(size string) *SlugResolver {
	if size == "" {
		size = "L"
	}
	return &SlugResolver{Template: OpenLibraryTemplate, Separator: "+", Size: size}
}

func (r *SlugResolver) Resolve(title string) string {
	return strings.NewReplacer(
		"{slug}", Slug(title, r.Separator),
		"{size}", r.Size,
	).Replace(r.Template)
}

// Slug lower-cases title and collapses every run of characters outside [a-z0-9]
// into a single sep.
func Slug(title, sep string) string {
	var b strings.Builder
	inRun := false
	for _, c := range strings.ToLower(title) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteString(sep)
			inRun = true
		}
	}
	return b.String()
}

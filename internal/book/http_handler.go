package book

import (
	"net/http"
	"net/url"
	"sync"

	"bookshelf/internal/httpx"

	"go.uber.org/zap"
)

const (
	msgLoadFailed   = "Error loading books. Please try again later."
	msgSearchFailed = "Error searching books. Please try again."
	msgSortFailed   = "Error sorting books. Please try again."
	msgAdded        = "Book added successfully!"
	msgAddFailed    = "Error adding book. Please try again."
	msgUpdated      = "Book updated successfully!"
	msgUpdateFailed = "Error updating book. Please try again."
	msgEdited       = "Book updated successfully"
	msgEditFailed   = "Failed to update book"
)

// Snapshot holds the most recently fetched list, shown when a write fails.
type Snapshot struct {
	mu    sync.RWMutex
	books []Book
}

func (s *Snapshot) Store(books []Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = append([]Book(nil), books...)
}

func (s *Snapshot) Load() []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Book{}, s.books...)
}

type HTTPHandler struct {
	service  *Service
	renderer Renderer
	snapshot *Snapshot
	logger   *zap.Logger
}

func NewHTTPHandler(service *Service, renderer Renderer, snapshot *Snapshot, logger *zap.Logger) *HTTPHandler {
	if snapshot == nil {
		snapshot = &Snapshot{}
	}
	return &HTTPHandler{service: service, renderer: renderer, snapshot: snapshot, logger: logger}
}

// Register mounts the catalog routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.List)
	mux.HandleFunc("POST /search", h.Search)
	mux.HandleFunc("POST /sort", h.Sort)
	mux.HandleFunc("POST /add", h.Add)
	mux.HandleFunc("POST /edit", h.Edit)
	mux.HandleFunc("POST /update", h.Update)
	mux.HandleFunc("POST /delete", h.Delete)
}

// List handles GET /
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.logError(r, "list books", err)
		h.render(w, r, Page{Books: []Book{}, Error: msgLoadFailed})
		return
	}
	h.snapshot.Store(books)

	q := r.URL.Query()
	h.render(w, r, Page{Books: books, Success: q.Get("success"), Error: q.Get("error")})
}

// Search handles POST /search
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	form, err := readForm(r)
	if err != nil {
		h.logError(r, "read search form", err)
		h.render(w, r, Page{Books: []Book{}, Error: msgSearchFailed})
		return
	}

	books, err := h.service.Search(r.Context(), form.Get("searchTerm"))
	if err != nil {
		h.logError(r, "search books", err)
		h.render(w, r, Page{Books: []Book{}, Error: msgSearchFailed})
		return
	}
	h.snapshot.Store(books)
	h.render(w, r, Page{Books: books})
}

// Sort handles POST /sort
func (h *HTTPHandler) Sort(w http.ResponseWriter, r *http.Request) {
	form, err := readForm(r)
	if err != nil {
		h.logError(r, "read sort form", err)
		h.render(w, r, Page{Books: []Book{}, Error: msgSortFailed})
		return
	}

	books, err := h.service.Sort(r.Context(), ParseOrder(form.Get("order")))
	if err != nil {
		h.logError(r, "sort books", err)
		h.render(w, r, Page{Books: []Book{}, Error: msgSortFailed})
		return
	}
	h.snapshot.Store(books)
	h.render(w, r, Page{Books: books})
}

// Add handles POST /add
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	form, err := readForm(r)
	if err != nil {
		h.logError(r, "read add form", err)
		h.render(w, r, Page{Books: h.snapshot.Load(), Error: msgAddFailed})
		return
	}

	books, err := h.service.Add(r.Context(), fieldsFrom(form))
	if err != nil {
		h.logError(r, "add book", err)
		h.render(w, r, Page{Books: h.snapshot.Load(), Error: msgAddFailed})
		return
	}
	h.snapshot.Store(books)
	h.render(w, r, Page{Books: books, Success: msgAdded})
}

// Edit handles POST /edit
func (h *HTTPHandler) Edit(w http.ResponseWriter, r *http.Request) {
	err := h.edit(r)
	if err != nil {
		h.logError(r, "edit book", err)
		redirect(w, r, "error", msgEditFailed)
		return
	}
	redirect(w, r, "success", msgEdited)
}

func (h *HTTPHandler) edit(r *http.Request) error {
	form, err := readForm(r)
	if err != nil {
		return err
	}
	id, err := parseID(form.Get("id"))
	if err != nil {
		return err
	}
	return h.service.Edit(r.Context(), id, fieldsFrom(form))
}

// Update handles POST /update
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	books, err := h.update(r)
	if err != nil {
		h.logError(r, "update book", err)
		h.render(w, r, Page{Books: h.snapshot.Load(), Error: msgUpdateFailed})
		return
	}
	h.snapshot.Store(books)
	h.render(w, r, Page{Books: books, Success: msgUpdated})
}

func (h *HTTPHandler) update(r *http.Request) ([]Book, error) {
	form, err := readForm(r)
	if err != nil {
		return nil, err
	}
	id, err := parseID(form.Get("bookId"))
	if err != nil {
		return nil, err
	}
	return h.service.Update(r.Context(), id, fieldsFrom(form))
}

// Delete handles POST /delete
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.delete(r)
	if err != nil {
		h.logError(r, "delete book", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *HTTPHandler) delete(r *http.Request) error {
	form, err := readForm(r)
	if err != nil {
		return err
	}
	id, err := parseID(form.Get("bookId"))
	if err != nil {
		return err
	}
	return h.service.Delete(r.Context(), id)
}

func (h *HTTPHandler) render(w http.ResponseWriter, r *http.Request, page Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, page); err != nil {
		h.logError(r, "render list view", err)
	}
}

func (h *HTTPHandler) logError(r *http.Request, msg string, err error) {
	h.logger.Error(msg,
		zap.Error(err),
		zap.String("request_id", httpx.RequestIDFrom(r)),
	)
}

func redirect(w http.ResponseWriter, r *http.Request, key, msg string) {
	http.Redirect(w, r, "/?"+url.Values{key: {msg}}.Encode(), http.StatusSeeOther)
}

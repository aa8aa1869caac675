package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/author"
	authorService "bookcatalog-backend/internal/domains/author/service"
)

type fakeRepo struct {
	authors map[uuid.UUID]author.Author
	order   []uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{authors: make(map[uuid.UUID]author.Author)}
}

func (f *fakeRepo) Create(_ context.Context, a *author.Author) error {
	f.authors[a.ID] = *a
	f.order = append(f.order, a.ID)
	return nil
}

func (f *fakeRepo) GetAll(_ context.Context) ([]author.Author, error) {
	all := make([]author.Author, 0, len(f.order))
	for _, id := range f.order {
		all = append(all, f.authors[id])
	}
	return all, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*author.Author, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return &a, nil
}

func newTestRouter() (*gin.Engine, *fakeRepo) {
	gin.SetMode(gin.TestMode)

	repo := newFakeRepo()
	h := NewAuthorHandler(authorService.NewAuthorService(repo))

	router := gin.New()
	router.GET("/authors", h.GetAll)
	router.POST("/authors", h.Create)

	return router, repo
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAuthor(t *testing.T) {
	router, _ := newTestRouter()

	w := doRequest(router, http.MethodPost, "/authors", `{"name":"Jane Austen"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp author.AuthorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "Jane Austen", resp.Name)
}

func TestCreateAuthorValidation(t *testing.T) {
	router, repo := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{"name too long", `{"name":"` + strings.Repeat("a", author.MaxNameLength+1) + `"}`},
		{"empty name", `{"name":""}`},
		{"missing name", `{}`},
		{"malformed json", `{"name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/authors", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body, "detail")
		})
	}

	// No author may have been stored by any rejected request.
	assert.Empty(t, repo.authors)
}

func TestCreateAuthorNameAtBoundary(t *testing.T) {
	router, _ := newTestRouter()

	name := strings.Repeat("a", author.MaxNameLength)
	w := doRequest(router, http.MethodPost, "/authors", `{"name":"`+name+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp author.AuthorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, name, resp.Name)
}

func TestListAuthors(t *testing.T) {
	router, _ := newTestRouter()

	// Empty store serializes as an empty list, not null.
	w := doRequest(router, http.MethodGet, "/authors", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	for _, name := range []string{"Jane Austen", "Leo Tolstoy"} {
		w := doRequest(router, http.MethodPost, "/authors", `{"name":"`+name+`"}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = doRequest(router, http.MethodGet, "/authors", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []author.AuthorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Jane Austen", list[0].Name)
	assert.Equal(t, "Leo Tolstoy", list[1].Name)

	// Idempotence of read.
	again := doRequest(router, http.MethodGet, "/authors", "")
	assert.Equal(t, w.Body.String(), again.Body.String())
}

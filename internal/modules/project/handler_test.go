package project

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore mimics the Mongo-backed repository, including the rule that a
// malformed id reads as an absent document.
type fakeStore struct {
	mu          sync.Mutex
	docs        map[string]models.ProjectModel
	order       []string
	unavailable bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string]models.ProjectModel{}}
}

func (f *fakeStore) FindAll(ctx context.Context) ([]models.ProjectModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unavailable {
		return nil, store.ErrUnavailable
	}
	out := make([]models.ProjectModel, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.docs[id])
	}
	return out, nil
}

func (f *fakeStore) FindByID(ctx context.Context, id string) (*models.ProjectModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unavailable {
		return nil, store.ErrUnavailable
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, store.ErrNotFound
	}
	p, ok := f.docs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (f *fakeStore) Insert(ctx context.Context, p *models.ProjectModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unavailable {
		return store.ErrUnavailable
	}
	p.ID = primitive.NewObjectID()
	id := p.ID.Hex()
	f.docs[id] = *p
	f.order = append(f.order, id)
	return nil
}

func (f *fakeStore) UpdateByID(ctx context.Context, id string, set map[string]interface{}) (*models.ProjectModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unavailable {
		return nil, store.ErrUnavailable
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, store.ErrNotFound
	}
	p, ok := f.docs[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	for k, v := range set {
		switch k {
		case "title":
			p.Title = v.(string)
		case "description":
			p.Description = v.(string)
		case "tech":
			p.Tech = v.([]string)
		case "github":
			p.Github = v.(string)
		case "live":
			p.Live = v.(string)
		case "image":
			p.Image = v.(string)
		case "pdf":
			p.PDF = v.(string)
		case "category":
			p.Category = v.(string)
		}
	}
	f.docs[id] = p
	return &p, nil
}

func (f *fakeStore) DeleteByID(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unavailable {
		return store.ErrUnavailable
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return store.ErrNotFound
	}
	if _, ok := f.docs[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.docs, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func newTestRouter(s Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(s).RegisterRoutes(r.Group("/api"))
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeProject(t *testing.T, w *httptest.ResponseRecorder) models.ProjectModel {
	t.Helper()
	var p models.ProjectModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func TestCreateThenGetAppliesDefaults(t *testing.T) {
	r := newTestRouter(newFakeStore())

	w := doJSON(t, r, http.MethodPost, "/api/projects", gin.H{
		"title":       "Folio",
		"description": "a portfolio",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeProject(t, w)
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, []string{}, created.Tech)
	assert.Empty(t, created.Image)
	assert.Empty(t, created.PDF)
	assert.Equal(t, models.CategoryDevelopment, created.Category)

	w = doJSON(t, r, http.MethodGet, "/api/projects/"+created.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeProject(t, w)
	assert.Equal(t, "Folio", got.Title)
	assert.Equal(t, "a portfolio", got.Description)
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		body gin.H
	}{
		{"missing title", gin.H{"description": "d"}},
		{"empty title", gin.H{"title": "", "description": "d"}},
		{"missing description", gin.H{"title": "t"}},
		{"empty description", gin.H{"title": "t", "description": ""}},
	}
	r := newTestRouter(newFakeStore())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/projects", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestCreateAcceptsSynonymKeys(t *testing.T) {
	r := newTestRouter(newFakeStore())

	w := doJSON(t, r, http.MethodPost, "/api/projects", gin.H{
		"title":        "t",
		"description":  "d",
		"technologies": []string{"Go"},
		"link":         "https://demo.example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	p := decodeProject(t, w)
	assert.Equal(t, []string{"Go"}, p.Tech)
	assert.Equal(t, "https://demo.example.com", p.Live)
}

func TestUpdateImagePresenceSemantics(t *testing.T) {
	r := newTestRouter(newFakeStore())

	w := doJSON(t, r, http.MethodPost, "/api/projects", gin.H{
		"title":       "t",
		"description": "d",
		"image":       "/images/a.png",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeProject(t, w).ID.Hex()

	// omitting the image key leaves the stored value untouched
	w = doJSON(t, r, http.MethodPut, "/api/projects/"+id, gin.H{"title": "x"})
	require.Equal(t, http.StatusOK, w.Code)
	p := decodeProject(t, w)
	assert.Equal(t, "x", p.Title)
	assert.Equal(t, "/images/a.png", p.Image)

	// an explicit empty string clears it
	w = doJSON(t, r, http.MethodPut, "/api/projects/"+id, gin.H{"image": ""})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeProject(t, w).Image)
}

func TestUpdateIgnoresEmptyTitle(t *testing.T) {
	r := newTestRouter(newFakeStore())

	w := doJSON(t, r, http.MethodPost, "/api/projects", gin.H{"title": "t", "description": "d"})
	id := decodeProject(t, w).ID.Hex()

	w = doJSON(t, r, http.MethodPut, "/api/projects/"+id, gin.H{"title": "", "category": "graphic"})
	require.Equal(t, http.StatusOK, w.Code)
	p := decodeProject(t, w)
	assert.Equal(t, "t", p.Title)
	assert.Equal(t, "graphic", p.Category)
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	r := newTestRouter(newFakeStore())
	id := primitive.NewObjectID().Hex()

	w := doJSON(t, r, http.MethodPut, "/api/projects/"+id, gin.H{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMalformedIDReadsAsNotFound(t *testing.T) {
	r := newTestRouter(newFakeStore())

	w := doJSON(t, r, http.MethodGet, "/api/projects/not-a-hex-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteLifecycle(t *testing.T) {
	r := newTestRouter(newFakeStore())

	// deleting an unknown id is a 404, and stays one afterwards
	unknown := primitive.NewObjectID().Hex()
	w := doJSON(t, r, http.MethodDelete, "/api/projects/"+unknown, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/projects/"+unknown, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/projects", gin.H{"title": "t", "description": "d"})
	id := decodeProject(t, w).ID.Hex()

	w = doJSON(t, r, http.MethodDelete, "/api/projects/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted")

	w = doJSON(t, r, http.MethodGet, "/api/projects/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListEmptyAndUnavailable(t *testing.T) {
	fs := newFakeStore()
	r := newTestRouter(fs)

	w := doJSON(t, r, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	fs.unavailable = true
	w = doJSON(t, r, http.MethodGet, "/api/projects", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "unavailable")
}

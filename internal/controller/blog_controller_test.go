package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klass-lk/ginblog/internal/model"
	"github.com/klass-lk/ginblog/internal/repository"
	"github.com/klass-lk/ginblog/internal/server"
	"github.com/klass-lk/ginblog/internal/service"
)

// memStore is an in-memory service.PostStore double.
type memStore struct {
	posts map[string]model.Post
	order []string
}

func newMemStore() *memStore {
	return &memStore{posts: make(map[string]model.Post)}
}

func (s *memStore) FindAll() ([]model.Post, error) {
	var all []model.Post
	for _, id := range s.order {
		all = append(all, s.posts[id])
	}
	return all, nil
}

func (s *memStore) FindById(id string) (model.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return model.Post{}, repository.ErrNotFound
	}
	return post, nil
}

func (s *memStore) Save(post model.Post) error {
	s.posts[post.ID] = post
	s.order = append(s.order, post.ID)
	return nil
}

func (s *memStore) Update(post model.Post) error {
	if _, ok := s.posts[post.ID]; !ok {
		return repository.ErrNotFound
	}
	s.posts[post.ID] = post
	return nil
}

func (s *memStore) Delete(id string) error {
	if _, ok := s.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.posts, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	srv := server.New().DefaultCORS()
	srv.RegisterController("/blog", NewBlogController(service.NewPostService(newMemStore())))
	return srv.Engine()
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func createPost(t *testing.T, router *gin.Engine) map[string]any {
	t.Helper()
	w := doRequest(router, http.MethodPost, "/blog/post",
		`{"title":"First post","author":"Jane","body":"Hello world"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	return decodeBody(t, w)["post"].(map[string]any)
}

func TestCreatePostEndpoint(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodPost, "/blog/post",
		`{"title":"First post","author":"Jane","body":"Hello world"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Post created successfully!", body["message"])

	post := body["post"].(map[string]any)
	assert.NotEmpty(t, post["id"])
	assert.Equal(t, "First post", post["title"])
	assert.Equal(t, false, post["modified"])
	assert.NotEmpty(t, post["postTime"])
	assert.NotContains(t, post, "modifyTime")
}

func TestCreatePostValidationEndpoint(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodPost, "/blog/post",
		`{"title":"  ","author":"Jane","body":"Hello"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Validation failed", body["message"])

	violations := body["data"].([]any)
	require.Len(t, violations, 1)
	violation := violations[0].(map[string]any)
	assert.Equal(t, "title", violation["field"])
	assert.Equal(t, "title must not be empty", violation["message"])

	listing := doRequest(router, http.MethodGet, "/blog/posts", "")
	assert.Empty(t, decodeBody(t, listing)["posts"], "nothing should be persisted")
}

func TestCreatePostMalformedBody(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodPost, "/blog/post", `{"title":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "invalid request body", body["message"])
}

func TestGetPostsEndpoint(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/blog/posts", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Fetched posts successfully.", body["message"])
	assert.Equal(t, []any{}, body["posts"])

	createPost(t, router)
	createPost(t, router)

	w = doRequest(router, http.MethodGet, "/blog/posts", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["posts"], 2)
}

func TestGetPostEndpoint(t *testing.T) {
	router := setupRouter()
	created := createPost(t, router)
	id := created["id"].(string)

	w := doRequest(router, http.MethodGet, "/blog/post/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Fetched post successfully.", body["message"])
	assert.Equal(t, created, body["post"])

	again := doRequest(router, http.MethodGet, "/blog/post/"+id, "")
	assert.Equal(t, w.Body.String(), again.Body.String())
}

func TestGetPostNotFound(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/blog/post/64f000000000000000000000", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Post not found", body["message"])
	assert.NotContains(t, body, "data")
}

func TestUpdatePostEndpoint(t *testing.T) {
	router := setupRouter()
	created := createPost(t, router)
	id := created["id"].(string)

	w := doRequest(router, http.MethodPut, "/blog/post/"+id,
		`{"title":"Edited","author":"John","body":"Edited body"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Update post successfully.", body["message"])

	post := body["post"].(map[string]any)
	assert.Equal(t, id, post["id"])
	assert.Equal(t, "Edited", post["title"])
	assert.Equal(t, "John", post["author"])
	assert.Equal(t, "Edited body", post["body"])
	assert.Equal(t, true, post["modified"])
	assert.NotEmpty(t, post["modifyTime"])
	assert.Equal(t, created["postTime"], post["postTime"])
}

func TestUpdatePostValidationEndpoint(t *testing.T) {
	router := setupRouter()
	created := createPost(t, router)
	id := created["id"].(string)

	w := doRequest(router, http.MethodPut, "/blog/post/"+id,
		`{"title":"Edited","author":"","body":""}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Validation failed", body["message"])
	assert.Len(t, body["data"], 2)

	unchanged := doRequest(router, http.MethodGet, "/blog/post/"+id, "")
	assert.Equal(t, created, decodeBody(t, unchanged)["post"])
}

func TestUpdatePostNotFound(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodPut, "/blog/post/64f000000000000000000000",
		`{"title":"Edited","author":"John","body":"Edited body"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", decodeBody(t, w)["message"])
}

func TestDeletePostEndpoint(t *testing.T) {
	router := setupRouter()
	created := createPost(t, router)
	id := created["id"].(string)

	w := doRequest(router, http.MethodDelete, "/blog/post/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"message": "Delete Successed"}, decodeBody(t, w))

	gone := doRequest(router, http.MethodGet, "/blog/post/"+id, "")
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestDeletePostNotFound(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodDelete, "/blog/post/64f000000000000000000000", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", decodeBody(t, w)["message"])
}

func TestCORSHeaders(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/blog/posts", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

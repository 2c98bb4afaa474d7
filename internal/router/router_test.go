package router

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/inkpost/internal/config"
	"github.com/inkpost/internal/logger"
	"github.com/inkpost/internal/models"
	"github.com/inkpost/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type postBody struct {
	ID        uint     `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type countBody struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	PostCount int64  `json:"post_count"`
}

func setupTestRouter(t *testing.T, mutate func(cfg *config.Config)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.L = zap.NewNop()

	cfg, err := config.LoadFrom(viper.New())
	require.NoError(t, err)
	if mutate != nil {
		mutate(cfg)
	}

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:router_%s?mode=memory&cache=shared", name)
	db, err := models.Open(config.DriverSQLite, dsn, models.DBOptions{
		Pool: models.DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1},
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, models.Migrate(db))

	return SetupRouter(cfg, provider.NewContainerWithDB(cfg, db))
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = http.NoBody
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	assert.Equal(t, status, w.Code)
	assert.Equal(t, map[string]string{"error": msg}, decode[map[string]string](t, w))
}

func createPost(t *testing.T, r http.Handler, body string) postBody {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/api/posts/", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[postBody](t, w)
}

func TestPing(t *testing.T) {
	r := setupTestRouter(t, nil)

	w := doRequest(r, http.MethodGet, "/api/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "success", body["status"])
	assert.NotEmpty(t, body["message"])
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestCreateAndFetchPost(t *testing.T) {
	r := setupTestRouter(t, nil)

	created := createPost(t, r, `{"title":"Hello","content":"World","category":"Tech","tags":["x","y"]}`)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Hello", created.Title)
	assert.Equal(t, "Tech", created.Category)
	assert.Equal(t, []string{"x", "y"}, created.Tags)
	assert.True(t, strings.HasSuffix(created.CreatedAt, "Z"), created.CreatedAt)

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/api/posts/%d", created.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode[postBody](t, w))

	w = doRequest(r, http.MethodGet, "/api/posts/", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]postBody](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestCreatePostWithoutCategory(t *testing.T) {
	r := setupTestRouter(t, nil)

	created := createPost(t, r, `{"title":"T","content":"C","category":null}`)
	assert.Equal(t, models.UncategorizedLabel, created.Category)
	assert.Equal(t, []string{}, created.Tags)
}

func TestCreatePostValidation(t *testing.T) {
	r := setupTestRouter(t, nil)

	for _, body := range []string{
		`{"content":"no title"}`,
		`{"title":"no content"}`,
		`{"title":"   ","content":"blank"}`,
		"",
	} {
		w := doRequest(r, http.MethodPost, "/api/posts/", body)
		assertError(t, w, http.StatusBadRequest, "Title and content are required")
	}

	w := doRequest(r, http.MethodPost, "/api/posts/", `{"title":1,"content":"x"}`)
	assertError(t, w, http.StatusBadRequest, "Invalid request body")

	w = doRequest(r, http.MethodGet, "/api/posts/", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestPostNotFound(t *testing.T) {
	r := setupTestRouter(t, nil)

	assertError(t, doRequest(r, http.MethodGet, "/api/posts/999", ""), http.StatusNotFound, "Post not found")
	assertError(t, doRequest(r, http.MethodGet, "/api/posts/abc", ""), http.StatusNotFound, "Post not found")
	assertError(t, doRequest(r, http.MethodPut, "/api/posts/999", `{"title":"x"}`), http.StatusNotFound, "Post not found")
	assertError(t, doRequest(r, http.MethodPut, "/api/posts/999", ""), http.StatusNotFound, "Post not found")
	assertError(t, doRequest(r, http.MethodDelete, "/api/posts/999", ""), http.StatusNotFound, "Post not found")
	assertError(t, doRequest(r, http.MethodGet, "/api/categories/999", ""), http.StatusNotFound, "Category not found")
	assertError(t, doRequest(r, http.MethodGet, "/api/categories/x/posts", ""), http.StatusNotFound, "Category not found")
	assertError(t, doRequest(r, http.MethodGet, "/api/tags/999", ""), http.StatusNotFound, "Tag not found")
	assertError(t, doRequest(r, http.MethodGet, "/api/tags/999/posts", ""), http.StatusNotFound, "Tag not found")
}

func TestUpdatePost(t *testing.T) {
	r := setupTestRouter(t, nil)
	created := createPost(t, r, `{"title":"Old","content":"Body","category":"Tech","tags":["x"]}`)
	path := fmt.Sprintf("/api/posts/%d", created.ID)

	w := doRequest(r, http.MethodPut, path, `{"title":"New"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[postBody](t, w)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "Body", updated.Content)
	assert.Equal(t, "Tech", updated.Category)
	assert.Equal(t, []string{"x"}, updated.Tags)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	assertError(t, doRequest(r, http.MethodPut, path, ""), http.StatusBadRequest, "No data provided")
	assertError(t, doRequest(r, http.MethodPut, path, `{}`), http.StatusBadRequest, "No data provided")

	w = doRequest(r, http.MethodPut, path, `{"content":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "content")
}

func TestDeletePost(t *testing.T) {
	r := setupTestRouter(t, nil)
	created := createPost(t, r, `{"title":"T","content":"C","category":"Tech","tags":["x"]}`)
	path := fmt.Sprintf("/api/posts/%d", created.ID)

	w := doRequest(r, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Post deleted successfully"}`, w.Body.String())

	assertError(t, doRequest(r, http.MethodGet, path, ""), http.StatusNotFound, "Post not found")

	// 分类保留且计数为 0，标签因无文章不再出现在列表中
	categories := decode[[]countBody](t, doRequest(r, http.MethodGet, "/api/categories/", ""))
	require.Len(t, categories, 1)
	assert.Equal(t, "Tech", categories[0].Name)
	assert.Zero(t, categories[0].PostCount)

	w = doRequest(r, http.MethodGet, "/api/tags/", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestSearchPosts(t *testing.T) {
	r := setupTestRouter(t, nil)
	createPost(t, r, `{"title":"Hello","content":"World"}`)
	createPost(t, r, `{"title":"Other","content":"say hello"}`)
	createPost(t, r, `{"title":"100% done","content":"nothing"}`)

	w := doRequest(r, http.MethodGet, "/api/posts/search?q=HELLO", "")
	require.Equal(t, http.StatusOK, w.Code)
	results := decode[[]postBody](t, w)
	require.Len(t, results, 2)
	assert.Equal(t, "Other", results[0].Title)
	assert.Equal(t, "Hello", results[1].Title)

	w = doRequest(r, http.MethodGet, "/api/posts/search?q=0%25", "")
	results = decode[[]postBody](t, w)
	require.Len(t, results, 1)
	assert.Equal(t, "100% done", results[0].Title)

	for _, path := range []string{"/api/posts/search", "/api/posts/search?q=", "/api/posts/search?q=%20%20"} {
		w = doRequest(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	}
}

func TestCategoriesAndTags(t *testing.T) {
	r := setupTestRouter(t, nil)
	first := createPost(t, r, `{"title":"First","content":"C","category":"Tech","tags":["x"]}`)
	second := createPost(t, r, `{"title":"Second","content":"C","category":"Tech","tags":["x","y"]}`)
	createPost(t, r, `{"title":"Third","content":"C","category":"Life"}`)

	categories := decode[[]countBody](t, doRequest(r, http.MethodGet, "/api/categories/", ""))
	require.Len(t, categories, 2)
	assert.Equal(t, countBody{ID: categories[0].ID, Name: "Tech", PostCount: 2}, categories[0])
	assert.Equal(t, "Life", categories[1].Name)
	assert.EqualValues(t, 1, categories[1].PostCount)

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/api/categories/%d", categories[0].ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%d,"name":"Tech"}`, categories[0].ID), w.Body.String())

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/categories/%d/posts", categories[0].ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	byCategory := decode[struct {
		Category countBody  `json:"category"`
		Posts    []postBody `json:"posts"`
	}](t, w)
	assert.Equal(t, "Tech", byCategory.Category.Name)
	require.Len(t, byCategory.Posts, 2)
	assert.Equal(t, second.ID, byCategory.Posts[0].ID)
	assert.Equal(t, first.ID, byCategory.Posts[1].ID)

	tags := decode[[]countBody](t, doRequest(r, http.MethodGet, "/api/tags/", ""))
	require.Len(t, tags, 2)
	assert.Equal(t, "x", tags[0].Name)
	assert.EqualValues(t, 2, tags[0].PostCount)
	assert.Equal(t, "y", tags[1].Name)
	assert.EqualValues(t, 1, tags[1].PostCount)

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/tags/%d/posts", tags[1].ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	byTag := decode[struct {
		Tag   countBody  `json:"tag"`
		Posts []postBody `json:"posts"`
	}](t, w)
	assert.Equal(t, "y", byTag.Tag.Name)
	require.Len(t, byTag.Posts, 1)
	assert.Equal(t, second.ID, byTag.Posts[0].ID)
}

func TestHealthAndMetrics(t *testing.T) {
	r := setupTestRouter(t, nil)
	createPost(t, r, `{"title":"T","content":"C"}`)

	w := doRequest(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "blog_post_operations_total")
	assert.Contains(t, w.Body.String(), "blog_http_requests_total")
}

func TestCustomBasePathAndDisabledMetrics(t *testing.T) {
	r := setupTestRouter(t, func(cfg *config.Config) {
		cfg.Server.BasePath = "/v1"
		cfg.Metrics.Enabled = false
	})

	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodGet, "/v1/ping", "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodGet, "/api/ping", "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodGet, "/metrics", "").Code)
}

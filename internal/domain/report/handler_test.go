package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lostfound/internal/database"
	"lostfound/internal/domain/notify"
	"lostfound/internal/domain/upload"
	"lostfound/internal/middleware"
)

type apiReport struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Course      string  `json:"course"`
	Contact     string  `json:"contact"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Image       *string `json:"image"`
	Date        string  `json:"date"`
}

type apiError struct {
	Error string `json:"error"`
}

// setupRouter wires the board the same way cmd/api does, on an in-memory
// database and a temporary upload directory.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:handler_test_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Connect(dsn)
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, Migrate(db), "failed to migrate")

	sink := upload.NewSink(t.TempDir())
	hub := notify.NewHub()

	handler := NewHandler(NewService(NewRepository(db), sink, hub))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	RegisterRoutes(api, handler)

	r.Static(upload.URLPrefix, sink.Dir())
	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "404 Not Found")
	})

	return r
}

func submitForm(t *testing.T, r *gin.Engine, fields map[string]string, fileName string, fileContent []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/items", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func listItems(t *testing.T, r *gin.Engine) []apiReport {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []apiReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	return items
}

func walletFields() map[string]string {
	return map[string]string{
		"name":        "Wallet",
		"course":      "CSE",
		"contact":     "9999999999",
		"category":    "Wallet",
		"description": "Black leather wallet",
		"status":      "Found",
	}
}

func TestPostItemWithoutImage(t *testing.T) {
	r := setupRouter(t)

	rec := submitForm(t, r, walletFields(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created apiReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Found", created.Status)
	assert.Nil(t, created.Image)
	assert.NotEmpty(t, created.Date)
}

func TestPostItemMissingContactReturns400AndInsertsNothing(t *testing.T) {
	r := setupRouter(t)

	fields := walletFields()
	delete(fields, "contact")
	rec := submitForm(t, r, fields, "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body apiError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "All fields except image are required.", body.Error)

	assert.Empty(t, listItems(t, r))
}

func TestPostItemDefaultsStatusToLost(t *testing.T) {
	r := setupRouter(t)

	fields := walletFields()
	delete(fields, "status")
	rec := submitForm(t, r, fields, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var created apiReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Lost", created.Status)
}

func TestImageRoundTrip(t *testing.T) {
	r := setupRouter(t)
	content := []byte("png bytes go here")

	rec := submitForm(t, r, walletFields(), "wallet.png", content)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	items := listItems(t, r)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Image)

	url := *items[0].Image
	assert.True(t, strings.HasPrefix(url, "http://"), "expected absolute image URL, got %s", url)

	// Fetch the image back through the same router
	rel := url[strings.Index(url, upload.URLPrefix):]
	getRec := httptest.NewRecorder()
	r.ServeHTTP(getRec, httptest.NewRequest(http.MethodGet, rel, nil))
	require.Equal(t, http.StatusOK, getRec.Code)

	got, err := io.ReadAll(getRec.Body)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestListOrderingNewestFirst(t *testing.T) {
	r := setupRouter(t)

	for _, name := range []string{"A", "B", "C"} {
		fields := walletFields()
		fields["name"] = name
		rec := submitForm(t, r, fields, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	items := listItems(t, r)
	require.Len(t, items, 3)
	assert.Equal(t, "C", items[0].Name)
	assert.Equal(t, "B", items[1].Name)
	assert.Equal(t, "A", items[2].Name)
}

func TestConsecutiveReadsIdentical(t *testing.T) {
	r := setupRouter(t)

	for i := 0; i < 2; i++ {
		rec := submitForm(t, r, walletFields(), "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, listItems(t, r), listItems(t, r))
}

func TestUnknownRouteReturnsPlainText404(t *testing.T) {
	r := setupRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "404 Not Found", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestOversizedUploadRejected(t *testing.T) {
	r := setupRouter(t)

	big := bytes.Repeat([]byte("a"), upload.MaxFileSize+1)
	rec := submitForm(t, r, walletFields(), "big.png", big)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body apiError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)

	assert.Empty(t, listItems(t, r))
}

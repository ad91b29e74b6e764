package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dentalai_backend/internal/services"
	"dentalai_backend/internal/services/dto"
	"dentalai_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCodeTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewCodeHandler(NewBaseHandler(validator.New()), services.NewCodeService())

	router := gin.New()
	router.GET("/codes/suggest", h.Suggest)
	router.GET("/codes", h.Table)
	return router
}

func doGet(t *testing.T, router *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSuggestReturnsScoredCodes(t *testing.T) {
	router := newCodeTestRouter(t)

	w := doGet(t, router, "/codes/suggest?description=composite+restoration+posterior+surface")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CodeSuggestionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "D2391", resp.Suggestions[0].Code)
	assert.Equal(t, 4, resp.Suggestions[0].Score)

	// Scores are sorted best first.
	for i := 1; i < len(resp.Suggestions); i++ {
		assert.GreaterOrEqual(t, resp.Suggestions[i-1].Score, resp.Suggestions[i].Score)
	}
}

func TestSuggestHonorsLimit(t *testing.T) {
	router := newCodeTestRouter(t)

	w := doGet(t, router, "/codes/suggest?description=molar+root+canal+therapy&limit=3")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CodeSuggestionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Suggestions, 3)

	// D3320 edges out D3330 on a table-order tie because "molar" also
	// matches "premolar".
	assert.Equal(t, "D3320", resp.Suggestions[0].Code)
	assert.Equal(t, "D3330", resp.Suggestions[1].Code)
}

func TestSuggestRequiresDescription(t *testing.T) {
	router := newCodeTestRouter(t)

	for _, url := range []string{
		"/codes/suggest",
		"/codes/suggest?description=",
		"/codes/suggest?description=%20%20",
	} {
		w := doGet(t, router, url)
		assert.Equal(t, http.StatusBadRequest, w.Code, "url %s", url)
	}
}

func TestSuggestRejectsBadLimit(t *testing.T) {
	router := newCodeTestRouter(t)

	for _, url := range []string{
		"/codes/suggest?description=cleaning&limit=0",
		"/codes/suggest?description=cleaning&limit=-2",
		"/codes/suggest?description=cleaning&limit=ten",
	} {
		w := doGet(t, router, url)
		assert.Equal(t, http.StatusBadRequest, w.Code, "url %s", url)
	}
}

func TestSuggestNoMatches(t *testing.T) {
	router := newCodeTestRouter(t)

	w := doGet(t, router, "/codes/suggest?description=xyzabc+nonsense+query")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CodeSuggestionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Suggestions)
}

func TestTableEndpoint(t *testing.T) {
	router := newCodeTestRouter(t)

	w := doGet(t, router, "/codes")
	require.Equal(t, http.StatusOK, w.Code)

	var entries []struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.NotEmpty(t, entries)
	for _, e := range entries {
		assert.Regexp(t, `^D\d{4}$`, e.Code)
		assert.NotEmpty(t, e.Description)
	}
}

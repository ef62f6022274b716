package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/qa-service/internal/repository"
	"github.com/lshigami/qa-service/internal/service"
	"github.com/lshigami/qa-service/internal/testdb"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	r, _ := newTestRouterWithDB(t)
	return r
}

func newTestRouterWithDB(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testdb.Open(t)
	qRepo := repository.NewQuestionRepository(db)
	aRepo := repository.NewAnswerRepository(db)
	ctrl := NewController(
		service.NewQuestionService(qRepo),
		service.NewAnswerService(aRepo, qRepo),
		db,
	)
	r := gin.New()
	ctrl.RegisterRoutes(r)
	return r, db
}

func doRequest(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode list %q: %v", rec.Body.String(), err)
	}
	return out
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d (body %s)", want, rec.Code, rec.Body.String())
	}
}

func createQuestion(t *testing.T, r http.Handler, text string) int {
	t.Helper()
	rec := doRequest(t, r, http.MethodPost, "/questions/", map[string]string{"text": text})
	expectStatus(t, rec, http.StatusCreated)
	return int(decodeBody(t, rec)["id"].(float64))
}

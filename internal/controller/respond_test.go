package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/qa-service/internal/errorz"
)

func TestRespondError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"not found", fmt.Errorf("question 7: %w", errorz.ErrNotFound), http.StatusNotFound, "Вопрос не найден"},
		{"server", fmt.Errorf("find: %w: %w", errorz.ErrServer, errors.New("driver: bad conn")), http.StatusInternalServerError, msgServerError},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, msgServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/questions/7", nil)

			respondError(c, tc.err, "Вопрос не найден")

			expectStatus(t, rec, tc.status)
			body := decodeBody(t, rec)
			if body["detail"] != tc.detail {
				t.Fatalf("expected detail %q, got %v", tc.detail, body["detail"])
			}
			if _, ok := body["errors"]; ok {
				t.Fatalf("expected no error details, got %#v", body)
			}
		})
	}
}

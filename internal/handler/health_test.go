package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labstack/echo/v4"
	"github.com/na2na-p/atelier/internal/handler"
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		wantStatusCode int
		wantBody       *handler.HealthResponse
	}{
		{
			name:           "正常系: ステータス200とhealthyレスポンスが返却される",
			method:         http.MethodGet,
			wantStatusCode: http.StatusOK,
			wantBody: &handler.HealthResponse{
				Status:  "healthy",
				Service: "atelier",
				Version: "v1.2.3",
			},
		},
		{
			name:           "正常系: HEADの場合は本文なしで200が返る",
			method:         http.MethodHead,
			wantStatusCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(tt.method, "/healthz", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := handler.NewHealthHandler("v1.2.3")(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if rec.Code != tt.wantStatusCode {
				t.Errorf("status code = %v, want %v", rec.Code, tt.wantStatusCode)
			}

			if tt.wantBody == nil {
				if rec.Body.Len() != 0 {
					t.Errorf("body = %q, want empty", rec.Body.String())
				}
				return
			}

			var gotBody handler.HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &gotBody); err != nil {
				t.Fatalf("failed to unmarshal response body: %v", err)
			}
			if diff := cmp.Diff(*tt.wantBody, gotBody); diff != "" {
				t.Errorf("response body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

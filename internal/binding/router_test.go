package binding

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)

	return w
}

func TestRouterHealthz(t *testing.T) {
	w := serve(t, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRouterEvaluate(t *testing.T) {
	cases := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		check      func(t *testing.T, resp Response)
	}{
		{
			name:       "mean",
			path:       "/v1/mean",
			body:       `{"x":[1,2,3,4]}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, resp Response) {
				if resp.Result == nil || *resp.Result != 2.5 {
					t.Fatalf("result = %v, want 2.5", resp.Result)
				}
			},
		},
		{
			name:       "crosscorr",
			path:       "/v1/crosscorr",
			body:       `{"x":[1,2,3,4,5],"y":[2,4,6,8,10]}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, resp Response) {
				if resp.Result == nil || *resp.Result < 1-1e-12 {
					t.Fatalf("result = %v, want 1", resp.Result)
				}
			},
		},
		{
			name:       "degenerate",
			path:       "/v1/crosscorr",
			body:       `{"x":[1,1,1],"y":[1,2,3]}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, resp Response) {
				if !resp.Degenerate || resp.Result != nil {
					t.Fatalf("response = %+v, want degenerate", resp)
				}
			},
		},
		{name: "mismatch", path: "/v1/crosscorr", body: `{"x":[1,2],"y":[1]}`, wantStatus: http.StatusBadRequest},
		{name: "empty", path: "/v1/mean", body: `{"x":[]}`, wantStatus: http.StatusBadRequest},
		{name: "malformed", path: "/v1/mean", body: `{"x":`, wantStatus: http.StatusBadRequest},
		{name: "unknown op", path: "/v1/median", body: `{"x":[1]}`, wantStatus: http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(t, http.MethodPost, tc.path, tc.body)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tc.wantStatus, w.Body.String())
			}

			if tc.check == nil {
				var e errorBody
				if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil || e.Error == "" {
					t.Fatalf("error body = %s", w.Body.String())
				}
				return
			}

			var resp Response
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			tc.check(t, resp)
		})
	}
}

func TestRouterBodyLimit(t *testing.T) {
	saved := maxBodyBytes
	maxBodyBytes = 64
	t.Cleanup(func() { maxBodyBytes = saved })

	body := `{"x":[` + strings.Repeat("1,", 100) + `1]}`
	w := serve(t, http.MethodPost, "/v1/mean", body)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413 (body %s)", w.Code, w.Body.String())
	}

	w = serve(t, http.MethodPost, "/v1/mean", `{"x":[1,2]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("small body status = %d, want 200", w.Code)
	}
}

func TestStatusCode(t *testing.T) {
	if got := StatusCode(nil); got != http.StatusOK {
		t.Fatalf("StatusCode(nil) = %d", got)
	}
	if got := StatusCode(ErrUnknownOp); got != http.StatusBadRequest {
		t.Fatalf("StatusCode(ErrUnknownOp) = %d", got)
	}
	if got := StatusCode(http.ErrHandlerTimeout); got != http.StatusInternalServerError {
		t.Fatalf("StatusCode(other) = %d", got)
	}
}

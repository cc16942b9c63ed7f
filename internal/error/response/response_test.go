package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/praveen-sripati/society-backend/internal/error/code"
)

func record(t *testing.T, fn func(c *gin.Context)) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return w, body
}

func TestSuccessEnvelope(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Success(c, "done", gin.H{"id": 1})
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body["success"] != true || body["message"] != "done" {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, ok := body["error"]; ok {
		t.Fatal("success envelope carries an error field")
	}
}

func TestSuccessOmitsEmptyFields(t *testing.T) {
	_, body := record(t, func(c *gin.Context) {
		Success(c, "", nil)
	})
	if _, ok := body["message"]; ok {
		t.Fatal("empty message not omitted")
	}
	if _, ok := body["data"]; ok {
		t.Fatal("nil data not omitted")
	}
}

func TestCreatedEnvelope(t *testing.T) {
	w, _ := record(t, func(c *gin.Context) {
		Created(c, "created", nil)
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
}

func TestFailEnvelope(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		wantStatus int
		wantError  string
	}{
		{"token missing", code.ErrTokenMissing, http.StatusUnauthorized, "Authorization token not found."},
		{"token invalid", code.ErrTokenInvalid, http.StatusForbidden, "Invalid authorization token."},
		{"duplicate user", code.ErrUserAlreadyExist, http.StatusConflict, "Mobile number or apartment number already registered."},
		{"chat exists", code.ErrChatAlreadyExists, http.StatusConflict, "Direct message chat already exists."},
		{"unknown", code.ErrUnknown, http.StatusInternalServerError, "An unexpected error occurred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := record(t, func(c *gin.Context) {
				Fail(c, tt.code)
			})
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if body["success"] != false || body["error"] != tt.wantError {
				t.Fatalf("unexpected body: %v", body)
			}
		})
	}
}

func TestFailWithMessage(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		FailWithMessage(c, code.ErrValidation, "Title and content are required.")
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body["error"] != "Title and content are required." {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

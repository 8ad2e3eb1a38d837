package uploadControllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
)

func multipartRequest(t *testing.T, contentType string, size int) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="photo.jpg"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	part.Write(bytes.Repeat([]byte("a"), size))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func serveUpload(forward Forwarder, req *http.Request) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/upload", UploadImage(forward))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func countingForwarder(calls *int, url string) Forwarder {
	return func(file multipart.File, filename string) (string, error) {
		*calls++
		return url, nil
	}
}

func TestUploadRejectsNonImage(t *testing.T) {
	calls := 0
	req := multipartRequest(t, "application/pdf", 100)
	w := serveUpload(countingForwarder(&calls, ""), req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if calls != 0 {
		t.Fatalf("CDN called %d times for rejected upload", calls)
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	calls := 0
	req := multipartRequest(t, "image/jpeg", MaxUploadBytes+1)
	w := serveUpload(countingForwarder(&calls, ""), req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if calls != 0 {
		t.Fatalf("CDN called %d times for rejected upload", calls)
	}
}

func TestUploadForwardsValidImage(t *testing.T) {
	calls := 0
	req := multipartRequest(t, "image/png", 2048)
	w := serveUpload(countingForwarder(&calls, "https://cdn.example.com/photo.png"), req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if calls != 1 {
		t.Fatalf("forwarder called %d times, want 1", calls)
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["secure_url"] != "https://cdn.example.com/photo.png" {
		t.Fatalf("secure_url = %q", resp["secure_url"])
	}
}

func TestUploadRequiresFileField(t *testing.T) {
	calls := 0
	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	w := serveUpload(countingForwarder(&calls, ""), req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if calls != 0 {
		t.Fatalf("CDN called %d times with no file", calls)
	}
}

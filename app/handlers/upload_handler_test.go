package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/karavella/fabric-catalog/app/configs"
	"github.com/karavella/fabric-catalog/app/utils/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, filename string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("swatch bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeUploadResponse(t *testing.T, rec *httptest.ResponseRecorder) uploadResponse {
	t.Helper()

	var resp uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestUploadPost_StoresFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	h := NewUploadHandler(renderer.New(), configs.ENV{UploadDir: dir, UploadURL: "/uploads"})

	rec := httptest.NewRecorder()
	h.UploadPost(rec, uploadRequest(t, "harbor twill.png"))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeUploadResponse(t, rec)
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.URL, "/uploads/"), resp.URL)
	assert.Contains(t, resp.URL, "harbor-twill")
	assert.True(t, strings.HasSuffix(resp.URL, ".png"), resp.URL)

	stored, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(resp.URL, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "swatch bytes", string(stored))
}

func TestUploadPost_UppercaseExtensionTrimmedOnce(t *testing.T) {
	dir := t.TempDir()
	h := NewUploadHandler(renderer.New(), configs.ENV{UploadDir: dir, UploadURL: "/uploads"})

	rec := httptest.NewRecorder()
	h.UploadPost(rec, uploadRequest(t, "PHOTO.JPG"))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeUploadResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Contains(t, resp.URL, "photo")
	assert.True(t, strings.HasSuffix(resp.URL, ".jpg"), resp.URL)
	assert.NotContains(t, resp.URL, "jpg.jpg")
}

func TestUploadPost_MissingFilePart(t *testing.T) {
	h := NewUploadHandler(renderer.New(), configs.ENV{UploadDir: t.TempDir(), UploadURL: "/uploads"})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("unrelated", "x"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	h.UploadPost(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeUploadResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "No file was submitted.", resp.Message)
}

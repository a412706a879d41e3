package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/karavella/fabric-catalog/app/configs"
	"github.com/karavella/fabric-catalog/app/helpers"
	"github.com/unrolled/render"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// UploadHandler accepts image uploads from the catalog forms and answers
// with an openly-servable URL. The catalog core treats that URL as an
// opaque string; nothing here inspects image bytes or content types.
// Identity checks happen in the upload gate middleware in front of this.
type UploadHandler struct {
	render *render.Render
	env    configs.ENV
}

func NewUploadHandler(render *render.Render, env configs.ENV) *UploadHandler {
	return &UploadHandler{render: render, env: env}
}

type uploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	URL     string `json:"url,omitempty"`
}

func (h *UploadHandler) UploadPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Printf("UploadPost: failed to parse multipart form: %v", err)
		h.render.JSON(w, http.StatusBadRequest, uploadResponse{Message: "Invalid upload request."})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Printf("UploadPost: missing file part: %v", err)
		h.render.JSON(w, http.StatusBadRequest, uploadResponse{Message: "No file was submitted."})
		return
	}
	defer file.Close()

	ext := helpers.FileExtension(header.Filename)
	name := uuid.New().String()
	if base := slug.Make(strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))); base != "" {
		name = name + "-" + base
	}
	if ext != "" {
		name = name + "." + ext
	}

	if err := os.MkdirAll(h.env.UploadDir, 0o755); err != nil {
		log.Printf("UploadPost: failed to create upload dir %s: %v", h.env.UploadDir, err)
		h.render.JSON(w, http.StatusInternalServerError, uploadResponse{Message: "Failed to store the file."})
		return
	}

	dst, err := os.Create(filepath.Join(h.env.UploadDir, name))
	if err != nil {
		log.Printf("UploadPost: failed to create file %s: %v", name, err)
		h.render.JSON(w, http.StatusInternalServerError, uploadResponse{Message: "Failed to store the file."})
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		log.Printf("UploadPost: failed to write file %s: %v", name, err)
		h.render.JSON(w, http.StatusInternalServerError, uploadResponse{Message: "Failed to store the file."})
		return
	}

	url := fmt.Sprintf("%s/%s", h.env.UploadURL, name)
	h.render.JSON(w, http.StatusOK, uploadResponse{Success: true, URL: url})
}

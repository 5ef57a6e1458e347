package handler

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"lumina_site/internal/app/service"
	"lumina_site/internal/common"
	"lumina_site/internal/common/security"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 32 << 20 // 32 MiB

// AdminHandler exposes the file-manager API. The router mounts it behind
// the admin guard; only the presigned upload endpoint lives outside, since
// its authority is the signed token itself.
type AdminHandler struct {
	fileService *service.FileService
	signer      *security.UploadTokenSigner
}

func NewAdminHandler(fileService *service.FileService, signer *security.UploadTokenSigner) *AdminHandler {
	return &AdminHandler{fileService: fileService, signer: signer}
}

func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Get("/stats", h.stats)
	r.Get("/files", h.listFiles)
	r.Post("/upload", h.upload)
	r.Delete("/files/{key}", h.deleteFile)
	r.Post("/files/rename", h.renameFile)
	r.Get("/files/{key}/info", h.fileInfo)
	r.Post("/upload-url", h.uploadURL)
}

// RegisterPresignedUpload wires the token-authenticated PUT endpoint used
// by presigned URLs from the local storage backend.
func (h *AdminHandler) RegisterPresignedUpload(r chi.Router) {
	r.Put("/presigned-upload", h.presignedUpload)
}

func (h *AdminHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.fileService.Stats(r.Context())
	if err != nil {
		h.storageError(w, "Failed to get stats", err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) listFiles(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		prefix = r.URL.Query().Get("folder")
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	files, err := h.fileService.List(r.Context(), prefix, limit)
	if err != nil {
		h.storageError(w, "Failed to list files", err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"success": true, "files": files})
}

func (h *AdminHandler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "No file provided"})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "No file provided"})
		return
	}
	defer file.Close()

	body, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		h.storageError(w, "Upload failed", err)
		return
	}

	uploaded, err := h.fileService.Upload(r.Context(), header.Filename, body, header.Header.Get("Content-Type"))
	if err != nil {
		h.storageError(w, "Upload failed", err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"key":     uploaded.Key,
		"url":     uploaded.URL,
	})
}

func (h *AdminHandler) deleteFile(w http.ResponseWriter, r *http.Request) {
	key := pathKey(chi.URLParam(r, "key"))
	deleted, err := h.fileService.Delete(r.Context(), key)
	if err != nil {
		h.storageError(w, "Delete failed", err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"success": deleted})
}

func (h *AdminHandler) renameFile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OldKey string `json:"oldKey"`
		NewKey string `json:"newKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OldKey == "" || req.NewKey == "" {
		common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "Missing keys"})
		return
	}

	renamed, err := h.fileService.Rename(r.Context(), req.OldKey, req.NewKey)
	if err != nil {
		h.storageError(w, "Rename failed", err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"success": renamed})
}

func (h *AdminHandler) fileInfo(w http.ResponseWriter, r *http.Request) {
	key := pathKey(chi.URLParam(r, "key"))
	file, err := h.fileService.InfoExists(r.Context(), key)
	if err != nil {
		h.storageError(w, "Failed to get file info", err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"success": true, "file": file})
}

func (h *AdminHandler) uploadURL(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Filename    string `json:"filename"`
		ContentType string `json:"contentType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Filename == "" {
		common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": "Filename required"})
		return
	}

	result, err := h.fileService.PresignUpload(r.Context(), req.Filename, req.ContentType)
	if err != nil {
		h.storageError(w, "Failed to generate upload URL", err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"uploadUrl": result.UploadURL,
		"key":       result.Key,
	})
}

func (h *AdminHandler) presignedUpload(w http.ResponseWriter, r *http.Request) {
	key, contentType, err := h.signer.Verify(r.URL.Query().Get("token"))
	if err != nil {
		common.RespondWithError(w, http.StatusUnauthorized, "invalid or expired upload token")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		h.storageError(w, "Upload failed", err)
		return
	}

	uploaded, err := h.fileService.UploadTo(r.Context(), key, body, contentType)
	if err != nil {
		h.storageError(w, "Upload failed", err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"success": true, "key": uploaded.Key, "url": uploaded.URL})
}

// storageError keeps storage failures inside the JSON envelope instead of
// letting them surface as 500s.
func (h *AdminHandler) storageError(w http.ResponseWriter, message string, err error) {
	log.Printf("%s: %v", message, err)
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"success": false, "error": message})
}

// pathKey undoes the URL escaping chi preserves in path params, so keys
// with slashes (uploads%2Fa.jpg) round-trip.
func pathKey(raw string) string {
	if key, err := url.PathUnescape(raw); err == nil {
		return key
	}
	return raw
}

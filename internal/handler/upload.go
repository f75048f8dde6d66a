package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"

	models "dochub/internal/domain/models/docsystem"
	docsysSvc "dochub/internal/domain/services/docsystem"
	"dochub/internal/httputil"
)

// multipartMemory is the part of a multipart body kept in memory; the rest spills to temp files
const multipartMemory = 32 << 20

// UploadHandler handles multipart file uploads
type UploadHandler struct {
	uploadService docsysSvc.UploadService
	maxBytes      int64
	logger        *slog.Logger
}

// NewUploadHandler creates a new upload handler. maxBytes caps the request body.
func NewUploadHandler(uploadService docsysSvc.UploadService, maxBytes int64, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		maxBytes:      maxBytes,
		logger:        logger,
	}
}

// UploadResponse lists the documents recorded by an upload
type UploadResponse struct {
	Message   string            `json:"message"`
	Documents []models.Document `json:"documents"`
}

// Upload stores every part named "files" in the target folder.
// POST /api/upload
//
// Form fields:
//   - files: one or more file parts
//   - folderId: optional target folder (default root)
//   - createdBy: optional user id
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httputil.RespondError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d bytes", maxErr.Limit))
			return
		}
		httputil.RespondError(w, http.StatusBadRequest, "Failed to parse multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		httputil.RespondError(w, http.StatusBadRequest, "No files uploaded")
		return
	}

	folderID, err := optionalID(r.FormValue("folderId"), "folderId")
	if err != nil {
		handleError(w, err)
		return
	}
	createdBy, err := optionalID(r.FormValue("createdBy"), "createdBy")
	if err != nil {
		handleError(w, err)
		return
	}

	// defer file.Close() is safe: every part is consumed before returning
	uploadedFiles := make([]docsysSvc.UploadedFile, 0, len(files))
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			h.logger.Error("failed to open uploaded file",
				"file", fileHeader.Filename,
				"error", err,
			)
			httputil.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to open file %s", fileHeader.Filename))
			return
		}
		defer func(f multipart.File) { _ = f.Close() }(file)

		uploadedFiles = append(uploadedFiles, docsysSvc.UploadedFile{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Content:     file,
		})
	}

	documents, err := h.uploadService.Upload(r.Context(), &docsysSvc.UploadRequest{
		FolderID:  folderID,
		CreatedBy: createdBy,
		Files:     uploadedFiles,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, UploadResponse{
		Message:   "Files uploaded successfully",
		Documents: documents,
	})
}

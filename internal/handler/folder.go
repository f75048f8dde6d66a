package handler

import (
	"log/slog"
	"net/http"

	models "dochub/internal/domain/models/docsystem"
	docsysSvc "dochub/internal/domain/services/docsystem"
	"dochub/internal/httputil"
	docsysService "dochub/internal/service/docsystem"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	folderService  docsysSvc.FolderService
	listingService docsysSvc.ListingService
	treeService    docsysSvc.TreeService
	logger         *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(
	folderService docsysSvc.FolderService,
	listingService docsysSvc.ListingService,
	treeService docsysSvc.TreeService,
	logger *slog.Logger,
) *FolderHandler {
	return &FolderHandler{
		folderService:  folderService,
		listingService: listingService,
		treeService:    treeService,
		logger:         logger,
	}
}

// RootFolderResponse wraps the bootstrap root folder
type RootFolderResponse struct {
	RootFolder *models.Folder `json:"rootFolder"`
}

// CreateFolderResponse is returned after a folder is created
type CreateFolderResponse struct {
	Message string         `json:"message"`
	Folder  *models.Folder `json:"folder"`
}

// GetRoot returns the root folder, creating it on first use.
// GET /api/folder
func (h *FolderHandler) GetRoot(w http.ResponseWriter, r *http.Request) {
	root, err := h.folderService.GetRootFolder(r.Context())
	if err != nil {
		h.logger.Error("failed to get root folder", "error", err)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, RootFolderResponse{RootFolder: root})
}

// CreateFolder creates a folder under parentId, or at the top level.
// POST /api/folder
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req docsysSvc.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	folder, err := h.folderService.CreateFolder(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, CreateFolderResponse{
		Message: "Folder created successfully",
		Folder:  folder,
	})
}

// ListFolder returns one page of a folder's subfolders and documents.
// GET /api/folder/{id}
//
// Query parameters:
//   - sortBy: name | createdAt
//   - sortOrder: asc | desc
//   - search: case-insensitive name filter; disables sorting
//   - page, pageSize: 1-based pagination
func (h *FolderHandler) ListFolder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	listing, err := h.listingService.List(r.Context(), id, docsysService.ParseListOptions(r.URL.Query()))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, listing)
}

// GetTree returns the folder with every descendant nested beneath it.
// GET /api/folder/{id}/tree
func (h *FolderHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	tree, err := h.treeService.GetTree(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, tree)
}

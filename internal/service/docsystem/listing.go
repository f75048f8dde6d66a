package docsystem

import (
	"context"
	"log/slog"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"dochub/internal/config"
	models "dochub/internal/domain/models/docsystem"
	docsysRepo "dochub/internal/domain/repositories/docsystem"
	docsysSvc "dochub/internal/domain/services/docsystem"

	"github.com/dustin/go-humanize"
)

// listingService implements the ListingService interface
type listingService struct {
	folderRepo docsysRepo.FolderRepository
	docRepo    docsysRepo.DocumentRepository
	validator  *ResourceValidator
	logger     *slog.Logger
}

// NewListingService creates a new listing service
func NewListingService(
	folderRepo docsysRepo.FolderRepository,
	docRepo docsysRepo.DocumentRepository,
	validator *ResourceValidator,
	logger *slog.Logger,
) docsysSvc.ListingService {
	return &listingService{
		folderRepo: folderRepo,
		docRepo:    docRepo,
		validator:  validator,
		logger:     logger,
	}
}

// List merges subfolders and documents, then filters or sorts, paginates,
// and prepends the turn-up row when the folder has a parent.
func (s *listingService) List(ctx context.Context, folderID int64, opts docsysSvc.ListOptions) (*models.Listing, error) {
	folder, err := s.validator.RequireFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}

	subfolders, err := s.folderRepo.ListChildren(ctx, folderID)
	if err != nil {
		return nil, err
	}
	documents, err := s.docRepo.ListByFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}

	opts = NormalizeListOptions(opts)
	rows := MergeRows(subfolders, documents)
	if opts.Search != "" {
		rows = FilterRows(rows, opts.Search)
	} else {
		SortRows(rows, opts.SortBy, opts.SortOrder)
	}

	listing := Paginate(rows, opts.Page, opts.PageSize)
	if folder.ParentID != nil {
		listing.Rows = append([]models.ListingRow{TurnUpRow(*folder.ParentID)}, listing.Rows...)
	}

	s.logger.Debug("folder listed",
		"folder_id", folderID,
		"folder_count", len(subfolders),
		"document_count", len(documents),
		"total", listing.Total,
		"page", listing.CurrentPage,
	)

	return listing, nil
}

// ParseListOptions reads listing options from query parameters.
// page and pageSize fall back to defaults when absent or non-numeric.
func ParseListOptions(q url.Values) docsysSvc.ListOptions {
	return NormalizeListOptions(docsysSvc.ListOptions{
		SortBy:    strings.TrimSpace(q.Get("sortBy")),
		SortOrder: strings.ToLower(strings.TrimSpace(q.Get("sortOrder"))),
		Search:    strings.TrimSpace(q.Get("search")),
		Page:      atoiOrZero(q.Get("page")),
		PageSize:  atoiOrZero(q.Get("pageSize")),
	})
}

// NormalizeListOptions applies page defaults and the page size cap
func NormalizeListOptions(opts docsysSvc.ListOptions) docsysSvc.ListOptions {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = config.DefaultPageSize
	}
	if opts.PageSize > config.MaxPageSize {
		opts.PageSize = config.MaxPageSize
	}
	return opts
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// MergeRows builds the tagged row sequence: folders first, then documents
func MergeRows(folders []models.Folder, documents []models.Document) []models.ListingRow {
	rows := make([]models.ListingRow, 0, len(folders)+len(documents))
	for _, f := range folders {
		createdAt := f.CreatedAt
		rows = append(rows, models.ListingRow{
			Type:      models.RowTypeFolder,
			ID:        f.ID,
			Name:      f.Name,
			CreatedAt: &createdAt,
			CreatedBy: f.CreatorName,
			SizeLabel: SizeLabel(nil),
		})
	}
	for _, d := range documents {
		createdAt := d.CreatedAt
		size := d.Size
		rows = append(rows, models.ListingRow{
			Type:      models.RowTypeFile,
			ID:        d.ID,
			Name:      d.Name,
			CreatedAt: &createdAt,
			CreatedBy: d.CreatorName,
			Size:      &size,
			SizeLabel: SizeLabel(&size),
		})
	}
	return rows
}

// FilterRows keeps rows whose name contains term, case-insensitively
func FilterRows(rows []models.ListingRow, term string) []models.ListingRow {
	term = strings.ToLower(term)
	filtered := make([]models.ListingRow, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Name), term) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// SortRows orders rows in place by name or createdAt. Descending order is
// the exact reverse of the stable ascending order. Unknown keys leave the
// merge order untouched.
func SortRows(rows []models.ListingRow, sortBy, sortOrder string) {
	var less func(a, b models.ListingRow) bool
	switch sortBy {
	case docsysSvc.SortByName:
		less = func(a, b models.ListingRow) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case docsysSvc.SortByCreatedAt:
		less = func(a, b models.ListingRow) bool {
			return createdAtNanos(a) < createdAtNanos(b)
		}
	default:
		return
	}

	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
	if sortOrder == docsysSvc.SortOrderDesc {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
}

func createdAtNanos(row models.ListingRow) int64 {
	if row.CreatedAt == nil {
		return 0
	}
	return row.CreatedAt.UnixNano()
}

// Paginate slices rows for a 1-based page. Pages past the end are empty.
func Paginate(rows []models.ListingRow, page, pageSize int) *models.Listing {
	total := len(rows)
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	pageRows := make([]models.ListingRow, end-start)
	copy(pageRows, rows[start:end])

	return &models.Listing{
		Total:       total,
		TotalPages:  (total + pageSize - 1) / pageSize,
		CurrentPage: page,
		PageSize:    pageSize,
		Rows:        pageRows,
	}
}

// TurnUpRow is the synthetic row navigating to parentID
func TurnUpRow(parentID int64) models.ListingRow {
	return models.ListingRow{
		Type:   models.RowTypeFolder,
		ID:     parentID,
		Name:   models.TurnUpName,
		TurnUp: true,
	}
}

// SizeLabel renders a byte count for display; "-" when absent or zero
func SizeLabel(size *int64) string {
	if size == nil || *size <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(*size))
}

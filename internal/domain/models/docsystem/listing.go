package docsystem

import "time"

// Listing row discriminants
const (
	RowTypeFolder = "folder"
	RowTypeFile   = "file"
)

// TurnUpName is the display name of the synthetic parent-navigation row
const TurnUpName = ".."

// ListingRow is a merged view of either a subfolder or a document.
// Size is nil for folders; CreatedAt is nil only on the turn-up row.
type ListingRow struct {
	Type      string     `json:"type"`
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"createdAt"`
	CreatedBy *string    `json:"createdBy"`
	Size      *int64     `json:"size"`
	SizeLabel string     `json:"sizeLabel,omitempty"`
	TurnUp    bool       `json:"turnUp,omitempty"`
}

// Listing is one page of a folder's merged contents.
// Total and TotalPages count filtered rows, excluding the turn-up row.
type Listing struct {
	Total       int          `json:"total"`
	TotalPages  int          `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
	PageSize    int          `json:"pageSize"`
	Rows        []ListingRow `json:"rows"`
}

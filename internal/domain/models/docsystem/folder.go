package docsystem

import (
	"time"
)

type Folder struct {
	ID        int64     `json:"id" db:"id"`
	ParentID  *int64    `json:"parentId" db:"parent_id"` // NULL = top level
	Name      string    `json:"name" db:"name"`
	Path      string    `json:"path" db:"path"` // parent.path + "/" + name
	CreatedBy *int64    `json:"createdBy" db:"created_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// CreatorName is the creator's username, joined at read time
	CreatorName *string `json:"creatorName,omitempty"`
}

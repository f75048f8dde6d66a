package docsystem

import (
	"time"
)

type Document struct {
	ID        int64     `json:"id" db:"id"`
	FolderID  int64     `json:"folderId" db:"folder_id"`
	Name      string    `json:"name" db:"name"`
	FilePath  string    `json:"filePath" db:"file_path"` // Blob key relative to the upload root
	FileType  string    `json:"fileType" db:"file_type"` // MIME type
	Size      int64     `json:"size" db:"size"`
	CreatedBy *int64    `json:"createdBy" db:"created_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// CreatorName is the creator's username, joined at read time
	CreatorName *string `json:"creatorName,omitempty"`
}

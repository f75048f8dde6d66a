package docsystem

import (
	"context"

	"dochub/internal/domain/models/docsystem"
)

// TreeService defines operations for building folder trees
type TreeService interface {
	// GetTree returns the folder with all descendants nested beneath it
	GetTree(ctx context.Context, folderID int64) (*docsystem.FolderTreeNode, error)
}

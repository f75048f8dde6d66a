package docsystem

import (
	"path"
	"strings"
)

// BuildFolderPath constructs a folder's stored path from its parent's path.
//
// Examples:
//   - BuildFolderPath("root/Reports", "2024") → "root/Reports/2024"
//   - BuildFolderPath("", "Archive") → "Archive"
func BuildFolderPath(parentPath, name string) string {
	if parentPath == "" {
		return name
	}
	return parentPath + "/" + name
}

// TopLevelBlobDir holds the directories of parentless folders other than
// the root, so they never share a key with the root's children.
const TopLevelBlobDir = "_toplevel"

// BlobDir maps a folder path to its directory key in the blob store.
// The configured root folder maps to the store root ("") and its
// descendants mirror the hierarchy beneath it. Other top-level trees
// live under TopLevelBlobDir.
//
// Examples (rootPath "root"):
//   - BlobDir("root", "root") → ""
//   - BlobDir("root/Reports", "root") → "Reports"
//   - BlobDir("Reports", "root") → "_toplevel/Reports"
func BlobDir(folderPath, rootPath string) string {
	if folderPath == rootPath {
		return ""
	}
	if rootPath != "" && strings.HasPrefix(folderPath, rootPath+"/") {
		return strings.TrimPrefix(folderPath, rootPath+"/")
	}
	return path.Join(TopLevelBlobDir, folderPath)
}

// BuildBlobKey joins a directory key and a file name
func BuildBlobKey(dir, filename string) string {
	if dir == "" {
		return filename
	}
	return path.Join(dir, filename)
}

// SafeFilename reduces a client-supplied name to a single path element.
// Returns "" when nothing usable remains.
func SafeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	name = strings.TrimSpace(name)
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return name
}

package docsystem

import "io"

// UploadedFile represents one file part of an upload request
type UploadedFile struct {
	Filename    string
	ContentType string // As sent by the client; may be empty
	Size        int64
	Content     io.Reader
}

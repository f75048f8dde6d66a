package config

const (
	// MaxFolderNameLength is the maximum length for folder names.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255).
	MaxFolderNameLength = 255

	// MaxDocumentNameLength is the maximum length for uploaded file names.
	MaxDocumentNameLength = 255

	// MaxUsernameLength bounds usernames at registration.
	MaxUsernameLength = 100

	// DefaultPageSize is used when a listing request has no usable pageSize.
	DefaultPageSize = 10

	// MaxPageSize caps listing page sizes.
	MaxPageSize = 100

	// DefaultMaxUploadBytes limits a single multipart upload request (100MB).
	DefaultMaxUploadBytes int64 = 100 << 20
)

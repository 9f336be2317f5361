package models

import "github.com/chenjq/photofolio/internal/exifx"

// UploadStatus tracks one file through the upload sub-protocol.
type UploadStatus string

const (
	UploadPending   UploadStatus = "pending"
	UploadUploading UploadStatus = "uploading"
	UploadSuccess   UploadStatus = "success"
	UploadError     UploadStatus = "error"
)

// UploadItem is the ephemeral client-side representation of a selected file.
// It is never persisted; it exists from selection until the working set is
// cleared.
type UploadItem struct {
	LocalID     string
	Path        string
	FileName    string
	ContentType string
	SizeBytes   int64
	Status      UploadStatus
	Err         error
}

// UploadGrant is a one-time write authorization issued by the backend:
// a presigned target URL plus the provisional id of the record it will
// finalize into.
type UploadGrant struct {
	URL     string `json:"url"`
	ImageID string `json:"imageID"`
}

// UploadFinalize notifies the backend that the bytes landed. The embedded
// metadata fields are flattened into the JSON body and omitted when empty.
type UploadFinalize struct {
	ImageID   string `json:"imageID"`
	FileName  string `json:"fileName"`
	SizeBytes int64  `json:"sizeBytes"`
	exifx.Metadata
}

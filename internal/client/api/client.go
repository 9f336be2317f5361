// Package api is the HTTP client for the portfolio backend. The Client
// interface is what services program against; tests substitute fakes.
package api

import (
	"context"

	"github.com/chenjq/photofolio/internal/client/models"
)

type Client interface {
	// ListImages fetches one page of the gallery listing. lastKey is nil on
	// the first page of a fresh listing; otherwise it is the cursor returned
	// by the previous response, passed back verbatim.
	ListImages(ctx context.Context, lastKey *string, page int) (*models.ImagePage, error)

	// RequestUploadGrant asks for a one-time write authorization for a file
	// of the given content type.
	RequestUploadGrant(ctx context.Context, contentType string) (*models.UploadGrant, error)

	// FinalizeUpload notifies the backend that the granted transfer landed.
	FinalizeUpload(ctx context.Context, fin models.UploadFinalize) error

	DeleteImage(ctx context.Context, imageID string) error

	// UpdateImage sends a sparse metadata patch and returns the fields the
	// server reports as updated.
	UpdateImage(ctx context.Context, imageID string, patch models.MetadataPatch) (map[string]any, error)

	GetSelfie(ctx context.Context) (string, error)
	SetSelfie(ctx context.Context, url string) error
	GetResume(ctx context.Context) (string, error)
	SetResume(ctx context.Context, url string) error
	GetSocialLinks(ctx context.Context) (*models.SocialLinks, error)
	SetSocialLinks(ctx context.Context, links models.SocialLinks) error
	GetSiteMessage(ctx context.Context) (string, error)
	SetSiteMessage(ctx context.Context, message string) error
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chenjq/photofolio/internal/client/models"
)

func TestGetProfileCollectsAllResources(t *testing.T) {
	client := &fakeAPIClient{
		selfieFn: func(ctx context.Context) (string, error) { return "https://cdn/selfie.jpg", nil },
		resumeFn: func(ctx context.Context) (string, error) { return "https://cdn/resume.pdf", nil },
		linksFn: func(ctx context.Context) (*models.SocialLinks, error) {
			return &models.SocialLinks{GitHub: "https://github.com/x", LinkedIn: "https://linkedin.com/in/x"}, nil
		},
		messageFn: func(ctx context.Context) (string, error) { return "hello", nil },
	}
	svc := NewProfileService(client, testLogger())

	p := svc.GetProfile(context.Background())
	assert.Equal(t, "https://cdn/selfie.jpg", p.SelfieURL)
	assert.Equal(t, "https://cdn/resume.pdf", p.ResumeURL)
	assert.Equal(t, "https://github.com/x", p.SocialLinks.GitHub)
	assert.Equal(t, "hello", p.SiteMessage)
}

func TestGetProfilePartialFailure(t *testing.T) {
	client := &fakeAPIClient{
		selfieFn:  func(ctx context.Context) (string, error) { return "", errors.New("boom") },
		messageFn: func(ctx context.Context) (string, error) { return "hello", nil },
	}
	svc := NewProfileService(client, testLogger())

	p := svc.GetProfile(context.Background())
	assert.Empty(t, p.SelfieURL)
	assert.Equal(t, "hello", p.SiteMessage)
}

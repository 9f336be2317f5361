package services

import (
	"context"
	"sync"

	"github.com/chenjq/photofolio/internal/client/api"
	"github.com/chenjq/photofolio/internal/client/models"
	"github.com/chenjq/photofolio/internal/logging"
)

// ProfileService fetches and updates the profile content shown around the
// gallery. Getters are best-effort: a failed fetch logs and yields the zero
// value so the page can render with whatever loaded.
type ProfileService struct {
	client api.Client
	log    logging.Logger
}

func NewProfileService(client api.Client, log logging.Logger) *ProfileService {
	return &ProfileService{client: client, log: log}
}

// GetProfile loads all profile resources concurrently.
func (p *ProfileService) GetProfile(ctx context.Context) models.Profile {
	var profile models.Profile
	var wg sync.WaitGroup

	wg.Add(4)
	go func() {
		defer wg.Done()
		var err error
		if profile.SelfieURL, err = p.client.GetSelfie(ctx); err != nil {
			p.log.Warn(ctx, "failed to fetch selfie", "error", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if profile.ResumeURL, err = p.client.GetResume(ctx); err != nil {
			p.log.Warn(ctx, "failed to fetch resume", "error", err)
		}
	}()
	go func() {
		defer wg.Done()
		links, err := p.client.GetSocialLinks(ctx)
		if err != nil {
			p.log.Warn(ctx, "failed to fetch social links", "error", err)
			return
		}
		profile.SocialLinks = *links
	}()
	go func() {
		defer wg.Done()
		var err error
		if profile.SiteMessage, err = p.client.GetSiteMessage(ctx); err != nil {
			p.log.Warn(ctx, "failed to fetch site message", "error", err)
		}
	}()
	wg.Wait()

	return profile
}

func (p *ProfileService) SetSelfie(ctx context.Context, url string) error {
	return p.client.SetSelfie(ctx, url)
}

func (p *ProfileService) SetResume(ctx context.Context, url string) error {
	return p.client.SetResume(ctx, url)
}

func (p *ProfileService) SetSocialLinks(ctx context.Context, links models.SocialLinks) error {
	return p.client.SetSocialLinks(ctx, links)
}

func (p *ProfileService) SetSiteMessage(ctx context.Context, message string) error {
	return p.client.SetSiteMessage(ctx, message)
}

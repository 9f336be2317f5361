package cli

import (
	"context"
	"os"

	"github.com/chenjq/photofolio/internal/client/models"
)

func (a *App) Profile(ctx context.Context) error {
	p := a.profile.GetProfile(ctx)
	printlnFn("Selfie:   " + p.SelfieURL)
	printlnFn("Resume:   " + p.ResumeURL)
	printlnFn("GitHub:   " + p.SocialLinks.GitHub)
	printlnFn("LinkedIn: " + p.SocialLinks.LinkedIn)
	printlnFn("Message:  " + p.SiteMessage)
	return nil
}

// SetProfile updates one profile resource: setprofile selfie|resume|links|message.
func (a *App) SetProfile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: setprofile selfie|resume|links|message")
		return nil
	}

	switch args[0] {
	case "selfie":
		url, err := GetSimpleText(a.reader, "Selfie URL", os.Stdout)
		if err != nil {
			return err
		}
		return a.reportSet(a.profile.SetSelfie(ctx, url))

	case "resume":
		url, err := GetSimpleText(a.reader, "Resume URL", os.Stdout)
		if err != nil {
			return err
		}
		return a.reportSet(a.profile.SetResume(ctx, url))

	case "links":
		var links models.SocialLinks
		var err error
		if links.GitHub, err = GetSimpleText(a.reader, "GitHub URL", os.Stdout); err != nil {
			return err
		}
		if links.LinkedIn, err = GetSimpleText(a.reader, "LinkedIn URL", os.Stdout); err != nil {
			return err
		}
		return a.reportSet(a.profile.SetSocialLinks(ctx, links))

	case "message":
		msg, err := GetSimpleText(a.reader, "Site message", os.Stdout)
		if err != nil {
			return err
		}
		return a.reportSet(a.profile.SetSiteMessage(ctx, msg))

	default:
		printlnFn("Unknown profile field: " + args[0])
		return nil
	}
}

func (a *App) reportSet(err error) error {
	if err != nil {
		printlnFn("Update failed: " + err.Error())
		return err
	}
	printlnFn("Updated")
	return nil
}

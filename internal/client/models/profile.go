package models

// SocialLinks is the profile's external link set.
type SocialLinks struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// Profile aggregates the public profile content served next to the gallery.
type Profile struct {
	SelfieURL   string
	ResumeURL   string
	SocialLinks SocialLinks
	SiteMessage string
}

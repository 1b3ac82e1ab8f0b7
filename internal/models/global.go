package models

// SocialLink is one entry in the contact socials list.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// ContactDetails holds the contact block of the global settings.
type ContactDetails struct {
	Email    string       `json:"email"`
	Phone    string       `json:"phone"`
	WhatsApp string       `json:"whatsapp,omitempty"`
	Location string       `json:"location"`
	Socials  []SocialLink `json:"socials"`
}

// AboutPageCard is one of the three about-page teaser cards.
type AboutPageCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AboutPageTeasers holds the teaser card per about tab.
type AboutPageTeasers struct {
	Professional AboutPageCard `json:"professional"`
	Rotaract     AboutPageCard `json:"rotaract"`
	Personal     AboutPageCard `json:"personal"`
}

// Announcement is the optional site-wide banner. A nil Announcement means
// the field was never persisted; a disabled one is an explicit choice, so
// migration must not confuse the two.
type Announcement struct {
	Enabled bool   `json:"enabled"`
	Text    string `json:"text"`
	Link    string `json:"link,omitempty"`
}

// GlobalContent is the singleton site-settings record.
type GlobalContent struct {
	LogoURL      string           `json:"logoUrl"`
	SiteTitle    string           `json:"siteTitle"`
	ContactInfo  ContactDetails   `json:"contactInfo"`
	AboutPage    AboutPageTeasers `json:"aboutPage"`
	Announcement *Announcement    `json:"announcement,omitempty"`
}

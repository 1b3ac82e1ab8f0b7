package content

import (
	"strings"
	"time"

	"soulforge/internal/models"
	"soulforge/internal/observability"
)

// ClubLogoURL is the current Rotaract club logo.
const ClubLogoURL = "https://drive.google.com/thumbnail?id=1yUm13kjlWARxcCd0B0ATqqzFMf_oAZAk&sz=w4096"

// clubLogoToken identifies the current club logo; stored logos missing it
// are considered stale and force-replaced.
const clubLogoToken = "1yUm13kjlWARxcCd0B0ATqqzFMf_oAZAk"

// oldWikiLogoURL is the retired Wikimedia-hosted club logo.
const oldWikiLogoURL = "https://upload.wikimedia.org/wikipedia/commons/thumb/c/ca/Rotaract_Logo.svg/1200px-Rotaract_Logo.svg.png"

// stalePhones are retired placeholder contact numbers (the original
// placeholder and a typo'd variant) that are force-overwritten on load.
var stalePhones = []string{"+94 77 123 4567", "+91 9432463935"}

// Migrations are additive and idempotent: each rule backfills a missing or
// known-stale field from the compiled-in defaults and never deletes user
// data. They run in memory at load time only; the result is re-persisted on
// the next explicit mutation, not immediately.

// MigratedDefaultPersonas returns the default persona set with the
// load-time migrations already applied, stamped at now. Seeding writes this
// so a freshly seeded store loads without firing any fixups.
func MigratedDefaultPersonas(now time.Time) models.PersonaMap {
	return migratePersonas(DefaultPersonas(), now)
}

func fixup(rule string) {
	observability.MigrationFixups.WithLabelValues(rule).Inc()
}

// migratePersonas backfills creation timestamps on works and project items
// and ensures every chapter carries a comments list. Items predating the
// dateAdded field get the migration run time; the original creation time is
// unrecoverable and this precision loss is accepted.
func migratePersonas(personas models.PersonaMap, now time.Time) models.PersonaMap {
	stamp := now.UTC().Format(time.RFC3339)

	for key, p := range personas {
		for i := range p.Works {
			if p.Works[i].DateAdded == "" {
				p.Works[i].DateAdded = stamp
				fixup("work_date_added")
			}
		}
		for i := range p.ProjectCategories {
			items := p.ProjectCategories[i].Items
			for j := range items {
				if items[j].DateAdded == "" {
					items[j].DateAdded = stamp
					fixup("project_item_date_added")
				}
			}
		}
		for i := range p.Writings {
			for j := range p.Writings[i].Chapters {
				if p.Writings[i].Chapters[j].Comments == nil {
					p.Writings[i].Chapters[j].Comments = []models.Comment{}
					fixup("chapter_comments")
				}
			}
		}
		personas[key] = p
	}
	return personas
}

// migrateGlobal backfills missing global-settings pieces one by one and
// force-replaces known-stale contact values. Partial defaulting: only the
// missing piece is replaced, never the whole record.
func migrateGlobal(gc models.GlobalContent) models.GlobalContent {
	if contactMissing(gc.ContactInfo) {
		gc.ContactInfo = DefaultContact()
		fixup("contact_info")
	}
	if teasersMissing(gc.AboutPage) {
		gc.AboutPage = DefaultAboutPageTeasers()
		fixup("about_page_teasers")
	}
	if gc.Announcement == nil {
		// Enabled by default for visibility.
		gc.Announcement = &models.Announcement{Enabled: true, Text: defaultAnnouncementText, Link: ""}
		fixup("announcement")
	}

	// Force-overwrite retired placeholder numbers; back-fill WhatsApp from
	// phone if it was never set.
	if gc.ContactInfo.WhatsApp == "" || isStalePhone(gc.ContactInfo.Phone) {
		def := DefaultContact()
		gc.ContactInfo.WhatsApp = def.WhatsApp
		gc.ContactInfo.Phone = def.Phone
		fixup("contact_phone")
	}

	// Social links still holding the '#' placeholder or an empty URL are
	// replaced by the default entry for the same platform; platforms with
	// no matching default are left untouched.
	defaults := DefaultContact().Socials
	for i, s := range gc.ContactInfo.Socials {
		if s.URL != "#" && s.URL != "" {
			continue
		}
		for _, def := range defaults {
			if def.Platform == s.Platform {
				gc.ContactInfo.Socials[i] = def
				fixup("social_link")
				break
			}
		}
	}

	return gc
}

// migrateAbout backfills each tab's optional substructures independently
// from that tab's compiled-in default, and force-updates the Rotaract club
// logo when the stored value is the retired URL or lacks the current logo's
// identifying token.
func migrateAbout(about models.AboutMap) models.AboutMap {
	defaults := DefaultAbout()

	rot := about[models.TabRotaract]
	defRot := defaults[models.TabRotaract]
	if rot.Roles == nil {
		rot.Roles = defRot.Roles
		fixup("rotaract_roles")
	}
	if rot.LogoURL == "" {
		rot.LogoURL = defRot.LogoURL
		fixup("rotaract_logo_missing")
	}
	if rot.LogoURL == oldWikiLogoURL || !strings.Contains(rot.LogoURL, clubLogoToken) {
		rot.LogoURL = ClubLogoURL
		fixup("rotaract_logo_stale")
	}
	if rot.Timeline == nil {
		rot.Timeline = defRot.Timeline
		fixup("rotaract_timeline")
	}
	about[models.TabRotaract] = rot

	prof := about[models.TabProfessional]
	defProf := defaults[models.TabProfessional]
	if prof.Cards == nil {
		prof.Cards = defProf.Cards
		fixup("professional_cards")
	}
	if prof.Experience == nil {
		prof.Experience = defProf.Experience
		fixup("professional_experience")
	}
	if prof.Software == nil {
		prof.Software = defProf.Software
		fixup("professional_software")
	}
	if prof.Education == nil {
		prof.Education = defProf.Education
		fixup("professional_education")
	}
	about[models.TabProfessional] = prof

	pers := about[models.TabPersonal]
	if pers.Cards == nil {
		pers.Cards = defaults[models.TabPersonal].Cards
		fixup("personal_cards")
	}
	about[models.TabPersonal] = pers

	return about
}

// contactMissing reports whether the contact block was never persisted.
func contactMissing(c models.ContactDetails) bool {
	return c.Email == "" && c.Phone == "" && c.Location == "" && len(c.Socials) == 0
}

// teasersMissing reports whether the about-page teaser block was never persisted.
func teasersMissing(t models.AboutPageTeasers) bool {
	return t.Professional.Title == "" && t.Rotaract.Title == "" && t.Personal.Title == ""
}

func isStalePhone(phone string) bool {
	for _, p := range stalePhones {
		if phone == p {
			return true
		}
	}
	return false
}

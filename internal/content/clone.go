package content

import "soulforge/internal/models"

// Deep copies handed out by the store's readers. Handlers marshal and
// mutate what they get back, so nothing here may share a slice or pointer
// with the store's own state.

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneComments(in []models.Comment) []models.Comment {
	if in == nil {
		return nil
	}
	out := make([]models.Comment, len(in))
	for i, c := range in {
		c.Replies = cloneComments(c.Replies)
		out[i] = c
	}
	return out
}

func cloneChapters(in []models.Chapter) []models.Chapter {
	if in == nil {
		return nil
	}
	out := make([]models.Chapter, len(in))
	for i, ch := range in {
		ch.Comments = cloneComments(ch.Comments)
		out[i] = ch
	}
	return out
}

func cloneWritings(in []models.Writing) []models.Writing {
	if in == nil {
		return nil
	}
	out := make([]models.Writing, len(in))
	for i, w := range in {
		w.Chapters = cloneChapters(w.Chapters)
		w.Tags = cloneStrings(w.Tags)
		w.Comments = cloneComments(w.Comments)
		out[i] = w
	}
	return out
}

func cloneCategories(in []models.ProjectCategory) []models.ProjectCategory {
	if in == nil {
		return nil
	}
	out := make([]models.ProjectCategory, len(in))
	for i, c := range in {
		if c.Items != nil {
			items := make([]models.ProjectItem, len(c.Items))
			copy(items, c.Items)
			c.Items = items
		}
		out[i] = c
	}
	return out
}

func clonePersona(p models.Persona) models.Persona {
	p.Skills = cloneStrings(p.Skills)
	p.Details = cloneStrings(p.Details)
	if p.Works != nil {
		works := make([]models.Work, len(p.Works))
		copy(works, p.Works)
		p.Works = works
	}
	p.ProjectCategories = cloneCategories(p.ProjectCategories)
	p.Writings = cloneWritings(p.Writings)
	if p.Whispers != nil {
		whispers := make([]models.Whisper, len(p.Whispers))
		copy(whispers, p.Whispers)
		p.Whispers = whispers
	}
	return p
}

func clonePersonas(in models.PersonaMap) models.PersonaMap {
	out := make(models.PersonaMap, len(in))
	for k, p := range in {
		out[k] = clonePersona(p)
	}
	return out
}

func cloneGlobal(gc models.GlobalContent) models.GlobalContent {
	if gc.ContactInfo.Socials != nil {
		socials := make([]models.SocialLink, len(gc.ContactInfo.Socials))
		copy(socials, gc.ContactInfo.Socials)
		gc.ContactInfo.Socials = socials
	}
	if gc.Announcement != nil {
		ann := *gc.Announcement
		gc.Announcement = &ann
	}
	return gc
}

func cloneAboutContent(ac models.AboutContent) models.AboutContent {
	ac.Content = cloneStrings(ac.Content)
	ac.Highlights = cloneStrings(ac.Highlights)
	if ac.Cards != nil {
		cards := make([]models.CardItem, len(ac.Cards))
		copy(cards, ac.Cards)
		ac.Cards = cards
	}
	if ac.Roles != nil {
		roles := make([]models.RoleItem, len(ac.Roles))
		copy(roles, ac.Roles)
		ac.Roles = roles
	}
	if ac.Timeline != nil {
		timeline := make([]models.TimelineItem, len(ac.Timeline))
		copy(timeline, ac.Timeline)
		ac.Timeline = timeline
	}
	if ac.Experience != nil {
		exp := make([]models.ExperienceItem, len(ac.Experience))
		copy(exp, ac.Experience)
		ac.Experience = exp
	}
	if ac.Education != nil {
		edu := make([]models.EducationItem, len(ac.Education))
		copy(edu, ac.Education)
		ac.Education = edu
	}
	if ac.Software != nil {
		sw := make([]models.SoftwareItem, len(ac.Software))
		copy(sw, ac.Software)
		ac.Software = sw
	}
	return ac
}

func cloneAbout(in models.AboutMap) models.AboutMap {
	out := make(models.AboutMap, len(in))
	for k, ac := range in {
		out[k] = cloneAboutContent(ac)
	}
	return out
}

// Package models contains data structures for the application's domain records.
package models

// PersonaType identifies one of the five fixed persona archetypes.
// The set is closed: personas are never created or deleted, only edited.
type PersonaType string

// The five archetypes. Values double as map keys in persisted snapshots,
// so they must never change spelling.
const (
	PersonaDreamWeaver  PersonaType = "The Dream Weaver"
	PersonaStillwanderer PersonaType = "The Stillwanderer"
	PersonaGlyphsmith   PersonaType = "The Glyphsmith"
	PersonaFrameWeaver  PersonaType = "The Frame Weaver"
	PersonaAbyss        PersonaType = "The Abyss That Remembers"
)

// PersonaTypes lists every archetype in display order.
var PersonaTypes = []PersonaType{
	PersonaDreamWeaver,
	PersonaStillwanderer,
	PersonaGlyphsmith,
	PersonaFrameWeaver,
	PersonaAbyss,
}

// ValidPersonaType reports whether t is one of the five archetypes.
func ValidPersonaType(t PersonaType) bool {
	for _, p := range PersonaTypes {
		if p == t {
			return true
		}
	}
	return false
}

// Work is a single gallery item (Stillwanderer, Glyphsmith, Frame Weaver).
type Work struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Image       string `json:"image,omitempty"`
	Video       string `json:"video,omitempty"`
	Description string `json:"description"`
	Hidden      bool   `json:"hidden,omitempty"`
	// DateAdded is an ISO timestamp backfilled by migration for legacy items.
	DateAdded string `json:"dateAdded,omitempty"`
}

// ProjectItem is a child entry inside a ProjectCategory.
type ProjectItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Hidden      bool   `json:"hidden,omitempty"`
	DateAdded   string `json:"dateAdded,omitempty"`
}

// ProjectCategory groups ProjectItems under the Dream Weaver persona.
type ProjectCategory struct {
	Title       string        `json:"title"`
	BannerImage string        `json:"bannerImage"`
	Description string        `json:"description"`
	Items       []ProjectItem `json:"items"`
	Hidden      bool          `json:"hidden,omitempty"`
}

// Comment is an echo left on a chapter. Replies nest to arbitrary depth;
// a chapter's comments form a forest of these.
type Comment struct {
	ID      string    `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	Date    string    `json:"date"`
	Replies []Comment `json:"replies,omitempty"`
}

// Chapter is one installment of a Writing.
type Chapter struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Date     string    `json:"date"`
	Comments []Comment `json:"comments,omitempty"`
}

// Writing is a long-form chronicle under the Abyss persona.
type Writing struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Date     string    `json:"date"`
	Excerpt  string    `json:"excerpt"`
	Chapters []Chapter `json:"chapters"`
	Tags     []string  `json:"tags"`
	// Comments predates per-chapter echoes; kept so legacy snapshots
	// still round-trip.
	Comments []Comment `json:"comments,omitempty"`
	Hidden   bool      `json:"hidden,omitempty"`
}

// Whisper is a short dated micro-entry under the Abyss persona.
type Whisper struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Hidden  bool   `json:"hidden,omitempty"`
}

// Persona is one archetype's full content record. At most one of Works,
// ProjectCategories, or Writings/Whispers is populated in practice; the
// schema does not enforce exclusivity and consumers must not assume it.
type Persona struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Skills      []string `json:"skills"`
	Quote       string   `json:"quote"`
	Details     []string `json:"details,omitempty"`
	Hidden      bool     `json:"hidden,omitempty"`

	Works             []Work            `json:"works,omitempty"`
	ProjectCategories []ProjectCategory `json:"projectCategories,omitempty"`
	Writings          []Writing         `json:"writings,omitempty"`
	Whispers          []Whisper         `json:"whispers,omitempty"`
}

// PersonaMap is the top-level personas collection keyed by archetype.
type PersonaMap map[PersonaType]Persona

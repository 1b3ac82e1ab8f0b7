package models

// AboutTab identifies one of the three about-page tabs.
type AboutTab string

// Tab keys. Values appear as map keys in persisted snapshots.
const (
	TabProfessional AboutTab = "Professional"
	TabRotaract     AboutTab = "Rotaract"
	TabPersonal     AboutTab = "Personal"
)

// AboutTabs lists the tabs in display order.
var AboutTabs = []AboutTab{TabProfessional, TabRotaract, TabPersonal}

// ValidAboutTab reports whether t is a known tab.
func ValidAboutTab(t AboutTab) bool {
	return t == TabProfessional || t == TabRotaract || t == TabPersonal
}

// RoleItem is a held position, used on the Rotaract tab.
type RoleItem struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Period       string `json:"period"`
}

// TimelineItem is a year-indexed milestone on the Rotaract tab.
type TimelineItem struct {
	ID          string `json:"id"`
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CardItem is a rich tile with an icon key understood by the frontend.
type CardItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon"`
}

// ExperienceItem is a work-history entry on the Professional tab.
type ExperienceItem struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// EducationItem is an education entry on the Professional tab.
type EducationItem struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
	Description string `json:"description,omitempty"`
}

// SoftwareItem names a tool on the Professional tab.
type SoftwareItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// AboutContent is one tab's record. The optional extensions are
// tab-specific; migration defaults each independently.
type AboutContent struct {
	Title      string           `json:"title"`
	Content    []string         `json:"content"`
	Highlights []string         `json:"highlights"`
	Cards      []CardItem       `json:"cards,omitempty"`
	Roles      []RoleItem       `json:"roles,omitempty"`
	Timeline   []TimelineItem   `json:"timeline,omitempty"`
	Experience []ExperienceItem `json:"experience,omitempty"`
	Education  []EducationItem  `json:"education,omitempty"`
	Software   []SoftwareItem   `json:"software,omitempty"`
	LogoURL    string           `json:"logoUrl,omitempty"`
}

// AboutMap is the about collection keyed by tab.
type AboutMap map[AboutTab]AboutContent

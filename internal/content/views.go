package content

import (
	"fmt"
	"sort"
	"time"

	"soulforge/internal/models"
)

// Update is one entry in the recent-activity feed. It is a read-time
// projection and is never persisted.
type Update struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Date         string `json:"date"`
	Link         string `json:"link"`
	PersonaTitle string `json:"personaTitle"`
}

// Update type discriminators.
const (
	UpdateTypeWriting = "WRITING"
	UpdateTypeWhisper = "WHISPER"
	UpdateTypeWork    = "WORK"
)

// DefaultFeedLimit is the number of entries the overview feed shows.
const DefaultFeedLimit = 5

// dateLayouts are the accepted spellings of persisted dates, most specific
// first. Snapshots mix ISO timestamps with human-entered forms like
// "Oct 24, 2023".
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseDate parses a persisted date string. Unparseable input yields the
// zero time, mirroring the permissive date handling of the site this store
// feeds: bad dates sort last instead of failing the read.
func ParseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// LatestWritingDate returns the display date of a writing: the maximum of
// the writing's own date and all chapter dates, formatted "Jan 2, 2006".
// Computed on every read, never stored.
func LatestWritingDate(w models.Writing) string {
	latest := ParseDate(w.Date)
	for _, ch := range w.Chapters {
		if t := ParseDate(ch.Date); t.After(latest) {
			latest = t
		}
	}
	if latest.IsZero() {
		return w.Date
	}
	return latest.Format("Jan 2, 2006")
}

// toRoman renders n as an uppercase roman numeral for chapter headings.
func toRoman(n int) string {
	if n <= 0 {
		return ""
	}
	values := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	symbols := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
	out := ""
	for i, v := range values {
		for n >= v {
			out += symbols[i]
			n -= v
		}
	}
	return out
}

// RecentActivity projects chapters, whispers, and dated works of visible
// personas into a single feed, newest first, truncated to limit.
func RecentActivity(personas models.PersonaMap, limit int) []Update {
	type dated struct {
		Update
		at time.Time
	}
	var all []dated

	for _, pt := range models.PersonaTypes {
		p, ok := personas[pt]
		if !ok || p.Hidden {
			continue
		}
		link := "/personas/" + p.ID

		for _, w := range p.Writings {
			if w.Hidden {
				continue
			}
			if len(w.Chapters) > 0 {
				for i, ch := range w.Chapters {
					all = append(all, dated{
						Update: Update{
							ID:           fmt.Sprintf("%s-c%d", w.ID, i),
							Type:         UpdateTypeWriting,
							Title:        fmt.Sprintf("Chapter %s: %s", toRoman(i+1), ch.Title),
							Description:  fmt.Sprintf("New entry in chronicle %q", w.Title),
							Date:         ch.Date,
							Link:         link,
							PersonaTitle: p.Title,
						},
						at: ParseDate(ch.Date),
					})
				}
			} else {
				// Chapters usually drive the date; fall back to the
				// writing itself when there are none.
				all = append(all, dated{
					Update: Update{
						ID:           w.ID,
						Type:         UpdateTypeWriting,
						Title:        w.Title,
						Description:  w.Excerpt,
						Date:         w.Date,
						Link:         link,
						PersonaTitle: p.Title,
					},
					at: ParseDate(w.Date),
				})
			}
		}

		for _, wh := range p.Whispers {
			if wh.Hidden {
				continue
			}
			all = append(all, dated{
				Update: Update{
					ID:           wh.ID,
					Type:         UpdateTypeWhisper,
					Title:        "Echo from the Void",
					Description:  wh.Content,
					Date:         wh.Date,
					Link:         link,
					PersonaTitle: p.Title,
				},
				at: ParseDate(wh.Date),
			})
		}

		for i, wk := range p.Works {
			if wk.Hidden || wk.DateAdded == "" {
				continue
			}
			all = append(all, dated{
				Update: Update{
					ID:           fmt.Sprintf("work-%d", i),
					Type:         UpdateTypeWork,
					Title:        wk.Title,
					Description:  "New Artifact: " + wk.Category,
					Date:         wk.DateAdded,
					Link:         link,
					PersonaTitle: p.Title,
				},
				at: ParseDate(wk.DateAdded),
			})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].at.After(all[j].at)
	})

	if limit <= 0 {
		limit = DefaultFeedLimit
	}
	if len(all) > limit {
		all = all[:limit]
	}

	out := make([]Update, len(all))
	for i, d := range all {
		out[i] = d.Update
	}
	return out
}

package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulforge/internal/models"
)

func TestLatestWritingDate(t *testing.T) {
	tests := []struct {
		name    string
		writing models.Writing
		want    string
	}{
		{
			name:    "No Chapters",
			writing: models.Writing{Date: "Oct 1, 2023"},
			want:    "Oct 1, 2023",
		},
		{
			name: "Chapter Newer Than Writing",
			writing: models.Writing{
				Date: "Oct 1, 2023",
				Chapters: []models.Chapter{
					{Date: "Oct 5, 2023"},
					{Date: "Dec 24, 2023"},
					{Date: "Nov 2, 2023"},
				},
			},
			want: "Dec 24, 2023",
		},
		{
			name: "Writing Newer Than Chapters",
			writing: models.Writing{
				Date:     "2024-03-01",
				Chapters: []models.Chapter{{Date: "Oct 5, 2023"}},
			},
			want: "Mar 1, 2024",
		},
		{
			name: "Mixed Layouts",
			writing: models.Writing{
				Date:     "October 1, 2023",
				Chapters: []models.Chapter{{Date: "2023-11-15T10:00:00Z"}},
			},
			want: "Nov 15, 2023",
		},
		{
			name:    "Unparseable Date Passes Through",
			writing: models.Writing{Date: "someday"},
			want:    "someday",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LatestWritingDate(tt.writing))
		})
	}
}

func feedFixture() models.PersonaMap {
	return models.PersonaMap{
		models.PersonaAbyss: {
			ID: "abyss", Title: "The Abyss That Remembers",
			Writings: []models.Writing{
				{
					ID: "w1", Title: "The Chronicle", Date: "Oct 1, 2023",
					Chapters: []models.Chapter{
						{ID: "ch1", Title: "Dawn", Date: "Oct 2, 2023"},
						{ID: "ch2", Title: "Dusk", Date: "Dec 1, 2023"},
					},
				},
				{ID: "w2", Title: "Fragment", Date: "Sep 1, 2023", Excerpt: "a shard"},
				{ID: "w3", Title: "Buried", Date: "Dec 25, 2023", Hidden: true},
			},
			Whispers: []models.Whisper{
				{ID: "wh1", Content: "a murmur", Date: "Nov 20, 2023"},
				{ID: "wh2", Content: "unseen", Date: "Dec 30, 2023", Hidden: true},
			},
		},
		models.PersonaStillwanderer: {
			ID: "stillwanderer", Title: "The Stillwanderer",
			Works: []models.Work{
				{Title: "Capture", Category: "Street", DateAdded: "2023-12-10T00:00:00Z"},
				{Title: "Undated", Category: "Macro"},
				{Title: "Veiled", Category: "Night", DateAdded: "2023-12-20T00:00:00Z", Hidden: true},
			},
		},
		models.PersonaGlyphsmith: {
			ID: "glyphsmith", Title: "The Glyphsmith", Hidden: true,
			Works: []models.Work{{Title: "Ghost", Category: "Design", DateAdded: "2024-01-01T00:00:00Z"}},
		},
	}
}

func TestRecentActivity(t *testing.T) {
	got := RecentActivity(feedFixture(), 10)

	var ids []string
	for _, u := range got {
		ids = append(ids, u.ID)
	}
	// Newest first: work Dec 10 sits between chapter Dec 1 and whisper Nov 20.
	assert.Equal(t, []string{"work-0", "w1-c1", "wh1", "w1-c0", "w2"}, ids)

	byID := map[string]Update{}
	for _, u := range got {
		byID[u.ID] = u
	}

	ch2 := byID["w1-c1"]
	assert.Equal(t, UpdateTypeWriting, ch2.Type)
	assert.Equal(t, "Chapter II: Dusk", ch2.Title)
	assert.Equal(t, `New entry in chronicle "The Chronicle"`, ch2.Description)
	assert.Equal(t, "The Abyss That Remembers", ch2.PersonaTitle)
	assert.Equal(t, "/personas/abyss", ch2.Link)

	whisper := byID["wh1"]
	assert.Equal(t, UpdateTypeWhisper, whisper.Type)
	assert.Equal(t, "Echo from the Void", whisper.Title)
	assert.Equal(t, "a murmur", whisper.Description)

	work := byID["work-0"]
	assert.Equal(t, UpdateTypeWork, work.Type)
	assert.Equal(t, "Capture", work.Title)
	assert.Equal(t, "New Artifact: Street", work.Description)

	// The chapterless writing falls back to its own date and excerpt.
	frag := byID["w2"]
	assert.Equal(t, UpdateTypeWriting, frag.Type)
	assert.Equal(t, "a shard", frag.Description)
}

func TestRecentActivitySkipsHidden(t *testing.T) {
	got := RecentActivity(feedFixture(), 20)
	for _, u := range got {
		assert.NotEqual(t, "w3", u.ID, "hidden writings stay out of the feed")
		assert.NotEqual(t, "wh2", u.ID, "hidden whispers stay out of the feed")
		assert.NotEqual(t, "The Glyphsmith", u.PersonaTitle, "hidden personas stay out of the feed")
		assert.NotEqual(t, "Veiled", u.Title, "hidden works stay out of the feed")
		assert.NotEqual(t, "Undated", u.Title, "works without a timestamp stay out of the feed")
	}
}

func TestRecentActivityTruncates(t *testing.T) {
	all := RecentActivity(feedFixture(), 20)
	require.Greater(t, len(all), 3)

	assert.Len(t, RecentActivity(feedFixture(), 3), 3)
	assert.Equal(t, all[:3], RecentActivity(feedFixture(), 3))

	capped := RecentActivity(feedFixture(), 0)
	assert.LessOrEqual(t, len(capped), DefaultFeedLimit)
}

func TestToRoman(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "I"}, {2, "II"}, {4, "IV"}, {9, "IX"}, {14, "XIV"}, {40, "XL"}, {0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toRoman(tt.n))
	}
}

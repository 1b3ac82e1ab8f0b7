// Package seed provides helpers to create demo data for the content store.
// These helpers are intended for development and testing only.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"soulforge/internal/content"
	"soulforge/internal/models"
	"soulforge/internal/storage"
)

// Seeder writes demo snapshots into the blob store.
type Seeder struct {
	store storage.Store
	rng   *rand.Rand
}

// NewSeeder creates a Seeder bound to the given store.
func NewSeeder(st storage.Store) *Seeder {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Seeder{store: st, rng: rand.New(rand.NewSource(seed))}
}

// ClearAll removes every persisted collection, including the session.
func (s *Seeder) ClearAll(ctx context.Context) error {
	for _, key := range []string{storage.KeyPersonas, storage.KeyGlobal, storage.KeyAbout, storage.KeySession} {
		if err := s.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	return nil
}

// Defaults persists the compiled-in default dataset as the starting
// snapshot, the same state a fresh load would migrate into.
func (s *Seeder) Defaults(ctx context.Context) error {
	now := time.Now()
	collections := map[string]any{
		storage.KeyPersonas: content.MigratedDefaultPersonas(now),
		storage.KeyGlobal:   content.DefaultGlobal(),
		storage.KeyAbout:    content.DefaultAbout(),
	}
	for key, v := range collections {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		if err := s.store.Set(ctx, key, raw); err != nil {
			return fmt.Errorf("failed to write %s: %w", key, err)
		}
	}
	return nil
}

// FakeEchoes sprinkles n generated comments across the chapters of the
// Abyss persona, nesting roughly a third of them as replies.
func (s *Seeder) FakeEchoes(ctx context.Context, n int) error {
	personas, err := s.loadPersonas(ctx)
	if err != nil {
		return err
	}

	p, ok := personas[models.PersonaAbyss]
	if !ok {
		return fmt.Errorf("abyss persona missing; seed defaults first")
	}
	var chapters []*models.Chapter
	for i := range p.Writings {
		for j := range p.Writings[i].Chapters {
			chapters = append(chapters, &p.Writings[i].Chapters[j])
		}
	}
	if len(chapters) == 0 {
		return fmt.Errorf("no chapters to attach echoes to; seed defaults first")
	}

	for i := 0; i < n; i++ {
		ch := chapters[s.rng.Intn(len(chapters))]

		echo := s.fakeComment()
		if len(ch.Comments) > 0 && s.rng.Intn(3) == 0 {
			parent := ch.Comments[s.rng.Intn(len(ch.Comments))]
			ch.Comments = content.InsertReply(ch.Comments, parent.ID, echo)
		} else {
			ch.Comments = append(ch.Comments, echo)
		}
	}

	personas[models.PersonaAbyss] = p
	return s.savePersonas(ctx, personas)
}

// FakeWhispers appends n generated whispers to the Abyss persona.
func (s *Seeder) FakeWhispers(ctx context.Context, n int) error {
	personas, err := s.loadPersonas(ctx)
	if err != nil {
		return err
	}

	p, ok := personas[models.PersonaAbyss]
	if !ok {
		return fmt.Errorf("abyss persona missing; seed defaults first")
	}

	for i := 0; i < n; i++ {
		p.Whispers = append(p.Whispers, models.Whisper{
			ID:      uuid.NewString(),
			Content: gofakeit.Quote(),
			Date:    s.recentDate(),
		})
	}

	personas[models.PersonaAbyss] = p
	return s.savePersonas(ctx, personas)
}

func (s *Seeder) fakeComment() models.Comment {
	return models.Comment{
		ID:     uuid.NewString(),
		Author: gofakeit.Username(),
		Text:   gofakeit.Sentence(s.rng.Intn(12) + 4),
		Date:   s.recentDate(),
	}
}

// recentDate spreads dates over the last 90 days in the human-entered
// format the snapshots use.
func (s *Seeder) recentDate() string {
	daysBack := s.rng.Intn(90)
	return time.Now().AddDate(0, 0, -daysBack).Format("Jan 2, 2006")
}

func (s *Seeder) loadPersonas(ctx context.Context) (models.PersonaMap, error) {
	raw, err := s.store.Get(ctx, storage.KeyPersonas)
	if err != nil {
		return nil, fmt.Errorf("failed to read personas: %w", err)
	}
	var personas models.PersonaMap
	if err := json.Unmarshal(raw, &personas); err != nil {
		return nil, fmt.Errorf("failed to decode personas: %w", err)
	}
	return personas, nil
}

func (s *Seeder) savePersonas(ctx context.Context, personas models.PersonaMap) error {
	raw, err := json.Marshal(personas)
	if err != nil {
		return fmt.Errorf("failed to encode personas: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyPersonas, raw); err != nil {
		return fmt.Errorf("failed to write personas: %w", err)
	}
	return nil
}

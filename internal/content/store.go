// Package content implements the persona/about/global content store: load
// with migration, role-gated mutation, and whole-collection persistence.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"soulforge/internal/auth"
	"soulforge/internal/middleware"
	"soulforge/internal/models"
	"soulforge/internal/observability"
	"soulforge/internal/storage"
)

// ContentStore holds the three content collections in memory and writes
// each back to storage as one blob on every successful mutation. Reads and
// writes go through the mutex because the HTTP layer serves them
// concurrently; readers get deep copies.
type ContentStore struct {
	store storage.Store
	creds auth.Credentials
	now   func() time.Time

	mu       sync.RWMutex
	personas models.PersonaMap
	global   models.GlobalContent
	about    models.AboutMap
	session  *models.User
}

// New creates a store backed by the given blob storage. Call Load before
// serving reads.
func New(store storage.Store, creds auth.Credentials) *ContentStore {
	if creds == nil {
		creds = auth.DefaultCredentials()
	}
	return &ContentStore{store: store, creds: creds, now: time.Now}
}

// Load reads every collection from storage and runs the load-time
// migrations. A missing or corrupt collection falls back to the compiled-in
// default; Load logs and keeps going, it never fails.
func (s *ContentStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.personas = DefaultPersonas()
	s.loadJSON(ctx, storage.KeyPersonas, &s.personas)
	s.personas = migratePersonas(s.personas, s.now())

	s.global = DefaultGlobal()
	s.loadJSON(ctx, storage.KeyGlobal, &s.global)
	s.global = migrateGlobal(s.global)

	s.about = DefaultAbout()
	s.loadJSON(ctx, storage.KeyAbout, &s.about)
	s.about = migrateAbout(s.about)

	var user models.User
	if s.loadJSON(ctx, storage.KeySession, &user) && user.Username != "" {
		s.session = &user
	}
}

// loadJSON reads key into v, leaving v untouched on absence or corruption.
func (s *ContentStore) loadJSON(ctx context.Context, key string, v any) bool {
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			middleware.Logger.WarnContext(ctx, "Failed to read collection, using defaults", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		middleware.Logger.WarnContext(ctx, "Corrupt collection, using defaults", "key", key, "error", err)
		return false
	}
	return true
}

// persist marshals v and writes it under key. On failure the in-memory
// state keeps the change; the caller reports UpdatePersistFailed.
func (s *ContentStore) persist(ctx context.Context, key string, v any) bool {
	raw, err := json.Marshal(v)
	if err == nil {
		err = s.store.Set(ctx, key, raw)
	}
	if err != nil {
		observability.PersistFailures.WithLabelValues(key).Inc()
		middleware.Logger.ErrorContext(ctx, "Failed to persist collection", "key", key, "error", err)
		return false
	}
	return true
}

func unauthorized(ctx context.Context, operation string, user *models.User) models.UpdateStatus {
	observability.UnauthorizedMutations.WithLabelValues(operation).Inc()
	username := ""
	if user != nil {
		username = user.Username
	}
	middleware.Logger.WarnContext(ctx, "Mutation rejected", "operation", operation, "username", username)
	return models.UpdateUnauthorized
}

// Personas returns a deep copy of the full persona collection.
func (s *ContentStore) Personas() models.PersonaMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePersonas(s.personas)
}

// Persona returns a deep copy of one archetype's record.
func (s *ContentStore) Persona(t models.PersonaType) (models.Persona, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.personas[t]
	if !ok {
		return models.Persona{}, false
	}
	return clonePersona(p), true
}

// GlobalContent returns a deep copy of the site-settings record.
func (s *ContentStore) GlobalContent() models.GlobalContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneGlobal(s.global)
}

// AboutData returns a deep copy of the full about collection.
func (s *ContentStore) AboutData() models.AboutMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAbout(s.about)
}

// AboutTab returns a deep copy of one tab's record.
func (s *ContentStore) AboutTab(tab models.AboutTab) (models.AboutContent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ac, ok := s.about[tab]
	if !ok {
		return models.AboutContent{}, false
	}
	return cloneAboutContent(ac), true
}

// UpdatePersona replaces one archetype's record wholesale. Any session may
// edit personas; the record is validated only for a known archetype.
func (s *ContentStore) UpdatePersona(ctx context.Context, user *models.User, t models.PersonaType, p models.Persona) models.UpdateStatus {
	if !models.ValidPersonaType(t) {
		return models.UpdateInvalid
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.personas[t] = clonePersona(p)
	if !s.persist(ctx, storage.KeyPersonas, s.personas) {
		return models.UpdatePersistFailed
	}
	return models.UpdateApplied
}

// UpdateGlobalContent replaces the site-settings record. Admin only.
func (s *ContentStore) UpdateGlobalContent(ctx context.Context, user *models.User, gc models.GlobalContent) models.UpdateStatus {
	if !user.HasPermission(models.RoleAdmin) {
		return unauthorized(ctx, "update_global_content", user)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.global = cloneGlobal(gc)
	if !s.persist(ctx, storage.KeyGlobal, s.global) {
		return models.UpdatePersistFailed
	}
	return models.UpdateApplied
}

// UpdateAboutData replaces one tab's record. Editors and admins.
func (s *ContentStore) UpdateAboutData(ctx context.Context, user *models.User, tab models.AboutTab, ac models.AboutContent) models.UpdateStatus {
	if !models.ValidAboutTab(tab) {
		return models.UpdateInvalid
	}
	if !user.HasPermission(models.RoleEditor) {
		return unauthorized(ctx, "update_about_data", user)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.about[tab] = cloneAboutContent(ac)
	if !s.persist(ctx, storage.KeyAbout, s.about) {
		return models.UpdatePersistFailed
	}
	return models.UpdateApplied
}

// mutateChapter applies fn to the comment forest of one chapter, addressed
// by persona, writing id, and chapter id, then persists the personas
// collection. Unknown addresses return UpdateInvalid without changes.
func (s *ContentStore) mutateChapter(ctx context.Context, t models.PersonaType, writingID, chapterID string, fn func([]models.Comment) []models.Comment) models.UpdateStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.personas[t]
	if !ok {
		return models.UpdateInvalid
	}
	found := false
	for i := range p.Writings {
		if p.Writings[i].ID != writingID {
			continue
		}
		for j := range p.Writings[i].Chapters {
			if p.Writings[i].Chapters[j].ID != chapterID {
				continue
			}
			p.Writings[i].Chapters[j].Comments = fn(p.Writings[i].Chapters[j].Comments)
			found = true
		}
	}
	if !found {
		return models.UpdateInvalid
	}
	s.personas[t] = p
	if !s.persist(ctx, storage.KeyPersonas, s.personas) {
		return models.UpdatePersistFailed
	}
	return models.UpdateApplied
}

// AddEcho appends a top-level comment to a chapter. Open to anyone, same
// as the comment form it backs.
func (s *ContentStore) AddEcho(ctx context.Context, t models.PersonaType, writingID, chapterID string, comment models.Comment) models.UpdateStatus {
	return s.mutateChapter(ctx, t, writingID, chapterID, func(forest []models.Comment) []models.Comment {
		out := make([]models.Comment, 0, len(forest)+1)
		out = append(out, forest...)
		return append(out, comment)
	})
}

// AddEchoReply appends a reply under the comment with parentID. An unknown
// parent id leaves the forest structurally unchanged and still reports
// success; the reply silently goes nowhere.
func (s *ContentStore) AddEchoReply(ctx context.Context, t models.PersonaType, writingID, chapterID, parentID string, reply models.Comment) models.UpdateStatus {
	return s.mutateChapter(ctx, t, writingID, chapterID, func(forest []models.Comment) []models.Comment {
		return InsertReply(forest, parentID, reply)
	})
}

// DeleteEcho removes a comment and its whole reply subtree. Moderation is
// for editors and admins.
func (s *ContentStore) DeleteEcho(ctx context.Context, user *models.User, t models.PersonaType, writingID, chapterID, commentID string) models.UpdateStatus {
	if !user.HasPermission(models.RoleEditor) {
		return unauthorized(ctx, "delete_echo", user)
	}
	return s.mutateChapter(ctx, t, writingID, chapterID, func(forest []models.Comment) []models.Comment {
		return DeleteComment(forest, commentID)
	})
}

// Login checks the credential table and, on success, installs and persists
// the session. The bool result distinguishes bad credentials from success;
// callers get no detail beyond that.
func (s *ContentStore) Login(ctx context.Context, username, password string) (*models.User, bool) {
	user, ok := s.creds.Verify(username, password)
	if !ok {
		observability.LoginAttempts.WithLabelValues("failure").Inc()
		middleware.Logger.WarnContext(ctx, "Login failed", "username", username)
		return nil, false
	}
	observability.LoginAttempts.WithLabelValues("success").Inc()

	s.mu.Lock()
	s.session = user
	s.mu.Unlock()
	s.persist(ctx, storage.KeySession, user)
	middleware.Logger.InfoContext(ctx, "Login succeeded", "username", username, "role", user.Role)
	return &models.User{Username: user.Username, Role: user.Role}, true
}

// Logout clears the session in memory and in storage.
func (s *ContentStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	if err := s.store.Delete(ctx, storage.KeySession); err != nil {
		middleware.Logger.WarnContext(ctx, "Failed to clear persisted session", "error", err)
	}
}

// RestoreSession returns the current session user, falling back to the
// persisted copy when memory has none. Returns nil when logged out.
func (s *ContentStore) RestoreSession(ctx context.Context) *models.User {
	s.mu.RLock()
	if s.session != nil {
		u := *s.session
		s.mu.RUnlock()
		return &u
	}
	s.mu.RUnlock()

	var user models.User
	if !s.loadJSON(ctx, storage.KeySession, &user) || user.Username == "" {
		return nil
	}
	s.mu.Lock()
	s.session = &user
	s.mu.Unlock()
	u := user
	return &u
}

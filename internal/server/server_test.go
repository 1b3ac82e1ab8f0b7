package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulforge/internal/auth"
	"soulforge/internal/config"
	"soulforge/internal/content"
	"soulforge/internal/mailer"
	"soulforge/internal/models"
	"soulforge/internal/storage"
)

const testSecret = "test-secret-key-12345678901234567890123456789012"

type stubMailer struct {
	sent []mailer.Message
	err  error
}

func (m *stubMailer) Send(msg mailer.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type stubGenerator struct {
	image string
	err   error
}

func (g *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	return g.image, g.err
}

type testEnv struct {
	app     *fiber.App
	server  *Server
	mem     *storage.Memory
	mailer  *stubMailer
	gen     *stubGenerator
	content *content.ContentStore
}

func setupTestServer(t *testing.T) *testEnv {
	t.Helper()
	cfg := &config.Config{Port: "0", JWTSecret: testSecret}
	mem := storage.NewMemory()
	cs := content.New(mem, nil)
	cs.Load(context.Background())

	m := &stubMailer{}
	g := &stubGenerator{image: "data:image/jpeg;base64,ZmFrZQ=="}
	srv := NewServerWithDeps(cfg, mem, cs, m, g)
	return &testEnv{app: srv.App(), server: srv, mem: mem, mailer: m, gen: g, content: cs}
}

func bearerFor(t *testing.T, role models.UserRole) string {
	t.Helper()
	token, err := auth.IssueToken(testSecret, &models.User{Username: "tester", Role: role}, 0)
	require.NoError(t, err)
	return "Bearer " + token
}

func jsonReq(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHealthEndpoints(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestLoginEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantRole   string
	}{
		{name: "Owner", body: fiber.Map{"username": "Sage", "password": "Sagereturns"}, wantStatus: http.StatusOK, wantRole: "ADMIN"},
		{name: "Showcase", body: fiber.Map{"username": "Showcase", "password": "TheSage"}, wantStatus: http.StatusOK, wantRole: "SHOWOFF"},
		{name: "Wrong Password", body: fiber.Map{"username": "Sage", "password": "wrongpass"}, wantStatus: http.StatusUnauthorized},
		{name: "Missing Fields", body: fiber.Map{"username": "Sage"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestServer(t)
			resp, err := env.app.Test(jsonReq(t, http.MethodPost, "/api/auth/login", tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus == http.StatusOK {
				var body loginResponse
				decode(t, resp, &body)
				assert.NotEmpty(t, body.Token)
				require.NotNil(t, body.User)
				assert.Equal(t, tt.wantRole, string(body.User.Role))
			} else {
				_ = resp.Body.Close()
			}
		})
	}
}

func TestGlobalContentRoundTrip(t *testing.T) {
	env := setupTestServer(t)

	var gc models.GlobalContent
	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/global", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &gc)
	assert.Equal(t, content.DefaultSiteTitle, gc.SiteTitle)

	gc.SiteTitle = "X"

	// Anonymous write is rejected at the auth middleware.
	resp, err = env.app.Test(jsonReq(t, http.MethodPut, "/api/global", gc))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()

	// A non-admin session is rejected by the store's role gate.
	req := jsonReq(t, http.MethodPut, "/api/global", gc)
	req.Header.Set("Authorization", bearerFor(t, models.RoleShowoff))
	resp, err = env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	_ = resp.Body.Close()

	req = jsonReq(t, http.MethodPut, "/api/global", gc)
	req.Header.Set("Authorization", bearerFor(t, models.RoleAdmin))
	resp, err = env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	var after models.GlobalContent
	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/api/global", nil))
	require.NoError(t, err)
	decode(t, resp, &after)
	assert.Equal(t, "X", after.SiteTitle)

	// And the write reached storage, so a cold start sees it too.
	reloaded := content.New(env.mem, nil)
	reloaded.Load(context.Background())
	assert.Equal(t, "X", reloaded.GlobalContent().SiteTitle)
}

func TestPersonaEndpoints(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/personas/glyphsmith", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var p models.Persona
	decode(t, resp, &p)
	assert.Equal(t, "glyphsmith", p.ID)

	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/api/personas/The%20Glyphsmith", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/api/personas/nobody", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	// Any authenticated session may edit a persona; pasted Drive links are
	// normalized on the way in.
	p.Subtitle = "Reforged"
	p.Image = "https://drive.google.com/file/d/1AbCdEf/view?usp=sharing"
	req := jsonReq(t, http.MethodPut, "/api/personas/glyphsmith", p)
	req.Header.Set("Authorization", bearerFor(t, models.RoleShowoff))
	resp, err = env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	got, ok := env.content.Persona(models.PersonaGlyphsmith)
	require.True(t, ok)
	assert.Equal(t, "Reforged", got.Subtitle)
	assert.Equal(t, "https://drive.google.com/thumbnail?id=1AbCdEf&sz=w4096", got.Image)
}

func TestEchoEndpoints(t *testing.T) {
	env := setupTestServer(t)

	seed := models.Persona{
		ID: "abyss", Title: "The Abyss That Remembers",
		Writings: []models.Writing{{
			ID: "w1", Title: "The Chronicle", Date: "Oct 1, 2023",
			Chapters: []models.Chapter{{ID: "ch1", Title: "Dawn", Date: "Oct 2, 2023", Comments: []models.Comment{}}},
		}},
	}
	require.Equal(t, models.UpdateApplied, env.content.UpdatePersona(context.Background(),
		&models.User{Username: "Sage", Role: models.RoleAdmin}, models.PersonaAbyss, seed))

	base := "/api/personas/abyss/writings/w1/chapters/ch1/echoes"

	resp, err := env.app.Test(jsonReq(t, http.MethodPost, base, fiber.Map{"author": "Wanderer", "text": "first"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var echo models.Comment
	decode(t, resp, &echo)
	require.NotEmpty(t, echo.ID)

	resp, err = env.app.Test(jsonReq(t, http.MethodPost, base+"/"+echo.ID+"/replies", fiber.Map{"text": "an answer"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var reply models.Comment
	decode(t, resp, &reply)
	assert.Equal(t, "Anonymous Wanderer", reply.Author)

	p, _ := env.content.Persona(models.PersonaAbyss)
	forest := p.Writings[0].Chapters[0].Comments
	assert.Equal(t, 2, content.CountComments(forest))

	// Blank text is rejected before it reaches the store.
	resp, err = env.app.Test(jsonReq(t, http.MethodPost, base, fiber.Map{"text": "  "}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	// Unknown chapter address.
	resp, err = env.app.Test(jsonReq(t, http.MethodPost,
		"/api/personas/abyss/writings/w1/chapters/nope/echoes", fiber.Map{"text": "lost"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	// Deleting needs a session with moderation rights.
	del := httptest.NewRequest(http.MethodDelete, base+"/"+echo.ID, nil)
	resp, err = env.app.Test(del)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_ = resp.Body.Close()

	del = httptest.NewRequest(http.MethodDelete, base+"/"+echo.ID, nil)
	del.Header.Set("Authorization", bearerFor(t, models.RoleGuest))
	resp, err = env.app.Test(del)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	_ = resp.Body.Close()

	del = httptest.NewRequest(http.MethodDelete, base+"/"+echo.ID, nil)
	del.Header.Set("Authorization", bearerFor(t, models.RoleEditor))
	resp, err = env.app.Test(del)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	p, _ = env.content.Persona(models.PersonaAbyss)
	assert.Equal(t, 0, content.CountComments(p.Writings[0].Chapters[0].Comments))
}

func TestFeedEndpoint(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/feed?limit=3", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var feed []content.Update
	decode(t, resp, &feed)
	assert.LessOrEqual(t, len(feed), 3)
	for _, u := range feed {
		assert.NotEmpty(t, u.Type)
		assert.NotEmpty(t, u.PersonaTitle)
	}
}

func TestContactEndpoint(t *testing.T) {
	t.Run("Delivers", func(t *testing.T) {
		env := setupTestServer(t)
		resp, err := env.app.Test(jsonReq(t, http.MethodPost, "/api/contact",
			fiber.Map{"name": "A", "email": "a@example.com", "message": "hello"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
		require.Len(t, env.mailer.sent, 1)
		assert.Equal(t, "a@example.com", env.mailer.sent[0].Email)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		env := setupTestServer(t)
		resp, err := env.app.Test(jsonReq(t, http.MethodPost, "/api/contact", fiber.Map{"name": "A"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		_ = resp.Body.Close()
		assert.Empty(t, env.mailer.sent)
	})

	t.Run("Relay Failure", func(t *testing.T) {
		env := setupTestServer(t)
		env.mailer.err = assert.AnError
		resp, err := env.app.Test(jsonReq(t, http.MethodPost, "/api/contact",
			fiber.Map{"email": "a@example.com", "message": "hello"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		_ = resp.Body.Close()
	})
}

func TestGenerateBannerEndpoint(t *testing.T) {
	env := setupTestServer(t)

	req := jsonReq(t, http.MethodPost, "/api/personas/glyphsmith/banner", nil)
	req.Header.Set("Authorization", bearerFor(t, models.RoleGuest))
	resp, err := env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	_ = resp.Body.Close()

	req = jsonReq(t, http.MethodPost, "/api/personas/glyphsmith/banner", nil)
	req.Header.Set("Authorization", bearerFor(t, models.RoleEditor))
	resp, err = env.app.Test(req, 10000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, env.gen.image, body["image"])

	p, _ := env.content.Persona(models.PersonaGlyphsmith)
	assert.Equal(t, env.gen.image, p.Image)
}

func TestProcessMediaURLEndpoint(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.app.Test(jsonReq(t, http.MethodPost, "/api/media/url",
		fiber.Map{"url": "https://drive.google.com/open?id=1Xy"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "https://drive.google.com/thumbnail?id=1Xy&sz=w4096", body["url"])
}

func TestNewServerExposesMetrics(t *testing.T) {
	cfg := &config.Config{Port: "0", JWTSecret: testSecret, StorageDriver: "memory"}

	srv, err := NewServer(cfg)
	require.NoError(t, err)
	app := srv.App()

	// A scraped request shows up as an http_requests_total sample.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/feed", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(raw), "http_requests_total")
}

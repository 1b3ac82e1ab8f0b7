// Package imagegen produces persona banner images via a hosted
// text-to-image model.
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"soulforge/internal/config"
	"soulforge/internal/models"
)

const bannerModel = "imagen-4.0-generate-001"

// BannerPrompt renders the house-style prompt for a persona banner.
func BannerPrompt(p models.Persona) string {
	return fmt.Sprintf(`Abstract, mystical, ethereal digital art representing a character archetype named %q - %q. Description: %s. Aesthetic: Dark, moody, obsidian black with glowing cyan and soul-fire blue accents, magical, cinematic lighting, high detail, 8k resolution, concept art style. No text.`,
		p.Title, p.Subtitle, p.Description)
}

// Generator turns a prompt into an embeddable image data URI.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client calls the Generative Language predict endpoint.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New builds a client from config. The base URL is overridable for tests.
func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.ImageGenURL,
		apiKey:  cfg.ImageGenAPIKey,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// NewWithBaseURL builds a client against an arbitrary endpoint.
func NewWithBaseURL(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

type predictRequest struct {
	Instances  []predictInstance `json:"instances"`
	Parameters predictParameters `json:"parameters"`
}

type predictInstance struct {
	Prompt string `json:"prompt"`
}

type predictParameters struct {
	SampleCount    int    `json:"sampleCount"`
	AspectRatio    string `json:"aspectRatio"`
	OutputMimeType string `json:"outputMimeType"`
}

type predictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
	} `json:"predictions"`
}

// Generate requests one 16:9 JPEG and returns it as a data URI ready to be
// stored in a persona's image field.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("image generation is not configured")
	}

	body, err := json.Marshal(predictRequest{
		Instances: []predictInstance{{Prompt: prompt}},
		Parameters: predictParameters{
			SampleCount:    1,
			AspectRatio:    "16:9",
			OutputMimeType: "image/jpeg",
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode predict request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:predict", c.baseURL, bannerModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("predict call failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("predict call returned %d: %s", resp.StatusCode, raw)
	}

	var parsed predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode predict response: %w", err)
	}
	if len(parsed.Predictions) == 0 || parsed.Predictions[0].BytesBase64Encoded == "" {
		return "", fmt.Errorf("predict response contained no image")
	}
	return "data:image/jpeg;base64," + parsed.Predictions[0].BytesBase64Encoded, nil
}

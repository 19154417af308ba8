// Package theme supplies cosmetic level metadata from a generative text
// service. The provider never fails outward: any error resolves to a
// fixed fallback theme, so the menu is never blocked on the network.
package theme

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// Theme is the cosmetic metadata for one level. ColorToken is an opaque
// styling token consumed only by the renderer.
type Theme struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ColorToken  string `json:"colorToken"`
}

// Provider produces a theme for a prompt seed. Implementations must
// always return a usable theme.
type Provider interface {
	Request(ctx context.Context, promptSeed string) Theme
}

// Fallback returns the static theme used whenever generation is
// unavailable or misbehaves.
func Fallback() Theme {
	return Theme{
		Name:        "Skyline Scramble",
		Description: "A classic dash across the rooftops. Grab the coins, mind the gaps.",
		ColorToken:  "sky-dusk",
	}
}

// HTTPProvider asks a generative text endpoint for level theming.
type HTTPProvider struct {
	endpoint string
	apiKey   string
	client   *http.Client
	logger   *log.Logger
}

// NewHTTPProvider creates a provider for the given endpoint. An empty
// endpoint or API key disables the network call entirely.
func NewHTTPProvider(endpoint, apiKey string, logger *log.Logger) *HTTPProvider {
	return &HTTPProvider{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 5 * time.Second},
		logger:   logger,
	}
}

type themeRequest struct {
	Prompt string `json:"prompt"`
}

// Request posts the prompt seed and parses the generated triple. Any
// failure, including a missing credential, a non-2xx status, or a
// malformed body, resolves to the fallback; callers never see an error.
func (p *HTTPProvider) Request(ctx context.Context, promptSeed string) Theme {
	if p.endpoint == "" || p.apiKey == "" {
		return Fallback()
	}

	prompt := fmt.Sprintf(
		"Invent a short whimsical platformer level theme for %q. "+
			"Reply as JSON with fields name, description and colorToken.",
		promptSeed,
	)
	body, err := json.Marshal(themeRequest{Prompt: prompt})
	if err != nil {
		return Fallback()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		p.warn("theme request build failed", err)
		return Fallback()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		p.warn("theme request failed", err)
		return Fallback()
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		p.warn("theme request rejected", fmt.Errorf("status %s", resp.Status))
		return Fallback()
	}

	var th Theme
	if err := json.NewDecoder(resp.Body).Decode(&th); err != nil {
		p.warn("theme response unreadable", err)
		return Fallback()
	}
	if th.Name == "" || th.ColorToken == "" {
		return Fallback()
	}
	return th
}

func (p *HTTPProvider) warn(msg string, err error) {
	if p.logger != nil {
		p.logger.Warn(msg, "err", err)
	}
}

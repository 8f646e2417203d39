// Package advice calls the external text-completion collaborator for the
// water assistant. The contract is always-succeeds-with-content: every
// failure mode degrades to a fixed apology with no sources.
package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"pureflow/config"
	"pureflow/internal/domain/service"
)

const fallbackText = "I'm having a bit of trouble connecting to my cloud knowledge. Please check your internet."

const systemInstruction = "You are the Township PureFlow Assistant. " +
	"Answer questions about RO water quality, delivery plans and pricing. " +
	"Keep responses concise (max 3 sentences) and accurate about scientific water standards."

type adviceService struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewAdviceService builds the collaborator client. A nil advice config yields
// a client whose every call returns the apology.
func NewAdviceService(cfg *config.Config, logger *slog.Logger) service.AdviceService {
	svc := &adviceService{logger: logger}
	if cfg.Advice == nil {
		return svc
	}

	timeout := cfg.Advice.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	svc.endpoint = cfg.Advice.Endpoint
	svc.apiKey = cfg.Advice.APIKey
	svc.model = cfg.Advice.Model
	svc.httpClient = &http.Client{Timeout: timeout}

	return svc
}

type completionRequest struct {
	Model  string `json:"model"`
	System string `json:"system,omitempty"`
	Prompt string `json:"prompt"`
}

type completionResponse struct {
	Text    string `json:"text"`
	Sources []struct {
		Title string `json:"title"`
		URI   string `json:"uri"`
	} `json:"sources"`
}

// GetWaterAdvice asks the collaborator and never fails: network errors, bad
// status codes and undecodable bodies all collapse into the apology string.
func (s *adviceService) GetWaterAdvice(ctx context.Context, prompt string) service.Advice {
	if s.httpClient == nil || s.endpoint == "" {
		return service.Advice{Text: fallbackText, Sources: []service.AdviceSource{}}
	}

	body, err := json.Marshal(completionRequest{
		Model:  s.model,
		System: systemInstruction,
		Prompt: prompt,
	})
	if err != nil {
		return s.apologize(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return s.apologize(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return s.apologize(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Warn("advice collaborator returned non-success status",
			slog.Int("status", resp.StatusCode),
		)

		return service.Advice{Text: fallbackText, Sources: []service.AdviceSource{}}
	}

	var decoded completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return s.apologize(err)
	}

	text := decoded.Text
	if text == "" {
		text = "I couldn't process that. Please try again."
	}

	sources := make([]service.AdviceSource, 0, len(decoded.Sources))
	for _, src := range decoded.Sources {
		if src.URI == "" {
			continue
		}
		sources = append(sources, service.AdviceSource{Title: src.Title, URI: src.URI})
	}

	return service.Advice{Text: text, Sources: sources}
}

func (s *adviceService) apologize(err error) service.Advice {
	s.logger.Warn("advice collaborator call failed", slog.Any("error", err))

	return service.Advice{Text: fallbackText, Sources: []service.AdviceSource{}}
}

package service

import "context"

// AdviceSource is a citation attached to an advice answer.
type AdviceSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Advice is a free-text answer with zero or more cited sources.
type Advice struct {
	Text    string         `json:"text"`
	Sources []AdviceSource `json:"sources"`
}

// AdviceService answers free-text water questions via an external
// text-completion call. It always succeeds with content: any failure degrades
// to a fixed apology string with no sources.
type AdviceService interface {
	GetWaterAdvice(ctx context.Context, prompt string) Advice
}

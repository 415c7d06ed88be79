package model

// ModerationRequest represents a manual moderation probe
type ModerationRequest struct {
	Text string `json:"text"`
}

// ModerationResult represents the ephemeral output of a manual probe.
// Same score shape as Submission but never persisted by the backend view.
type ModerationResult struct {
	IsSpam           bool         `json:"is_spam"`
	SpamScore        float64      `json:"spam_score"`
	IsToxic          bool         `json:"is_toxic"`
	ToxicityScore    float64      `json:"toxicity_score"`
	Recommendation   string       `json:"recommendation"`
	FlaggedWords     FlaggedWords `json:"flagged_words"`
	Confidence       float64      `json:"confidence"`
	ProcessingTimeMS FlexFloat    `json:"processing_time_ms"`
}

// ModerationLog represents one entry of the backend's moderation log
type ModerationLog struct {
	ID           int          `json:"id"`
	TextPreview  string       `json:"text_preview"`
	IsSpam       bool         `json:"is_spam"`
	IsToxic      bool         `json:"is_toxic"`
	Confidence   float64      `json:"confidence"`
	FlaggedWords FlaggedWords `json:"flagged_words"`
	Timestamp    string       `json:"timestamp"`
}

// TestRecord represents one locally kept manual-test history entry
type TestRecord struct {
	ID             int     `json:"id"`
	Text           string  `json:"text"`
	Recommendation string  `json:"recommendation"`
	Confidence     float64 `json:"confidence"`
	CreatedAt      string  `json:"created_at"`
}

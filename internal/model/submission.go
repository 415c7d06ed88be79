package model

// Recommendation outcomes returned by the moderation engine
const (
	RecommendationApprove = "APPROVE"
	RecommendationReview  = "REVIEW"
	RecommendationReject  = "REJECT"
)

// Submission represents one moderation event owned by the backend
type Submission struct {
	ID                 int          `json:"id"`
	ClientName         string       `json:"client_name"`
	ContentText        string       `json:"content_text"`
	IsSpam             bool         `json:"is_spam"`
	SpamScore          float64      `json:"spam_score"`
	IsToxic            bool         `json:"is_toxic"`
	ToxicityScore      float64      `json:"toxicity_score"`
	IsInappropriate    bool         `json:"is_inappropriate"`
	InappropriateScore float64      `json:"inappropriate_score"`
	Recommendation     string       `json:"recommendation"`
	FlaggedWords       FlaggedWords `json:"flagged_words"`
	Confidence         float64      `json:"confidence"`
	CreatedAt          string       `json:"created_at"`
}

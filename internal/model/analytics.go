package model

// AnalyticsOverview represents the aggregate analytics response
type AnalyticsOverview struct {
	Overview       OverviewStats   `json:"overview"`
	RecentActivity []ActivityPoint `json:"recent_activity"`
	TopClients     []TopClient     `json:"top_clients"`
}

// OverviewStats represents the aggregate moderation counts
type OverviewStats struct {
	TotalSubmissions      FlexInt   `json:"total_submissions"`
	SpamDetected          FlexInt   `json:"spam_detected"`
	ToxicDetected         FlexInt   `json:"toxic_detected"`
	InappropriateDetected FlexInt   `json:"inappropriate_detected"`
	AvgProcessingTime     FlexFloat `json:"avg_processing_time"`
	Approved              FlexInt   `json:"approved"`
	Review                FlexInt   `json:"review"`
	Rejected              FlexInt   `json:"rejected"`
}

// ActivityPoint represents one day of submission volume
type ActivityPoint struct {
	Date  string  `json:"date"`
	Count FlexInt `json:"count"`
}

// TopClient represents a client ranked by request volume
type TopClient struct {
	Name         string  `json:"name"`
	RequestCount FlexInt `json:"request_count"`
}

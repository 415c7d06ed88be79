package model

// Client represents an API consumer of the moderation backend
type Client struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	APIKey        string  `json:"api_key"`
	IsActive      bool    `json:"is_active"`
	TotalRequests FlexInt `json:"total_requests"`
	CreatedAt     string  `json:"created_at"`
}

// ClientCreate represents the add-client form
type ClientCreate struct {
	Name  string `json:"name" form:"name" binding:"required"`
	Email string `json:"email" form:"email" binding:"required"`
}

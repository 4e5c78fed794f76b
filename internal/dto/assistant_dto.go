package dto

// The assistant is an explicitly mock capability: insights come from a real
// low-stock scan plus static tips, chat replies are canned. Every response
// carries Mock=true so no client can mistake it for inference.

type InsightsResponse struct {
	Mock     bool     `json:"mock"`
	Insights []string `json:"insights"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

type ChatResponse struct {
	Mock  bool   `json:"mock"`
	Reply string `json:"reply"`
}

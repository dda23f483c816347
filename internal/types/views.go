package types

// Response types consumed by the frontend. Handlers never return model
// structs directly.

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type FlashMessage struct {
	Category string `json:"category"` // "success", "danger" or "warning"
	Message  string `json:"message"`
}

type PollSummary struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
}

type OptionView struct {
	ID    uint   `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

type PollView struct {
	ID       uint         `json:"id"`
	Question string       `json:"question"`
	Options  []OptionView `json:"options"`
}

type ResultsView struct {
	Poll       PollView `json:"poll"`
	TotalVotes int      `json:"total_votes"`
}

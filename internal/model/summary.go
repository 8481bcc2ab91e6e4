package model

// DailySummary is a point-in-time snapshot produced by the store. It is
// fetched fresh on demand and never cached across fetches.
type DailySummary struct {
	Summary        string         `json:"summary"`
	TotalTasks     int            `json:"totalTasks"`
	CompletedTasks int            `json:"completedTasks"`
	CompletionRate float64        `json:"completionRate"`
	Categories     map[string]int `json:"categories"`
}

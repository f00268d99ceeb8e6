package model

// DashboardStats is the aggregate summary shown on the admin dashboard.
// Aggregation is fail-soft: a failing collaborator leaves its counters at
// their best-effort value instead of failing the whole summary.
type DashboardStats struct {
	TotalUsers        int `json:"total_users"`
	ActiveToday       int `json:"active_today"`
	LostItems         int `json:"lost_items"`
	FoundItems        int `json:"found_items"`
	SuccessfulMatches int `json:"successful_matches"`
}

package casino

import "time"

type PlaceBetRequest struct {
	UserID string
	Amount float64
	// GameType defaults to the configured game type when empty.
	GameType string
	// Multiplier defaults when nil, so an explicit 0 is honored as-is.
	Multiplier *float64
}

type BetResponse struct {
	BetID     string    `json:"bet_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	WinAmount float64   `json:"win_amount"`
	Result    string    `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

type BetDetailResponse struct {
	BetID     string    `json:"bet_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	WinAmount float64   `json:"win_amount"`
	Result    string    `json:"result"`
	GameType  string    `json:"game_type"`
	Timestamp time.Time `json:"timestamp"`
}

type BalanceResponse struct {
	UserID      string    `json:"user_id"`
	Balance     float64   `json:"balance"`
	LastUpdated time.Time `json:"last_updated"`
}

type StatsResponse struct {
	TotalBets     int     `json:"total_bets"`
	TotalWins     int     `json:"total_wins"`
	TotalLosses   int     `json:"total_losses"`
	WinRate       float64 `json:"win_rate"`
	TotalWagered  float64 `json:"total_wagered"`
	TotalWinnings float64 `json:"total_winnings"`
	HouseEdge     float64 `json:"house_edge"`
	ActiveUsers   int     `json:"active_users"`
}

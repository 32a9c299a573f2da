package httptransport

import (
	"testing"

	"cryptospins/internal/app/casino"
)

func TestRenderMetricsEmpty(t *testing.T) {
	got := renderMetrics("cryptospins", &casino.StatsResponse{})
	want := "cryptospins_total_bets 0\n" +
		"cryptospins_total_wins 0\n" +
		"cryptospins_total_losses 0\n" +
		"cryptospins_win_rate 0\n" +
		"cryptospins_total_wagered 0\n" +
		"cryptospins_total_winnings 0\n" +
		"cryptospins_house_edge 0\n" +
		"cryptospins_active_users 0"
	if got != want {
		t.Fatalf("renderMetrics() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderMetricsValues(t *testing.T) {
	st := &casino.StatsResponse{
		TotalBets:     5,
		TotalWins:     2,
		TotalLosses:   3,
		WinRate:       0.4,
		TotalWagered:  575,
		TotalWinnings: 700,
		HouseEdge:     -0.25,
		ActiveUsers:   4,
	}
	got := renderMetrics("cryptospins", st)
	want := "cryptospins_total_bets 5\n" +
		"cryptospins_total_wins 2\n" +
		"cryptospins_total_losses 3\n" +
		"cryptospins_win_rate 0.4\n" +
		"cryptospins_total_wagered 575\n" +
		"cryptospins_total_winnings 700\n" +
		"cryptospins_house_edge -0.25\n" +
		"cryptospins_active_users 4"
	if got != want {
		t.Fatalf("renderMetrics() =\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatMetricValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{0.3, "0.3"},
		{300, "300"},
		{2.5, "2.5"},
	}
	for _, tt := range tests {
		if got := formatMetricValue(tt.in); got != tt.want {
			t.Fatalf("formatMetricValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

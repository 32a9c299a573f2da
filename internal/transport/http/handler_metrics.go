package httptransport

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"cryptospins/internal/app/casino"
)

type MetricsHandlers struct {
	svc       *casino.Service
	namespace string
}

func NewMetricsHandlers(svc *casino.Service, namespace string) *MetricsHandlers {
	return &MetricsHandlers{svc: svc, namespace: namespace}
}

// Metrics renders the aggregate counters as flat `name value` lines. This is
// a pure formatting adapter over Service.Stats.
func (h *MetricsHandlers) Metrics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(renderMetrics(h.namespace, h.svc.Stats())))
	}
}

func renderMetrics(namespace string, st *casino.StatsResponse) string {
	lines := []string{
		fmt.Sprintf("%s_total_bets %d", namespace, st.TotalBets),
		fmt.Sprintf("%s_total_wins %d", namespace, st.TotalWins),
		fmt.Sprintf("%s_total_losses %d", namespace, st.TotalLosses),
		fmt.Sprintf("%s_win_rate %s", namespace, formatMetricValue(st.WinRate)),
		fmt.Sprintf("%s_total_wagered %s", namespace, formatMetricValue(st.TotalWagered)),
		fmt.Sprintf("%s_total_winnings %s", namespace, formatMetricValue(st.TotalWinnings)),
		fmt.Sprintf("%s_house_edge %s", namespace, formatMetricValue(st.HouseEdge)),
		fmt.Sprintf("%s_active_users %d", namespace, st.ActiveUsers),
	}
	return strings.Join(lines, "\n")
}

func formatMetricValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

package httptransport

import "expvar"

var (
	betSubmitTotal       = expvar.NewInt("bet_submit_total")
	betSubmitErrorsTotal = expvar.NewInt("bet_submit_errors_total")

	betQueryTotal     = expvar.NewInt("bet_query_total")
	balanceQueryTotal = expvar.NewInt("balance_query_total")
	statsQueryTotal   = expvar.NewInt("stats_query_total")
)

package main

import (
	"net/http"
	"time"

	"cryptospins/internal/app/casino"
	"cryptospins/internal/config"
	"cryptospins/internal/game"
	"cryptospins/internal/ledger"
	"cryptospins/internal/logging"
	httptransport "cryptospins/internal/transport/http"

	"github.com/rs/zerolog/log"
)

func main() {
	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	logging.Init(logCfg)
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal().Err(err).Msg("load server config failed")
	}

	led := ledger.New(cfg.StartingBalance)
	eng := game.NewEngine(cfg.WinProbability)
	svc := casino.NewService(led, eng, cfg.DefaultMultiplier, cfg.DefaultGameType)

	r := httptransport.NewRouter(svc, cfg)
	httptransport.LogRoutes(r)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}

package casino

import (
	"sync"
	"time"

	"cryptospins/internal/game"
	"cryptospins/internal/ledger"

	"github.com/rs/zerolog/log"
)

// Service owns the two ledgers and the resolution engine. It is constructed
// once at process start and handed to every request handler; there is no
// package-level state.
type Service struct {
	ledger *ledger.Ledger
	engine *game.Engine

	defaultMultiplier float64
	defaultGameType   string

	// placeMu serializes the full check-debit-draw-credit-record sequence.
	// Two concurrent bets from the same user must not race on a stale
	// balance read.
	placeMu sync.Mutex
}

func NewService(led *ledger.Ledger, eng *game.Engine, defaultMultiplier float64, defaultGameType string) *Service {
	return &Service{
		ledger:            led,
		engine:            eng,
		defaultMultiplier: defaultMultiplier,
		defaultGameType:   defaultGameType,
	}
}

// Balance reads the user's balance, lazily creating the entry with the
// starting balance on first reference.
func (s *Service) Balance(userID string) *BalanceResponse {
	bal, created := s.ledger.GetOrInit(userID)
	if created {
		log.Info().Str("user_id", userID).Float64("balance", bal).Msg("new user initialized")
	}
	return &BalanceResponse{
		UserID:      userID,
		Balance:     bal,
		LastUpdated: time.Now().UTC(),
	}
}

// PlaceBet validates the stake, debits it, draws one outcome, credits any
// winnings and records the bet. Both failure paths return before any ledger
// mutation. The stake stays debited on a loss.
func (s *Service) PlaceBet(req PlaceBetRequest) (*BetResponse, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidStake
	}
	multiplier := s.defaultMultiplier
	if req.Multiplier != nil {
		multiplier = *req.Multiplier
	}
	gameType := req.GameType
	if gameType == "" {
		gameType = s.defaultGameType
	}

	s.placeMu.Lock()
	defer s.placeMu.Unlock()

	balance, created := s.ledger.GetOrInit(req.UserID)
	if created {
		log.Info().Str("user_id", req.UserID).Float64("balance", balance).Msg("new user initialized")
	}
	if balance < req.Amount {
		return nil, ErrInsufficientBalance
	}
	s.ledger.Debit(req.UserID, req.Amount)

	result, winAmount := s.engine.Resolve(req.Amount, multiplier)
	if result == game.ResultWin {
		s.ledger.Credit(req.UserID, winAmount)
	}

	rec := ledger.BetRecord{
		ID:        ledger.NewID(),
		UserID:    req.UserID,
		Amount:    req.Amount,
		WinAmount: winAmount,
		Result:    result,
		GameType:  gameType,
		CreatedAt: time.Now().UTC(),
	}
	s.ledger.RecordBet(rec)

	if result == game.ResultWin {
		log.Info().Str("user_id", req.UserID).Str("bet_id", rec.ID).Float64("win_amount", winAmount).Msg("bet won")
	} else {
		log.Info().Str("user_id", req.UserID).Str("bet_id", rec.ID).Float64("amount", req.Amount).Msg("bet lost")
	}

	return &BetResponse{
		BetID:     rec.ID,
		UserID:    rec.UserID,
		Amount:    rec.Amount,
		WinAmount: rec.WinAmount,
		Result:    rec.Result,
		Timestamp: rec.CreatedAt,
	}, nil
}

func (s *Service) Bet(betID string) (*BetDetailResponse, error) {
	rec, err := s.ledger.Bet(betID)
	if err != nil {
		return nil, ErrBetNotFound
	}
	return &BetDetailResponse{
		BetID:     rec.ID,
		UserID:    rec.UserID,
		Amount:    rec.Amount,
		WinAmount: rec.WinAmount,
		Result:    rec.Result,
		GameType:  rec.GameType,
		Timestamp: rec.CreatedAt,
	}, nil
}

// Stats recomputes every aggregate with a full scan of the bet ledger. Cost
// grows with bet volume; there are no incremental counters to drift.
func (s *Service) Stats() *StatsResponse {
	bets := s.ledger.SnapshotBets()

	resp := &StatsResponse{
		TotalBets:   len(bets),
		ActiveUsers: s.ledger.ActiveUsers(),
	}
	for _, rec := range bets {
		if rec.Result == game.ResultWin {
			resp.TotalWins++
		} else {
			resp.TotalLosses++
		}
		resp.TotalWagered += rec.Amount
		resp.TotalWinnings += rec.WinAmount
	}
	if resp.TotalBets > 0 {
		resp.WinRate = float64(resp.TotalWins) / float64(resp.TotalBets)
	}
	if resp.TotalWagered > 0 {
		resp.HouseEdge = (resp.TotalWagered - resp.TotalWinnings) / resp.TotalWagered
	}
	return resp
}

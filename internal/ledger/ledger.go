package ledger

import (
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("bet_not_found")

// BetRecord is the immutable outcome of one resolved bet. WinAmount is
// stake*multiplier on a win and exactly 0 on a loss.
type BetRecord struct {
	ID        string
	UserID    string
	Amount    float64
	WinAmount float64
	Result    string
	GameType  string
	CreatedAt time.Time
}

// Ledger is the process-wide source of truth: a balance per observed user and
// an append-only map of resolved bets. Individual methods are safe for
// concurrent use; the atomicity of a full place-bet sequence is the caller's
// responsibility (see app/casino.Service).
type Ledger struct {
	startingBalance float64

	mu       sync.RWMutex
	balances map[string]float64
	bets     map[string]BetRecord
}

func New(startingBalance float64) *Ledger {
	return &Ledger{
		startingBalance: startingBalance,
		balances:        make(map[string]float64),
		bets:            make(map[string]BetRecord),
	}
}

// GetOrInit returns the user's balance, creating the entry with the starting
// balance on first reference. The creation side effect is part of the
// contract: a balance read is never a pure read for unseen users.
func (l *Ledger) GetOrInit(userID string) (balance float64, created bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if bal, ok := l.balances[userID]; ok {
		return bal, false
	}
	l.balances[userID] = l.startingBalance
	return l.startingBalance, true
}

// Debit subtracts amount from an existing entry. Callers establish the entry
// via GetOrInit first; debiting an unseen user would silently open an entry
// below zero, so don't.
func (l *Ledger) Debit(userID string, amount float64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[userID] -= amount
	return l.balances[userID]
}

func (l *Ledger) Credit(userID string, amount float64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[userID] += amount
	return l.balances[userID]
}

// RecordBet stores the record keyed by its id. Records are never mutated or
// deleted afterwards.
func (l *Ledger) RecordBet(rec BetRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bets[rec.ID] = rec
}

func (l *Ledger) Bet(betID string) (BetRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rec, ok := l.bets[betID]
	if !ok {
		return BetRecord{}, ErrNotFound
	}
	return rec, nil
}

// SnapshotBets copies out every recorded bet for aggregation scans.
func (l *Ledger) SnapshotBets() []BetRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]BetRecord, 0, len(l.bets))
	for _, rec := range l.bets {
		out = append(out, rec)
	}
	return out
}

// ActiveUsers counts distinct balance entries, i.e. every user any operation
// has ever observed.
func (l *Ledger) ActiveUsers() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.balances)
}

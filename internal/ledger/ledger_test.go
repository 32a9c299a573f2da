package ledger

import (
	"errors"
	"testing"
	"time"
)

func TestGetOrInitCreatesOnce(t *testing.T) {
	led := New(1000)

	bal, created := led.GetOrInit("alice")
	if !created {
		t.Fatal("expected first reference to create the entry")
	}
	if bal != 1000 {
		t.Fatalf("balance = %v, want 1000", bal)
	}

	bal, created = led.GetOrInit("alice")
	if created {
		t.Fatal("second reference must not re-create")
	}
	if bal != 1000 {
		t.Fatalf("balance = %v, want 1000", bal)
	}
	if led.ActiveUsers() != 1 {
		t.Fatalf("ActiveUsers = %d, want 1", led.ActiveUsers())
	}
}

func TestDebitCredit(t *testing.T) {
	led := New(1000)
	led.GetOrInit("alice")

	if got := led.Debit("alice", 100); got != 900 {
		t.Fatalf("after debit = %v, want 900", got)
	}
	if got := led.Credit("alice", 250); got != 1150 {
		t.Fatalf("after credit = %v, want 1150", got)
	}
}

func TestUserIsolation(t *testing.T) {
	led := New(1000)
	led.GetOrInit("alice")
	led.GetOrInit("bob")

	led.Debit("alice", 400)
	if bal, _ := led.GetOrInit("bob"); bal != 1000 {
		t.Fatalf("bob's balance = %v, want 1000", bal)
	}
	if bal, _ := led.GetOrInit("alice"); bal != 600 {
		t.Fatalf("alice's balance = %v, want 600", bal)
	}
}

func TestRecordAndLookupBet(t *testing.T) {
	led := New(1000)
	rec := BetRecord{
		ID:        NewID(),
		UserID:    "alice",
		Amount:    100,
		WinAmount: 200,
		Result:    "win",
		GameType:  "slots",
		CreatedAt: time.Now().UTC(),
	}
	led.RecordBet(rec)

	got, err := led.Bet(rec.ID)
	if err != nil {
		t.Fatalf("Bet() error = %v", err)
	}
	if got != rec {
		t.Fatalf("Bet() = %+v, want %+v", got, rec)
	}
}

func TestLookupUnknownBet(t *testing.T) {
	led := New(1000)
	_, err := led.Bet("no-such-bet")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestSnapshotBets(t *testing.T) {
	led := New(1000)
	for i := 0; i < 5; i++ {
		led.RecordBet(BetRecord{ID: NewID(), UserID: "alice", Amount: 10})
	}
	if got := len(led.SnapshotBets()); got != 5 {
		t.Fatalf("snapshot length = %d, want 5", got)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cryptospins/internal/app/casino"

	"github.com/go-chi/chi/v5"
)

const (
	serviceName    = "cryptospins-api"
	serviceVersion = "1.0.0"
)

type PublicHandlers struct {
	svc *casino.Service
}

func NewPublicHandlers(svc *casino.Service) *PublicHandlers {
	return &PublicHandlers{svc: svc}
}

func (h *PublicHandlers) Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Welcome to CryptoSpins API - Where Crypto Meets Gaming!",
			"version": serviceVersion,
		})
	}
}

func (h *PublicHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
			"version":   serviceVersion,
		})
	}
}

// Balance lazily creates unseen users; a GET here is a write for first-time
// user ids.
func (h *PublicHandlers) Balance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		balanceQueryTotal.Add(1)
		userID := chi.URLParam(r, "user_id")
		if userID == "" {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		_ = json.NewEncoder(w).Encode(h.svc.Balance(userID))
	}
}

func (h *PublicHandlers) PlaceBet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		betSubmitTotal.Add(1)
		var body struct {
			UserID     string   `json:"user_id"`
			Amount     float64  `json:"amount"`
			GameType   string   `json:"game_type"`
			Multiplier *float64 `json:"multiplier"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			betSubmitErrorsTotal.Add(1)
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		if body.UserID == "" {
			betSubmitErrorsTotal.Add(1)
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.svc.PlaceBet(casino.PlaceBetRequest{
			UserID:     body.UserID,
			Amount:     body.Amount,
			GameType:   body.GameType,
			Multiplier: body.Multiplier,
		})
		if err != nil {
			betSubmitErrorsTotal.Add(1)
			switch {
			case errors.Is(err, casino.ErrInvalidStake):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_stake")
			case errors.Is(err, casino.ErrInsufficientBalance):
				WriteHTTPError(w, http.StatusBadRequest, "insufficient_balance")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *PublicHandlers) Bet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		betQueryTotal.Add(1)
		betID := chi.URLParam(r, "bet_id")
		resp, err := h.svc.Bet(betID)
		if err != nil {
			if errors.Is(err, casino.ErrBetNotFound) {
				WriteHTTPError(w, http.StatusNotFound, "bet_not_found")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *PublicHandlers) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statsQueryTotal.Add(1)
		_ = json.NewEncoder(w).Encode(h.svc.Stats())
	}
}

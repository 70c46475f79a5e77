package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"betlytics/internal/model"
)

// betRequest is the JSON body for creating and editing bets. Monetary
// fields arrive as decimal strings (the client never sends binary
// floats), which decimal.Decimal accepts directly.
type betRequest struct {
	Event     string              `json:"event"`
	Market    string              `json:"market"`
	Category  string              `json:"category"`
	Stake     decimal.Decimal     `json:"stake"`
	Odds      decimal.Decimal     `json:"odds"`
	Unit      decimal.NullDecimal `json:"unit"`
	Outcome   model.Outcome       `json:"outcome"`
	CreatedAt time.Time           `json:"createdAt"`
}

func (s *Server) handleListBets(w http.ResponseWriter, r *http.Request) {
	bets, err := s.deps.Bets.List(r.Context(), ownerFrom(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if bets == nil {
		bets = []model.Bet{}
	}
	respondJSON(w, http.StatusOK, bets)
}

func (s *Server) handleCreateBet(w http.ResponseWriter, r *http.Request) {
	var req betRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	bet, err := s.deps.Bets.Create(r.Context(), model.NewBet{
		OwnerID:   ownerFrom(r),
		Event:     req.Event,
		Market:    req.Market,
		Category:  req.Category,
		Stake:     req.Stake,
		Odds:      req.Odds,
		Unit:      req.Unit,
		Outcome:   req.Outcome,
		CreatedAt: req.CreatedAt,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, bet)
}

func (s *Server) handleUpdateBet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "betID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid bet id")
		return
	}

	var req betRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	bet, err := s.deps.Bets.Update(r.Context(), ownerFrom(r), id, model.BetUpdate{
		Event:     req.Event,
		Market:    req.Market,
		Category:  req.Category,
		Stake:     req.Stake,
		Odds:      req.Odds,
		Unit:      req.Unit,
		Outcome:   req.Outcome,
		CreatedAt: req.CreatedAt,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, bet)
}

func (s *Server) handleDeleteBet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "betID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid bet id")
		return
	}

	if err := s.deps.Bets.Delete(r.Context(), ownerFrom(r), id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

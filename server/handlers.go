package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rustyeddy/axon/advisor"
	"github.com/rustyeddy/axon/analytics"
	"github.com/rustyeddy/axon/ledger"
	"github.com/rustyeddy/axon/market"
	"github.com/rustyeddy/axon/risk"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":              "ok",
		"persistenceDegraded": s.store.Degraded(),
	})
}

// --- Trade handlers ---

// tradeRequest is the create/update body: the Trade shape without an
// id. A missing date defaults to now.
type tradeRequest struct {
	Date      *time.Time `json:"date"`
	Symbol    string     `json:"symbol"`
	Direction string     `json:"direction"`
	Result    float64    `json:"result"`
	Emotion   string     `json:"emotion"`
	Notes     string     `json:"notes"`
}

func (tr tradeRequest) toTrade() (ledger.Trade, error) {
	if tr.Symbol == "" {
		return ledger.Trade{}, fmt.Errorf("symbol is required")
	}
	direction, err := ledger.ParseDirection(tr.Direction)
	if err != nil {
		return ledger.Trade{}, err
	}
	emotion, err := ledger.ParseEmotion(tr.Emotion)
	if err != nil {
		return ledger.Trade{}, err
	}

	date := time.Now()
	if tr.Date != nil {
		date = *tr.Date
	}

	return ledger.Trade{
		Date:      date,
		Symbol:    tr.Symbol,
		Direction: direction,
		Result:    tr.Result,
		Emotion:   emotion,
		Notes:     tr.Notes,
	}, nil
}

func (s *Server) handleTradeList(w http.ResponseWriter, r *http.Request) {
	trades := s.store.Trades()
	if r.URL.Query().Get("sort") == "date_desc" {
		trades = analytics.SortedByDateDescending(trades)
	}
	WriteJSON(w, http.StatusOK, map[string]any{"trades": trades})
}

func (s *Server) handleTradeAdd(w http.ResponseWriter, r *http.Request) {
	var req tradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("invalid body: %v", err))
		return
	}

	trade, err := req.toTrade()
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	added := s.store.Add(trade)
	WriteJSON(w, http.StatusCreated, added)
}

func (s *Server) handleTradeGet(w http.ResponseWriter, r *http.Request) {
	trade, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		WriteError(w, http.StatusNotFound, "trade not found")
		return
	}
	WriteJSON(w, http.StatusOK, trade)
}

func (s *Server) handleTradeUpdate(w http.ResponseWriter, r *http.Request) {
	var req tradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("invalid body: %v", err))
		return
	}

	trade, err := req.toTrade()
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := r.PathValue("id")
	if err := s.store.Update(id, trade); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "trade not found")
			return
		}
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	updated, _ := s.store.Get(id)
	WriteJSON(w, http.StatusOK, updated)
}

func (s *Server) handleTradeDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Remove(r.PathValue("id")); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "trade not found")
			return
		}
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTradeDay(w http.ResponseWriter, r *http.Request) {
	day, err := time.ParseInLocation("2006-01-02", r.PathValue("day"), time.Local)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "day must be YYYY-MM-DD")
		return
	}

	trades := s.store.Trades()
	var matched []ledger.Trade
	for _, t := range trades {
		if analytics.SameDay(t.Date, day) {
			matched = append(matched, t)
		}
	}
	if matched == nil {
		matched = []ledger.Trade{}
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"trades":  matched,
		"dailyPL": analytics.DailyPL(trades, day),
	})
}

// --- Analytics handlers ---

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, analytics.Summarize(s.store.Trades(), time.Now()))
}

func (s *Server) handleEquity(w http.ResponseWriter, r *http.Request) {
	points := analytics.EquityCurve(s.store.Trades(), s.cfg.Account.StartingBalance)
	WriteJSON(w, http.StatusOK, map[string]any{"points": points})
}

func (s *Server) handleEquityChart(w http.ResponseWriter, r *http.Request) {
	points := analytics.EquityCurve(s.store.Trades(), s.cfg.Account.StartingBalance)
	png, err := analytics.RenderEquityChart(points)
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// --- Sizing, catalog, advisor ---

func (s *Server) handleSize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Balance      float64 `json:"balance"`
		RiskPercent  float64 `json:"riskPercent"`
		StopLossPips float64 `json:"stopLossPips"`
		Symbol       string  `json:"symbol"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("invalid body: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, risk.ComputeSize(req.Balance, req.RiskPercent, req.StopLossPips, req.Symbol))
}

func (s *Server) handleInstruments(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"instruments": market.Instruments})
}

func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"rules":     risk.Rules,
		"checklist": risk.PreFlightChecklist,
	})
}

func (s *Server) handleAdvisor(w http.ResponseWriter, r *http.Request) {
	if s.coach == nil {
		WriteJSON(w, http.StatusOK, map[string]string{"analysis": advisor.Fallback})
		return
	}

	analysis, err := s.coach.Analyze(r.Context(), s.store.Trades())
	if err != nil {
		if errors.Is(err, advisor.ErrTooFewTrades) {
			WriteError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		// Cancelled by the client going away; nothing to answer.
		WriteError(w, http.StatusServiceUnavailable, "analysis abandoned")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"analysis": analysis})
}

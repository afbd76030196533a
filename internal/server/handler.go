package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/alex-de-haas/haas.mortgage/internal/calculation"
	"github.com/alex-de-haas/haas.mortgage/internal/config"
	"github.com/alex-de-haas/haas.mortgage/internal/domain"
	"github.com/alex-de-haas/haas.mortgage/pkg/dateutil"
	dec "github.com/alex-de-haas/haas.mortgage/pkg/decimal"
)

// Handler serves the schedule API.
type Handler struct {
	engine *calculation.Engine
	cache  ScheduleCache
	logger *logrus.Logger
}

// NewHandler creates a handler around the calculation engine.
func NewHandler(engine *calculation.Engine, cache ScheduleCache, logger *logrus.Logger) *Handler {
	return &Handler{engine: engine, cache: cache, logger: logger}
}

// scheduleRequest is the wire form of one computation. The term may be given
// in months or years; the start month is a "YYYY-MM" string. Override keys
// are 1-based month indexes.
type scheduleRequest struct {
	Principal         decimal.Decimal         `json:"principal"`
	AnnualRatePercent decimal.Decimal         `json:"annual_rate_percent"`
	TermMonths        int                     `json:"term_months"`
	TermYears         float64                 `json:"term_years,omitempty"`
	StartMonth        string                  `json:"start_month"`
	Overrides         map[int]decimal.Decimal `json:"overrides,omitempty"`
	ExtraMonthly      *decimal.Decimal        `json:"extra_monthly,omitempty"`
}

type scheduleResponse struct {
	Rows   domain.Schedule       `json:"rows"`
	Totals domain.ScheduleTotals `json:"totals"`
}

// toScenario converts the request into validated engine inputs.
func (req *scheduleRequest) toScenario() (domain.LoanParameters, domain.Scenario, error) {
	termMonths := req.TermMonths
	if termMonths == 0 && req.TermYears > 0 {
		termMonths = int(math.Round(req.TermYears * 12))
	}

	startMonth, err := dateutil.ParseMonth(req.StartMonth)
	if err != nil {
		return domain.LoanParameters{}, domain.Scenario{}, err
	}

	loan := domain.LoanParameters{
		Principal:         dec.NewMoneyFromDecimal(req.Principal),
		AnnualRatePercent: dec.Max(dec.NewMoneyFromDecimal(req.AnnualRatePercent), dec.Zero()).Decimal,
		TermMonths:        termMonths,
		StartMonth:        startMonth,
	}

	scenario := domain.Scenario{
		Name:      "request",
		Overrides: config.CoerceOverrides(req.Overrides),
	}
	if req.ExtraMonthly != nil {
		extra := dec.Max(dec.NewMoneyFromDecimal(*req.ExtraMonthly), dec.Zero())
		scenario.ExtraMonthly = &extra
	}
	return loan, scenario, nil
}

// cacheKey hashes the canonical request JSON, prefixed per endpoint.
func cacheKey(endpoint string, req *scheduleRequest) string {
	canonical, _ := json.Marshal(req)
	sum := sha256.Sum256(canonical)
	return endpoint + ":" + hex.EncodeToString(sum[:])
}

// Schedule computes the amortization ledger for one request.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	key := cacheKey("schedule", req)
	if cached, hit := h.cache.Get(key); hit {
		h.writeCached(w, cached)
		return
	}

	loan, scenario, err := req.toScenario()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary := h.engine.RunScenario(loan, scenario)
	h.respond(w, key, scheduleResponse{Rows: summary.Schedule, Totals: summary.Totals})
}

// Compare computes the ledger and measures it against the no-override base plan.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	key := cacheKey("compare", req)
	if cached, hit := h.cache.Get(key); hit {
		h.writeCached(w, cached)
		return
	}

	loan, scenario, err := req.toScenario()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.respond(w, key, h.engine.RunScenario(loan, scenario))
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request) (*scheduleRequest, bool) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func (h *Handler) respond(w http.ResponseWriter, key string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	if err := h.cache.Set(key, string(body)); err != nil {
		h.logger.WithError(err).Warn("failed to cache schedule response")
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func (h *Handler) writeCached(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "HIT")
	_, _ = w.Write([]byte(body))
}

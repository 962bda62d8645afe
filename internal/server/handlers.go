package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/internal/output"
	"github.com/shopspring/decimal"
)

// CalculateData is the payload of a calculate response
type CalculateData struct {
	Inputs  domain.RawInputs          `json:"inputs"`
	Result  *domain.CalculationResult `json:"result,omitempty"`
	Display output.DisplayLines       `json:"display"`
}

// SummarizeData is the payload of a summarize response
type SummarizeData struct {
	Amount  decimal.Decimal `json:"amount"`
	Summary string          `json:"summary"`
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.sendOK(w, r, map[string]string{"status": "ok"})
}

func (s *Server) calculateQueryHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	s.calculate(w, r, domain.RawInputs{
		Principal: q.Get("principal"),
		Rate:      q.Get("rate"),
		Times:     q.Get("times"),
	})
}

func (s *Server) calculateBodyHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var raw domain.RawInputs
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&raw); err != nil {
		s.badRequestResponse(w, r, "invalid request body", nil)
		return
	}
	s.calculate(w, r, raw)
}

func (s *Server) calculate(w http.ResponseWriter, r *http.Request, raw domain.RawInputs) {
	display := s.displayFor(r)
	engine := s.engine
	if display.Locale != s.display.Locale {
		engine = &calculation.CalculationEngine{Style: calculation.PhraseStyleForLocale(display.Locale), Logger: s.engine.Logger}
	}

	result, err := engine.Calculate(r.Context(), raw)
	data := CalculateData{Inputs: raw, Result: result, Display: output.Render(result, err, display)}
	switch {
	case errors.Is(err, calculation.ErrInvalidInput):
		s.badRequestResponse(w, r, output.LabelsFor(display).ErrorText, data)
	case err != nil:
		s.serverErrorResponse(w, r, err)
	default:
		s.sendOK(w, r, data)
	}
}

func (s *Server) summarizeHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	amount, ok := calculation.ParseAmount(ps.ByName("amount"))
	if !ok {
		s.badRequestResponse(w, r, "amount must be a number", nil)
		return
	}
	style := calculation.PhraseStyleForLocale(s.displayFor(r).Locale)
	s.sendOK(w, r, SummarizeData{
		Amount:  amount,
		Summary: calculation.SummarizeMagnitudeStyle(amount, style),
	})
}

// displayFor applies a supported ?locale= override to the server's display settings.
func (s *Server) displayFor(r *http.Request) domain.DisplaySettings {
	display := s.display
	switch locale := r.URL.Query().Get("locale"); locale {
	case domain.LocaleEnglish, domain.LocaleKorean:
		display.Locale = locale
	}
	return display
}

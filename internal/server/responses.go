package server

import (
	"encoding/json"
	"net/http"
	"time"
)

// ResponseModel is the envelope of every API response
type ResponseModel struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	RequestID   string `json:"requestId,omitempty"`
	Text        string `json:"text"`
	Data        any    `json:"data,omitempty"`
}

func (s *Server) sendResponse(w http.ResponseWriter, r *http.Request, code int, text string, data any) {
	response := ResponseModel{
		Code:        code,
		CurrentTime: time.Now().UnixMilli(),
		RequestID:   RequestIDFromContext(r.Context()),
		Text:        text,
		Data:        data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.Error("failed to encode response", "error", err, "request_id", response.RequestID)
	}
}

func (s *Server) sendOK(w http.ResponseWriter, r *http.Request, data any) {
	s.sendResponse(w, r, http.StatusOK, "OK", data)
}

func (s *Server) badRequestResponse(w http.ResponseWriter, r *http.Request, text string, data any) {
	s.sendResponse(w, r, http.StatusBadRequest, text, data)
}

func (s *Server) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
	s.sendResponse(w, r, http.StatusInternalServerError, "internal server error", nil)
}

func (s *Server) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	s.sendResponse(w, r, http.StatusNotFound, "not found", nil)
}

func (s *Server) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	s.sendResponse(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
}

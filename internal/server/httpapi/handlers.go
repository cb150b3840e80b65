package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/todocards/internal/common"
	"github.com/dmitrijs2005/todocards/internal/server/models"
	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

// decode reads a JSON body holding exactly one value. An empty body leaves v
// untouched and reports false.
func decode(w http.ResponseWriter, r *http.Request, v any) (bool, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("%w: malformed JSON body: %v", common.ErrValidation, err)
	}
	if dec.More() {
		return false, fmt.Errorf("%w: unexpected data after JSON body", common.ErrValidation)
	}
	return true, nil
}

func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	token, err := s.users.Signup(r.Context())
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, signupResponse{Token: token})
}

func (s *Server) listCards(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	cards, err := s.cards.ListCards(r.Context(), userID)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	resp := make([]cardPayload, len(cards))
	for i, c := range cards {
		resp[i] = toCardPayload(c)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createCard(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var req createCardRequest
	present, err := decode(w, r, &req)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	var draft *models.CardDraft
	if present {
		draft = &models.CardDraft{Title: req.Title, Todos: req.Todos}
	}

	card, err := s.cards.CreateCard(r.Context(), userID, draft)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createCardResponse{ID: card.ID})
}

func (s *Server) getCard(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	card, err := s.cards.GetCard(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardPayload(card))
}

func (s *Server) updateCard(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var req updateCardRequest
	present, err := decode(w, r, &req)
	if err == nil && !present {
		err = fmt.Errorf("%w: request body is required", common.ErrValidation)
	}
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	slate, err := req.slate()
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	if err := s.cards.UpdateCard(r.Context(), mux.Vars(r)["id"], userID, req.Title, slate); err != nil {
		s.writeErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) deleteCard(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	if err := s.cards.DeleteCard(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		s.writeErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) setLabels(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	var req setLabelsRequest
	if _, err := decode(w, r, &req); err != nil {
		s.writeErr(w, r, err)
		return
	}

	labels, err := s.cards.SetLabels(r.Context(), mux.Vars(r)["id"], userID, req.Labels)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	resp := setLabelsResponse{Labels: make([]labelPayload, len(labels))}
	for i, l := range labels {
		resp.Labels[i] = labelPayload{ID: l.ID, Name: l.Name}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) export(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	url, err := s.exports.Export(r.Context(), userID)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, exportResponse{URL: url})
}

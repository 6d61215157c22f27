package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dawitg/card-services/internal/cardsvc/service"
	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	cards *service.CardService
}

func NewHandler(cards *service.CardService) *Handler {
	return &Handler{cards: cards}
}

type createCardRequest struct {
	CardName string `json:"card_name"`
	CardPic  string `json:"card_pic"`
}

type updateCardRequest struct {
	ID       int64  `json:"id"`
	CardName string `json:"card_name"`
	CardPic  string `json:"card_pic"`
}

type cardCreatedResponse struct {
	ID       int64  `json:"id"`
	CardName string `json:"card_name"`
	CardPic  string `json:"card_pic"`
	Message  string `json:"message"`
}

type cardUpdatedResponse struct {
	Message  string `json:"message"`
	ID       int64  `json:"id"`
	CardName string `json:"card_name"`
	CardPic  string `json:"card_pic"`
}

type errorResponse struct {
	Message string `json:"message"`
}

type routeNotFoundResponse struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, code int, message string) {
	h.writeJSON(w, code, errorResponse{Message: message})
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cards.ListCards(r.Context())
	if err != nil {
		log.Errorf("failed to list cards: %v", err)
		h.writeError(w, http.StatusInternalServerError, "unable to list cards")
		return
	}

	h.writeJSON(w, http.StatusOK, cards)
}

func (h *Handler) AddCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// presence checks only, no store access on violation
	if req.CardName == "" {
		h.writeError(w, http.StatusBadRequest, "card_name is required")
		return
	}
	if req.CardPic == "" {
		h.writeError(w, http.StatusBadRequest, "card_pic is required")
		return
	}

	card, err := h.cards.CreateCard(r.Context(), req.CardName, req.CardPic)
	if err != nil {
		log.Errorf("failed to add card %s: %v", req.CardName, err)
		h.writeError(w, http.StatusInternalServerError, fmt.Sprintf("unable to add card %s", req.CardName))
		return
	}

	h.writeJSON(w, http.StatusCreated, cardCreatedResponse{
		ID:       card.ID,
		CardName: card.CardName,
		CardPic:  card.CardPic,
		Message:  fmt.Sprintf("Card %s added successfully", card.CardName),
	})
}

func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	var req updateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// id is checked before the content fields
	if req.ID == 0 {
		h.writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	if req.CardName == "" {
		h.writeError(w, http.StatusBadRequest, "card_name is required")
		return
	}
	if req.CardPic == "" {
		h.writeError(w, http.StatusBadRequest, "card_pic is required")
		return
	}

	found, err := h.cards.UpdateCard(r.Context(), req.ID, req.CardName, req.CardPic)
	if err != nil {
		log.Errorf("failed to update card %d: %v", req.ID, err)
		h.writeError(w, http.StatusInternalServerError, "unable to update card")
		return
	}
	if !found {
		h.writeError(w, http.StatusNotFound, "card not found")
		return
	}

	h.writeJSON(w, http.StatusOK, cardUpdatedResponse{
		Message:  "Card updated",
		ID:       req.ID,
		CardName: req.CardName,
		CardPic:  req.CardPic,
	})
}

func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	if idParam == "" {
		// the router guarantees the param, kept as a guard
		h.writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid card id")
		return
	}

	found, err := h.cards.DeleteCard(r.Context(), id)
	if err != nil {
		log.Errorf("failed to delete card %d: %v", id, err)
		h.writeError(w, http.StatusInternalServerError, "unable to delete card")
		return
	}
	if !found {
		h.writeError(w, http.StatusNotFound, "card not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusNotFound, routeNotFoundResponse{
		Message: "Route not found",
		Path:    r.URL.Path,
	})
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/coinkeep/coin-keeper/internal/logger"
	"github.com/coinkeep/coin-keeper/internal/utils"
	"github.com/coinkeep/coin-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	kind := models.TransactionKind(chi.URLParam(r, "kind"))

	var request models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.LedgerService.AddTransaction(ctx, user, kind, request); err != nil {
		h.writeError(w, r, err, "recording transaction failed")
		return
	}

	log.Debug().Str("kind", string(kind)).Str("owner", user.Email).Msg("transaction recorded")

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	kind := models.TransactionKind(r.URL.Query().Get("kind"))

	transactions, err := h.services.LedgerService.ListTransactions(ctx, user, kind)
	if err != nil {
		h.writeError(w, r, err, "listing transactions failed")
		return
	}

	response := models.TransactionListResponse{
		Transactions: transactions,
		Name:         user.Name,
		UserID:       user.UserID,
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

package http

import (
	"errors"
	"net/http"

	"github.com/coinkeep/coin-keeper/internal/logger"
	"github.com/coinkeep/coin-keeper/internal/service"
	"github.com/coinkeep/coin-keeper/internal/store"
	"github.com/coinkeep/coin-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrInvalidEmail:                 http.StatusUnprocessableEntity,
	validators.ErrPasswordConfirmationMismatch: http.StatusUnprocessableEntity,
	validators.ErrPasswordTooShort:             http.StatusUnprocessableEntity,
	validators.ErrEmptyName:                    http.StatusUnprocessableEntity,
	validators.ErrEmptyDescription:             http.StatusUnprocessableEntity,
	validators.ErrInvalidAmount:                http.StatusUnprocessableEntity,
	validators.ErrUnknownTransactionKind:       http.StatusUnprocessableEntity,

	store.ErrEmailAlreadyExists:   http.StatusConflict,
	store.ErrSessionAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:       http.StatusNotFound,
	store.ErrSessionNotFound:      http.StatusUnauthorized,

	service.ErrWrongPassword:   http.StatusUnauthorized,
	service.ErrHashingPassword: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status and writes the response. Internal
// failures are logged with their cause but answered with the bare status
// text so that store internals never reach the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Err(err).Msg(msg)
	http.Error(w, err.Error(), status)
}

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals payload and writes it as an "application/json" response
// with the given status code. Handlers use it for every success body: the
// registered user, the login token, the transaction history.
//
// A payload that cannot be marshalled answers 500 instead of statusCode and
// returns the wrapped marshalling error. The returned int is the number of
// body bytes written.
//
//	utils.WriteJSON(w, models.LoginResponse{Token: session.Token, Name: user.Name}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, payload any, statusCode int) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "error encoding response body", http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coinkeep/coin-keeper/internal/logger"
	"github.com/coinkeep/coin-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "full url", raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "https kept", raw: "https://api.example.com", want: "https://api.example.com"},
		{name: "empty", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) APIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPAPIClient(srv.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return client
}

func TestLoginStoresToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@x.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.LoginResponse{Token: "tok-123", Name: "Ana"})
	})

	result, err := client.Login(context.Background(), models.LoginRequest{Email: "a@x.com", Password: "abcd"})
	require.NoError(t, err)

	assert.Equal(t, "Ana", result.Name)
	assert.Equal(t, "tok-123", client.Token())
}

func TestLoginConflictMapped(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "user already logged in", http.StatusConflict)
	})

	_, err := client.Login(context.Background(), models.LoginRequest{Email: "a@x.com", Password: "abcd"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAddTransactionSendsBearer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/transactions/deposit", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
	})

	client.SetToken("tok-123")
	err := client.AddTransaction(context.Background(), models.Deposit,
		models.CreateTransactionRequest{Amount: json.Number("10"), Description: "x"})
	require.NoError(t, err)
}

func TestAddTransactionRequiresToken(t *testing.T) {
	client := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request may be sent without a token")
	})

	err := client.AddTransaction(context.Background(), models.Deposit,
		models.CreateTransactionRequest{Amount: json.Number("10"), Description: "x"})
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestListTransactionsFilter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "withdrawal", r.URL.Query().Get("kind"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.TransactionListResponse{
			Transactions: []models.Transaction{{ID: 2, Kind: models.Withdrawal, Amount: 40, Description: "groceries", Date: "08/03"}},
			Name:         "Ana",
			UserID:       1,
		})
	})

	client.SetToken("tok-123")
	result, err := client.ListTransactions(context.Background(), models.Withdrawal)
	require.NoError(t, err)

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, models.Withdrawal, result.Transactions[0].Kind)
	assert.Equal(t, int64(1), result.UserID)
}

func TestLogoutClearsToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/logout", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	client.SetToken("tok-123")
	require.NoError(t, client.Logout(context.Background()))
	assert.Empty(t, client.Token())
}

func TestUnauthorizedMapped(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	})

	client.SetToken("tok-dead")
	_, err := client.ListTransactions(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

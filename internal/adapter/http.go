package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/coinkeep/coin-keeper/internal/logger"
	"github.com/coinkeep/coin-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpAPIClient struct {
	client *resty.Client

	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs an HTTP/REST implementation of [APIClient].
// It normalises and validates the base URL and configures the underlying
// resty client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPAPIClient(address string, requestTimeout time.Duration, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpAPIClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [APIClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpAPIClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	return h.token
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.token)
}

// Register implements [APIClient]. It POSTs the registration payload to
// POST /api/register and returns the created user.
func (h *httpAPIClient) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&created).
		Post("/api/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

// Login implements [APIClient]. It POSTs the credentials to POST /api/login.
// On success the issued session token is stored via SetToken.
func (h *httpAPIClient) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&result).
		Post("/api/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(result.Token)
	return result, nil
}

// AddTransaction implements [APIClient]. It POSTs the transaction payload to
// POST /api/transactions/{kind}. Requires a valid session token.
func (h *httpAPIClient) AddTransaction(ctx context.Context, kind models.TransactionKind, request models.CreateTransactionRequest) error {
	if h.token == "" {
		return ErrNoToken
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/transactions/" + string(kind))
	if err != nil {
		return fmt.Errorf("add transaction request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListTransactions implements [APIClient]. It GETs /api/transactions,
// optionally filtered by kind. Requires a valid session token.
func (h *httpAPIClient) ListTransactions(ctx context.Context, kind models.TransactionKind) (models.TransactionListResponse, error) {
	if h.token == "" {
		return models.TransactionListResponse{}, ErrNoToken
	}

	req := h.authedRequest(ctx)
	if kind != "" {
		req.SetQueryParam("kind", string(kind))
	}

	resp, err := req.Get("/api/transactions")
	if err != nil {
		return models.TransactionListResponse{}, fmt.Errorf("list transactions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TransactionListResponse{}, err
	}

	var result models.TransactionListResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.TransactionListResponse{}, fmt.Errorf("decode list response: %w", err)
	}

	return result, nil
}

// Logout implements [APIClient]. It DELETEs /api/logout and clears the
// stored token regardless of the server's answer to keep the client usable
// after an expired session.
func (h *httpAPIClient) Logout(ctx context.Context) error {
	if h.token == "" {
		return ErrNoToken
	}

	resp, err := h.authedRequest(ctx).Delete("/api/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	h.SetToken("")

	return mapHTTPError(resp)
}

// Package api is the lock API client: it lists pending withdrawals and open transactions and reports verdicts.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goodnatureofminers/transactionchecker/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

const (
	signInPath             = "/v1/auth/sign-in"
	pendingWithdrawalsPath = "/v1/withdrawal/pending"
	openTransactionsPath   = "/v1/transaction/open"
	verifiedPath           = "/v1/transaction/{id}/verified"
	invalidPath            = "/v1/transaction/{id}/invalid"
)

type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// Config holds the lock API endpoint and the credentials used to sign in.
type Config struct {
	URL       string
	Address   string
	Signature string
	Timeout   time.Duration
}

type Client struct {
	http    *resty.Client
	cfg     Config
	metrics Metrics

	mu    sync.Mutex
	token string
}

type signInRequest struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
}

type signInResponse struct {
	AccessToken string `json:"accessToken"`
}

type invalidRequest struct {
	Reason string `json:"reason"`
}

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func NewClient(cfg Config, metrics Metrics) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("api url is required")
	}
	if cfg.Address == "" || cfg.Signature == "" {
		return nil, errors.New("api address and signature are required")
	}
	if metrics == nil {
		return nil, errors.New("api metrics is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient, cfg: cfg, metrics: metrics}, nil
}

// PendingWithdrawals lists withdrawals waiting for verification.
func (c *Client) PendingWithdrawals(ctx context.Context) (withdrawals []model.PendingWithdrawal, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("pending_withdrawals", err, started)
	}()

	err = c.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&withdrawals).Get(pendingWithdrawalsPath)
	})
	if err != nil {
		return nil, fmt.Errorf("get pending withdrawals: %w", err)
	}
	return withdrawals, nil
}

// OpenTransactions lists transactions waiting for a verdict.
func (c *Client) OpenTransactions(ctx context.Context) (transactions []model.OpenTransaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("open_transactions", err, started)
	}()

	err = c.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&transactions).Get(openTransactionsPath)
	})
	if err != nil {
		return nil, fmt.Errorf("get open transactions: %w", err)
	}
	return transactions, nil
}

// SubmitVerificationResult marks the transaction verified or invalid with the verdict's reason.
func (c *Client) SubmitVerificationResult(ctx context.Context, transactionID string, verdict model.Verdict) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("submit_verification_result", err, started)
	}()

	err = c.do(ctx, func(r *resty.Request) (*resty.Response, error) {
		r.SetPathParam("id", transactionID)
		if verdict.Verified {
			return r.Put(verifiedPath)
		}
		return r.SetBody(invalidRequest{Reason: string(verdict.Reason)}).Put(invalidPath)
	})
	if err != nil {
		return fmt.Errorf("submit verdict for %s: %w", transactionID, err)
	}
	return nil
}

// do signs in lazily and repeats the request once with a fresh token when the old one was rejected.
func (c *Client) do(ctx context.Context, send func(r *resty.Request) (*resty.Response, error)) error {
	for attempt := 0; ; attempt++ {
		token, err := c.accessToken(ctx)
		if err != nil {
			return err
		}

		var apiErr errorResponse
		res, err := send(c.http.R().SetContext(ctx).SetAuthToken(token).SetError(&apiErr))
		if err != nil {
			return err
		}
		if res.StatusCode() == http.StatusUnauthorized && attempt == 0 {
			c.resetToken(token)
			continue
		}
		if res.IsError() {
			return statusError(res, apiErr)
		}
		return nil
	}
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" {
		return c.token, nil
	}

	started := time.Now()
	var (
		result signInResponse
		apiErr errorResponse
	)
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(signInRequest{Address: c.cfg.Address, Signature: c.cfg.Signature}).
		SetResult(&result).
		SetError(&apiErr).
		Post(signInPath)
	if err == nil && res.IsError() {
		err = statusError(res, apiErr)
	}
	if err == nil && result.AccessToken == "" {
		err = errors.New("empty access token")
	}
	c.metrics.Observe("sign_in", err, started)
	if err != nil {
		return "", fmt.Errorf("sign in: %w", err)
	}

	c.token = result.AccessToken
	return c.token, nil
}

// resetToken drops token unless another request already replaced it.
func (c *Client) resetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == token {
		c.token = ""
	}
}

func statusError(res *resty.Response, apiErr errorResponse) error {
	if apiErr.Message != "" {
		return fmt.Errorf("status %d: %s", res.StatusCode(), apiErr.Message)
	}
	return fmt.Errorf("status %d", res.StatusCode())
}

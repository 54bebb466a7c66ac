// Package challenge integrates the external bot-challenge verifier. The
// verifier is a black box that answers yes or no; everything indeterminate
// is a no.
package challenge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"clubgate/internal/shared/logger"
)

const verifyTimeout = 5 * time.Second

// TurnstileVerifier validates challenge tokens against the Cloudflare
// Turnstile siteverify endpoint.
type TurnstileVerifier struct {
	secret    string
	verifyURL string
	client    *http.Client
	logger    logger.Interface
}

func NewTurnstileVerifier(secret, verifyURL string, log logger.Interface) *TurnstileVerifier {
	return &TurnstileVerifier{
		secret:    secret,
		verifyURL: verifyURL,
		client:    &http.Client{Timeout: verifyTimeout},
		logger:    log,
	}
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify reports whether the submitted challenge token passes. A missing
// server secret, network failure, timeout, or non-success answer all fail
// closed.
func (v *TurnstileVerifier) Verify(ctx context.Context, challengeToken, remoteIP string) bool {
	if v.secret == "" {
		v.logger.Errorw("challenge secret is not configured, failing verification closed")
		return false
	}
	if challengeToken == "" {
		return false
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", challengeToken)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		v.logger.Errorw("failed to build challenge verification request", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.Warnw("challenge verification request failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.logger.Warnw("challenge verifier returned non-OK status", "status", resp.StatusCode)
		return false
	}

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		v.logger.Warnw("failed to decode challenge verifier response", "error", err)
		return false
	}

	if !result.Success {
		v.logger.Debugw("challenge verification rejected", "error_codes", result.ErrorCodes)
	}

	return result.Success
}

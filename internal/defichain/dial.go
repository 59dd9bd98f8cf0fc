package defichain

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/btcsuite/btcd/rpcclient"
)

// Dial creates an HTTP POST mode client for the node at rawURL.
func Dial(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host + parsed.Path,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   parsed.Scheme == "http",
	}
	return rpcclient.New(cfg, nil)
}

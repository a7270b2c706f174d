package channel

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/chatline/internal/domain"
)

const tokenParam = "token"

// BuildEndpoint appends the percent-encoded token to the channel URL.
func BuildEndpoint(wsURL string, token string) (string, error) {
	if token == "" {
		return "", domain.ErrEmptyToken
	}
	if wsURL == "" {
		return "", errors.New("channel url is required")
	}

	parsed, err := url.Parse(wsURL)
	if err != nil {
		return "", fmt.Errorf("parse channel url: %w", err)
	}
	switch parsed.Scheme {
	case "ws", "wss", "http", "https":
	default:
		return "", fmt.Errorf("channel url must use ws, wss, http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", errors.New("channel url host is required")
	}

	param := tokenParam + "=" + encodeComponent(token)
	if parsed.RawQuery == "" {
		parsed.RawQuery = param
	} else {
		parsed.RawQuery += "&" + param
	}

	return parsed.String(), nil
}

func encodeComponent(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}

func redactEndpoint(endpoint string) string {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return ""
	}

	query := parsed.Query()
	if query.Has(tokenParam) {
		query.Set(tokenParam, "redacted")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

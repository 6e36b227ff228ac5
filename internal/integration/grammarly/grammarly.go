// Package grammarly talks to the free Grammarly checking endpoint over its websocket protocol.
package grammarly

import (
	"errors"
	"time"
)

const (
	name = "grammarly"

	defaultBaseURL   = "https://grammarly.com"
	defaultSocketURL = "wss://capi.grammarly.com/freews"
	defaultOrigin    = "moz-extension://6adb0179-68f0-aa4f-8666-ae91f500210b"
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"

	clientName      = "extension_chrome"
	clientVersion   = "14.924.2437"
	protocolVersion = "1.0"
	extDomain       = "editpad.org"

	// Only bounds the websocket upgrade. Reading alerts is bounded by the caller context.
	handshakeTimeout = 30 * time.Second
)

//nolint:gochecknoglobals // protocol constant
var clientSupports = []string{
	"free_clarity_alerts",
	"readability_check",
	"filler_words_check",
	"sentence_variety_check",
	"free_occasional_premium_alerts",
}

var (
	// ErrServiceError is returned when the service answers with an error frame.
	ErrServiceError = errors.New("grammar service error")
	// ErrSessionClosed is returned when the connection ends before the session finished.
	ErrSessionClosed = errors.New("grammar session closed before completion")
)

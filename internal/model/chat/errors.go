package chat

import "errors"

var (
	// ErrInvalidInput rejects empty or whitespace-only submissions before
	// any storage mutation happens.
	ErrInvalidInput = errors.New("chat: input text is empty")

	// ErrSessionNotFound reports a handle that no stored session matches.
	ErrSessionNotFound = errors.New("chat: session not found")

	// ErrPersistence wraps store failures so raw storage errors never
	// cross the transport boundary.
	ErrPersistence = errors.New("chat: store operation failed")

	// ErrPartialExchange reports a bot append that failed after the user
	// message was already persisted.
	ErrPartialExchange = errors.New("chat: exchange persisted only the user message")
)

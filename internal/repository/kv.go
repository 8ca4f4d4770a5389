package repository

import "context"

// KV is the durable key-value substrate the stores are built on. The
// engine behind it is deliberately abstract: the service only needs a
// durable mapping from fixed logical keys to raw bytes.
type KV interface {
	// Get returns the stored bytes and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set durably stores value under key, replacing any prior value.
	Set(ctx context.Context, key string, value []byte) error
}

// Fixed logical keys for the persisted state. Each collection is one
// JSON array of records; the credential is a plain string.
const (
	keyIdeas      = "ideasage:ideas"
	keyAnalyses   = "ideasage:analyses"
	keyChats      = "ideasage:chats"
	keyCredential = "ideasage:credential"
)

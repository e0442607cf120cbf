// Package rag implements the query-time retrieval-and-assembly engine:
// intent classification, balanced retrieval, attachment resolution with
// content-signature deduplication, policy selection and prompt assembly.
package rag

import (
	"errors"
	"fmt"
	"strings"
)

// EmbeddingError wraps a failure to produce a query vector. It is never
// retried here; the orchestrator surfaces it as a server error.
type EmbeddingError struct {
	Err error
}

func (e *EmbeddingError) Error() string { return fmt.Sprintf("embedding failed: %v", e.Err) }
func (e *EmbeddingError) Unwrap() error { return e.Err }

// RetrievalError wraps a vector search failure.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string { return fmt.Sprintf("retrieval failed: %v", e.Err) }
func (e *RetrievalError) Unwrap() error { return e.Err }

// BlobFetchError wraps a failure to download asset bytes. It is absorbed
// per attachment: the turn completes with fewer attachments.
type BlobFetchError struct {
	Path string
	Err  error
}

func (e *BlobFetchError) Error() string { return fmt.Sprintf("blob fetch %s: %v", e.Path, e.Err) }
func (e *BlobFetchError) Unwrap() error { return e.Err }

// LanguageModelError wraps a failed or timed-out model call. The turn still
// persists the retrieved context with an explanatory answer.
type LanguageModelError struct {
	Err error
}

func (e *LanguageModelError) Error() string { return fmt.Sprintf("language model call failed: %v", e.Err) }
func (e *LanguageModelError) Unwrap() error { return e.Err }

// ValidationError reports explicitly supplied document ids that are unknown
// or not ready. Rejected before any retrieval work begins.
type ValidationError struct {
	InvalidDocIDs []string
}

func (e *ValidationError) Error() string {
	return "documents missing or not ready: " + strings.Join(e.InvalidDocIDs, ", ")
}

// ErrBlobNotFound is returned by blob gateways for absent locators.
var ErrBlobNotFound = errors.New("blob not found")

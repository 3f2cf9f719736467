package models

import (
	"time"

	"github.com/valet-assistant/valet/ent"
)

// WriteMemoryRequest contains fields for storing one memory. Content is
// redacted before hashing and embedding; a TTL of zero means no expiry.
type WriteMemoryRequest struct {
	UserID    string         `json:"user_id"`
	SessionID string         `json:"session_id,omitempty"`
	Type      string         `json:"type"`
	Content   string         `json:"content"`
	Source    string         `json:"source,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	TTL       time.Duration  `json:"-"`
}

// UpdateMemoryRequest contains fields for patching a stored memory.
// Nil fields are left unchanged; a content change re-hashes and re-embeds.
type UpdateMemoryRequest struct {
	Content  *string        `json:"content,omitempty"`
	Type     *string        `json:"type,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// RetrieveMemoryRequest contains fields for a similarity search over one
// user's memories. MinScore is cosine similarity in [0,1]; results below
// it are dropped. Zero means the default floor; a negative value disables
// the floor for lookups pinned by MetadataFilter.
type RetrieveMemoryRequest struct {
	UserID         string         `json:"user_id"`
	SessionID      string         `json:"session_id,omitempty"`
	Query          string         `json:"query"`
	Types          []string       `json:"types,omitempty"`
	TopK           int            `json:"top_k,omitempty"`
	MinScore       float64        `json:"min_score,omitempty"`
	MetadataFilter map[string]any `json:"metadata_filter,omitempty"`
}

// MemoryFilters contains filtering options for listing memories. Query
// is a case-insensitive content substring match — listing is browsing,
// not similarity search.
type MemoryFilters struct {
	Type           string `json:"type,omitempty"`
	Query          string `json:"q,omitempty"`
	IncludeDeleted bool   `json:"include_deleted,omitempty"`
	Limit          int    `json:"limit,omitempty"`
	Offset         int    `json:"offset,omitempty"`
}

// ScoredMemory pairs a memory with its similarity score for one query.
type ScoredMemory struct {
	*ent.Memory
	Score float64 `json:"score"`
}

// MemoryListResponse contains a paginated memory list.
type MemoryListResponse struct {
	Memories   []*ent.Memory `json:"memories"`
	TotalCount int           `json:"total_count"`
	Limit      int           `json:"limit"`
	Offset     int           `json:"offset"`
}

// WriteMemoryResult reports what a write did: Created is false when the
// content deduplicated onto an existing row.
type WriteMemoryResult struct {
	Memory  *ent.Memory `json:"memory"`
	Created bool        `json:"created"`
}

package services

import (
	"context"
	"crypto/sha256"
	stdsql "database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/valet-assistant/valet/ent"
	"github.com/valet-assistant/valet/ent/memory"
	"github.com/valet-assistant/valet/ent/memoryevent"
	"github.com/valet-assistant/valet/pkg/embeddings"
	"github.com/valet-assistant/valet/pkg/models"
	"github.com/valet-assistant/valet/pkg/redact"
)

const (
	defaultRetrieveTopK     = 5
	defaultRetrieveMinScore = 0.70
)

// MemoryService owns the long-term memory store: redaction, dedup on
// content hash, embedding, similarity retrieval and the audit-event trail.
// Similarity search runs as raw SQL against the pgvector column; everything
// else goes through Ent.
type MemoryService struct {
	client   *ent.Client
	db       *stdsql.DB
	embedder embeddings.Provider
}

// NewMemoryService creates a new MemoryService. db is the raw connection
// pool backing the Ent client; vector queries need it directly.
func NewMemoryService(client *ent.Client, db *stdsql.DB, embedder embeddings.Provider) *MemoryService {
	return &MemoryService{client: client, db: db, embedder: embedder}
}

// HashContent returns the dedup key for redacted memory content.
func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// WriteMemory stores one memory. Content and metadata are redacted first;
// a live row with the same content hash absorbs the write as an update
// (metadata merged, new keys winning; expiry extended when a TTL is given).
// The request context governs the embedding call only.
func (s *MemoryService) WriteMemory(ctx context.Context, req models.WriteMemoryRequest) (*models.WriteMemoryResult, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}
	memType := memory.TypeFact
	if req.Type != "" {
		memType = memory.Type(req.Type)
		if err := memory.TypeValidator(memType); err != nil {
			return nil, NewValidationError("type", "unknown memory type")
		}
	}
	source := req.Source
	if source == "" {
		source = "api"
	}

	content := redact.Text(req.Content)
	var metadata map[string]any
	if req.Metadata != nil {
		metadata, _ = redact.Map(req.Metadata)
	}
	hash := HashContent(content)

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.Memory.Query().
		Where(
			memory.UserIDEQ(req.UserID),
			memory.ContentHashEQ(hash),
			memory.IsDeletedEQ(false),
		).
		Only(dbCtx)
	if err == nil {
		return s.mergeExisting(dbCtx, existing, metadata, req.TTL, source)
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check for duplicate memory: %w", err)
	}

	vec, err := s.embedder.Embed(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingUnavailable, err)
	}

	result, err := s.insertNew(dbCtx, req, memType, source, content, hash, metadata, vec)
	if err != nil {
		// The unique index on (user_id, content_hash) WHERE NOT is_deleted
		// serializes concurrent writers; the loser merges instead.
		if ent.IsConstraintError(err) {
			existing, lookupErr := s.client.Memory.Query().
				Where(
					memory.UserIDEQ(req.UserID),
					memory.ContentHashEQ(hash),
					memory.IsDeletedEQ(false),
				).
				Only(dbCtx)
			if lookupErr == nil {
				return s.mergeExisting(dbCtx, existing, metadata, req.TTL, source)
			}
		}
		return nil, err
	}
	return result, nil
}

func (s *MemoryService) insertNew(ctx context.Context, req models.WriteMemoryRequest, memType memory.Type, source, content, hash string, metadata map[string]any, vec []float32) (*models.WriteMemoryResult, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.Memory.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetType(memType).
		SetSource(source).
		SetContent(content).
		SetContentHash(hash).
		SetEmbedding(pgvector.NewVector(vec))
	if req.SessionID != "" {
		builder.SetSessionID(req.SessionID)
	}
	if metadata != nil {
		builder.SetMetadata(metadata)
	}
	if req.TTL > 0 {
		builder.SetExpiresAt(time.Now().Add(req.TTL))
	}

	mem, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create memory: %w", err)
	}

	if err := recordMemoryEvent(ctx, tx, mem, memoryevent.EventTypeCreated, source, ""); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit memory: %w", err)
	}
	return &models.WriteMemoryResult{Memory: mem, Created: true}, nil
}

func (s *MemoryService) mergeExisting(ctx context.Context, existing *ent.Memory, metadata map[string]any, ttl time.Duration, actor string) (*models.WriteMemoryResult, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.Memory.UpdateOneID(existing.ID).
		SetUpdatedAt(time.Now())
	if len(metadata) > 0 {
		builder.SetMetadata(mergeMetadata(existing.Metadata, metadata))
	}
	if ttl > 0 {
		builder.SetExpiresAt(time.Now().Add(ttl))
	}

	mem, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update memory: %w", err)
	}

	if err := recordMemoryEvent(ctx, tx, mem, memoryevent.EventTypeUpdated, actor, "duplicate content"); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit memory update: %w", err)
	}
	return &models.WriteMemoryResult{Memory: mem, Created: false}, nil
}

// RetrieveMemories runs a similarity search over one user's live memories.
// An embedding failure degrades to an empty result instead of failing the
// turn. Each returned memory gets a best-effort RETRIEVED audit event.
func (s *MemoryService) RetrieveMemories(ctx context.Context, req models.RetrieveMemoryRequest) ([]*models.ScoredMemory, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Query == "" {
		return nil, NewValidationError("query", "required")
	}
	topK := req.TopK
	if topK <= 0 {
		topK = defaultRetrieveTopK
	}
	// Zero means "use the default"; a negative floor disables the
	// similarity cutoff for filter-pinned lookups.
	minScore := req.MinScore
	if minScore == 0 {
		minScore = defaultRetrieveMinScore
	}

	vec, err := s.embedder.Embed(ctx, redact.Text(req.Query))
	if err != nil {
		return nil, nil
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := `SELECT memory_id, 1 - (embedding <=> $1) AS score
		FROM memories
		WHERE user_id = $2 AND NOT is_deleted
		AND (expires_at IS NULL OR expires_at > now())`
	args := []any{pgvector.NewVector(vec), req.UserID}

	if len(req.Types) > 0 {
		args = append(args, req.Types)
		query += fmt.Sprintf(" AND type = ANY($%d)", len(args))
	}
	if len(req.MetadataFilter) > 0 {
		filterJSON, err := json.Marshal(req.MetadataFilter)
		if err != nil {
			return nil, fmt.Errorf("failed to encode metadata filter: %w", err)
		}
		args = append(args, string(filterJSON))
		query += fmt.Sprintf(" AND metadata @> $%d::jsonb", len(args))
	}

	if minScore > 0 {
		args = append(args, 1-minScore)
		query += fmt.Sprintf(" AND (embedding <=> $1) <= $%d", len(args))
	}
	args = append(args, topK)
	query += fmt.Sprintf(" ORDER BY embedding <=> $1 ASC LIMIT $%d", len(args))

	rows, err := s.db.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search memories: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0, topK)
	scores := make(map[string]float64, topK)
	for rows.Next() {
		var id string
		var score float64
		if err := rows.Scan(&id, &score); err != nil {
			return nil, fmt.Errorf("failed to scan memory row: %w", err)
		}
		ids = append(ids, id)
		scores[id] = score
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read memory rows: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	memories, err := s.client.Memory.Query().
		Where(memory.IDIn(ids...)).
		All(dbCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to load memories: %w", err)
	}
	byID := make(map[string]*ent.Memory, len(memories))
	for _, mem := range memories {
		byID[mem.ID] = mem
	}

	results := make([]*models.ScoredMemory, 0, len(ids))
	for _, id := range ids {
		mem, ok := byID[id]
		if !ok {
			continue
		}
		results = append(results, &models.ScoredMemory{Memory: mem, Score: scores[id]})

		// Audit failures never fail retrieval.
		_ = s.client.MemoryEvent.Create().
			SetID(uuid.New().String()).
			SetUserID(mem.UserID).
			SetMemoryID(mem.ID).
			SetEventType(memoryevent.EventTypeRetrieved).
			SetActor("system").
			SetReason("similarity query").
			Exec(dbCtx)
	}

	return results, nil
}

// GetMemory retrieves one live memory scoped to its owner
func (s *MemoryService) GetMemory(ctx context.Context, userID, memoryID string) (*ent.Memory, error) {
	mem, err := s.client.Memory.Query().
		Where(
			memory.IDEQ(memoryID),
			memory.UserIDEQ(userID),
			memory.IsDeletedEQ(false),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get memory: %w", err)
	}
	return mem, nil
}

// ListMemories returns a page of a user's memories, newest update first
func (s *MemoryService) ListMemories(ctx context.Context, userID string, filters models.MemoryFilters) (*models.MemoryListResponse, error) {
	query := s.client.Memory.Query().
		Where(memory.UserIDEQ(userID))
	if !filters.IncludeDeleted {
		query = query.Where(memory.IsDeletedEQ(false))
	}
	if filters.Type != "" {
		query = query.Where(memory.TypeEQ(memory.Type(filters.Type)))
	}
	if filters.Query != "" {
		query = query.Where(memory.ContentContainsFold(filters.Query))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count memories: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	memories, err := query.
		Order(ent.Desc(memory.FieldUpdatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memories: %w", err)
	}

	return &models.MemoryListResponse{
		Memories:   memories,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateMemory patches a live memory. A content change re-redacts,
// re-hashes and re-embeds; colliding with another live row's hash surfaces
// ErrAlreadyExists.
func (s *MemoryService) UpdateMemory(ctx context.Context, userID, memoryID string, req models.UpdateMemoryRequest) (*ent.Memory, error) {
	existing, err := s.GetMemory(ctx, userID, memoryID)
	if err != nil {
		return nil, err
	}

	var newContent, newHash string
	var newVec []float32
	if req.Content != nil {
		content := redact.Text(*req.Content)
		if content == "" {
			return nil, NewValidationError("content", "required")
		}
		if content != existing.Content {
			newContent = content
			newHash = HashContent(content)
			vec, err := s.embedder.Embed(ctx, content)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrEmbeddingUnavailable, err)
			}
			newVec = vec
		}
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(dbCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.Memory.UpdateOneID(existing.ID).
		SetUpdatedAt(time.Now())
	if newContent != "" {
		builder.
			SetContent(newContent).
			SetContentHash(newHash).
			SetEmbedding(pgvector.NewVector(newVec))
	}
	if req.Type != nil {
		memType := memory.Type(*req.Type)
		if err := memory.TypeValidator(memType); err != nil {
			return nil, NewValidationError("type", "unknown memory type")
		}
		builder.SetType(memType)
	}
	if len(req.Metadata) > 0 {
		redacted, _ := redact.Map(req.Metadata)
		builder.SetMetadata(mergeMetadata(existing.Metadata, redacted))
	}

	mem, err := builder.Save(dbCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update memory: %w", err)
	}

	if err := recordMemoryEvent(dbCtx, tx, mem, memoryevent.EventTypeUpdated, "api", ""); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit memory update: %w", err)
	}
	return mem, nil
}

// DeleteMemory soft-deletes a live memory, releasing its dedup slot
func (s *MemoryService) DeleteMemory(_ context.Context, userID, memoryID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	count, err := tx.Memory.Update().
		Where(
			memory.IDEQ(memoryID),
			memory.UserIDEQ(userID),
			memory.IsDeletedEQ(false),
		).
		SetIsDeleted(true).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete memory: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}

	err = tx.MemoryEvent.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetMemoryID(memoryID).
		SetEventType(memoryevent.EventTypeDeleted).
		SetActor("api").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record memory event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit memory delete: %w", err)
	}
	return nil
}

// ExpireMemories sweeps memories whose retention lapsed, soft-deleting them
// and emitting EXPIRED events. Returns how many were expired.
func (s *MemoryService) ExpireMemories(_ context.Context, now time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	lapsed, err := tx.Memory.Query().
		Where(
			memory.IsDeletedEQ(false),
			memory.ExpiresAtNotNil(),
			memory.ExpiresAtLTE(now),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired memories: %w", err)
	}
	if len(lapsed) == 0 {
		return 0, tx.Commit()
	}

	ids := make([]string, 0, len(lapsed))
	for _, mem := range lapsed {
		ids = append(ids, mem.ID)
	}

	count, err := tx.Memory.Update().
		Where(memory.IDIn(ids...)).
		SetIsDeleted(true).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire memories: %w", err)
	}

	for _, mem := range lapsed {
		if err := recordMemoryEvent(ctx, tx, mem, memoryevent.EventTypeExpired, "system", "retention lapsed"); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit expiry sweep: %w", err)
	}
	return count, nil
}

// ListEvents returns a memory's audit trail, oldest first. The memory
// must belong to userID; soft-deleted memories keep their trail readable.
func (s *MemoryService) ListEvents(ctx context.Context, userID, memoryID string) ([]*ent.MemoryEvent, error) {
	exists, err := s.client.Memory.Query().
		Where(
			memory.IDEQ(memoryID),
			memory.UserIDEQ(userID),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check memory: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	evts, err := s.client.MemoryEvent.Query().
		Where(memoryevent.MemoryIDEQ(memoryID)).
		Order(ent.Asc(memoryevent.FieldCreatedAt), ent.Asc(memoryevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memory events: %w", err)
	}
	return evts, nil
}

// PurgeDeleted hard-deletes memories that have been soft-deleted for longer
// than olderThan. Their audit events cascade with them.
func (s *MemoryService) PurgeDeleted(_ context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Memory.Delete().
		Where(
			memory.IsDeletedEQ(true),
			memory.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge memories: %w", err)
	}
	return count, nil
}

func recordMemoryEvent(ctx context.Context, tx *ent.Tx, mem *ent.Memory, eventType memoryevent.EventType, actor, reason string) error {
	builder := tx.MemoryEvent.Create().
		SetID(uuid.New().String()).
		SetUserID(mem.UserID).
		SetMemoryID(mem.ID).
		SetEventType(eventType).
		SetActor(actor)
	if reason != "" {
		builder.SetReason(reason)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record memory event: %w", err)
	}
	return nil
}

// mergeMetadata overlays update onto base, update keys winning.
func mergeMetadata(base, update map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(update))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range update {
		merged[k] = v
	}
	return merged
}

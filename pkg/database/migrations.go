package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateVectorIndexes installs the pgvector extension and creates the HNSW
// index backing memory similarity search. Parameters (m=16,
// ef_construction=64) are tuned for ~100k memories per user; revisit if
// the table grows past that by orders of magnitude.
func CreateVectorIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS vector`)
	if err != nil {
		return fmt.Errorf("failed to create vector extension: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_memories_embedding_hnsw
		ON memories USING hnsw (embedding vector_cosine_ops)
		WITH (m = 16, ef_construction = 64)`)
	if err != nil {
		return fmt.Errorf("failed to create embedding HNSW index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in
// 000001_init.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Exactly-once user turns: retried submissions with the same key land
	// on the same agent_messages row.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS agentmessage_session_id_idempotency_key
		ON agent_messages (session_id, idempotency_key)
		WHERE idempotency_key IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create message idempotency index: %w", err)
	}

	// Memory dedup: one live row per (user, content_hash); soft-deleted
	// rows release the slot.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS memory_user_id_content_hash_live
		ON memories (user_id, content_hash)
		WHERE NOT is_deleted`)
	if err != nil {
		return fmt.Errorf("failed to create memory dedup index: %w", err)
	}

	// API keys are unique across users when present.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS user_api_key_hash_present
		ON users (api_key_hash)
		WHERE api_key_hash IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create api key index: %w", err)
	}

	return nil
}

package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"
)

// AcquireSessionLock takes the session-scoped Postgres advisory lock that
// serializes turns. The lock is held on a dedicated connection (advisory
// locks are connection-scoped; pooled connections would release or leak
// them unpredictably). Blocks until the lock is granted or ctx expires.
//
// The returned release func unlocks and returns the connection to the
// pool. It is safe to call exactly once, typically via defer.
func AcquireSessionLock(ctx context.Context, db *stdsql.DB, sessionID string) (release func(), err error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection for session lock: %w", err)
	}

	// hashtextextended maps the session id onto the bigint key space
	// pg_advisory_lock expects.
	_, err = conn.ExecContext(ctx,
		`SELECT pg_advisory_lock(hashtextextended($1, 0))`, sessionID)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to acquire session lock: %w", err)
	}

	release = func() {
		// Unlock with a fresh context: the caller's ctx may already be
		// done, and an unreleased advisory lock would stall the session
		// until the connection dies.
		unlockCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, _ = conn.ExecContext(unlockCtx,
			`SELECT pg_advisory_unlock(hashtextextended($1, 0))`, sessionID)
		_ = conn.Close()
	}
	return release, nil
}

package tools

import (
	"context"
	"fmt"

	"github.com/valet-assistant/valet/pkg/models"
)

// MemoryStore is the slice of the memory service the fact tools need.
type MemoryStore interface {
	WriteMemory(ctx context.Context, req models.WriteMemoryRequest) (*models.WriteMemoryResult, error)
	RetrieveMemories(ctx context.Context, req models.RetrieveMemoryRequest) ([]*models.ScoredMemory, error)
}

func rememberFactSpec() models.ToolSpec {
	return models.ToolSpec{
		Name:          "remember_fact",
		Description:   "Stores a key-value pair as a personal fact for long-term memory.",
		Category:      models.CategoryMemory,
		Action:        models.ActionWrite,
		Sensitivity:   models.SensitivityLow,
		Scope:         models.ScopeSingle,
		SideEffects:   true,
		RequiredScope: "core",
		TargetEntity:  "fact",
		Params: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"key":   map[string]any{"type": "string", "minLength": 1},
				"value": map[string]any{"type": "string", "minLength": 1},
			},
			"required": []string{"key", "value"},
		},
	}
}

func rememberFactHandler(store MemoryStore) Handler {
	return HandlerFunc(func(ctx context.Context, args map[string]any) (map[string]any, error) {
		inv := InvocationFrom(ctx)
		if inv.UserID == "" {
			return nil, fmt.Errorf("no user bound to this invocation")
		}

		key := strArg(args, "key")
		result, err := store.WriteMemory(ctx, models.WriteMemoryRequest{
			UserID:    inv.UserID,
			SessionID: inv.SessionID,
			Type:      "fact",
			Source:    "agent",
			Content:   strArg(args, "value"),
			Metadata:  map[string]any{"key": key, "subtype": "fact"},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to store fact: %w", err)
		}

		// Echo the stored content, which has been through redaction.
		return map[string]any{
			"message":   fmt.Sprintf("Remembered fact: '%s' set to '%s'.", key, result.Memory.Content),
			"memory_id": result.Memory.ID,
			"created":   result.Created,
		}, nil
	})
}

func recallFactSpec() models.ToolSpec {
	return models.ToolSpec{
		Name:          "recall_fact",
		Description:   "Recalls a personal fact previously stored in long-term memory.",
		Category:      models.CategoryMemory,
		Action:        models.ActionRead,
		Sensitivity:   models.SensitivityLow,
		Scope:         models.ScopeSingle,
		RequiredScope: "core",
		TargetEntity:  "fact",
		Params: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"key": map[string]any{"type": "string", "minLength": 1},
			},
			"required": []string{"key"},
		},
	}
}

func recallFactHandler(store MemoryStore) Handler {
	return HandlerFunc(func(ctx context.Context, args map[string]any) (map[string]any, error) {
		inv := InvocationFrom(ctx)
		if inv.UserID == "" {
			return nil, fmt.Errorf("no user bound to this invocation")
		}

		key := strArg(args, "key")
		// The metadata filter pins the exact fact; a negative floor keeps
		// the similarity cutoff out of the way of key lookups.
		results, err := store.RetrieveMemories(ctx, models.RetrieveMemoryRequest{
			UserID:         inv.UserID,
			Query:          key,
			Types:          []string{"fact"},
			TopK:           1,
			MinScore:       -1,
			MetadataFilter: map[string]any{"key": key, "subtype": "fact"},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to recall fact: %w", err)
		}

		if len(results) == 0 {
			return map[string]any{
				"message": fmt.Sprintf("Fact not found. I don't have a stored fact for '%s'.", key),
				"found":   false,
			}, nil
		}
		return map[string]any{
			"message": fmt.Sprintf("The stored fact for '%s' is: '%s'", key, results[0].Content),
			"found":   true,
			"value":   results[0].Content,
		}, nil
	})
}

// Package tools holds the static tool registry: typed specs, compiled
// argument schemas, and the handlers that do the work. The registry is
// assembled once at startup; the policy engine reads specs, the runtime
// resolves handlers.
package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/valet-assistant/valet/pkg/models"
)

// ErrAlreadyRegistered is returned when a tool name is registered twice.
var ErrAlreadyRegistered = errors.New("tool already registered")

// Handler executes one tool invocation. Implementations must honor ctx
// cancellation; the runtime enforces the per-tool deadline through it.
type Handler interface {
	Handle(ctx context.Context, args map[string]any) (map[string]any, error)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, args map[string]any) (map[string]any, error)

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, args map[string]any) (map[string]any, error) {
	return f(ctx, args)
}

// Tool pairs an immutable spec with its handler and the compiled argument
// schema.
type Tool struct {
	Spec    models.ToolSpec
	Handler Handler
	schema  *jsonschema.Schema
}

// ValidateArgs checks args against the tool's compiled JSON Schema. The
// returned error carries a single-line message safe to surface to users.
func (t *Tool) ValidateArgs(args map[string]any) error {
	if t.schema == nil {
		return nil
	}
	if args == nil {
		args = map[string]any{}
	}
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("arguments are not serializable: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("arguments are not valid JSON: %w", err)
	}
	if err := t.schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid arguments for %s: %s", t.Spec.Name, firstLine(err.Error()))
	}
	return nil
}

// Registry is the static name → tool table. Registration happens during
// startup; lookups are concurrent-safe afterwards.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*Tool
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

// Register adds a tool. The spec's params schema is compiled up front so
// a malformed schema fails at startup, not on first use. Duplicate names
// are rejected.
func (r *Registry) Register(spec models.ToolSpec, handler Handler) error {
	if spec.Name == "" {
		return errors.New("tool name is required")
	}
	if handler == nil {
		return fmt.Errorf("tool %s: handler is required", spec.Name)
	}

	var schema *jsonschema.Schema
	if len(spec.Params) > 0 {
		compiled, err := compileSchema(spec.Name, spec.Params)
		if err != nil {
			return fmt.Errorf("tool %s: %w", spec.Name, err)
		}
		schema = compiled
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[spec.Name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, spec.Name)
	}
	r.tools[spec.Name] = &Tool{Spec: spec, Handler: handler, schema: schema}
	return nil
}

// Get returns the tool registered under name, or nil and false.
func (r *Registry) Get(name string) (*Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// Specs returns every registered spec, sorted by name. Handlers and
// compiled schemas stay private to the registry.
func (r *Registry) Specs() []models.ToolSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	specs := make([]models.ToolSpec, 0, len(r.tools))
	for _, tool := range r.tools {
		specs = append(specs, tool.Spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })
	return specs
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func compileSchema(name string, params map[string]any) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	resource := name + ".schema.json"
	if err := compiler.AddResource(resource, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return schema, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

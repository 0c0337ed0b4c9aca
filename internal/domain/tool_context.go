package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ToolExecutionContext is the per-invocation bundle passed to a tool. It is
// created fresh by the caller and discarded once the tool returns.
type ToolExecutionContext struct {
	TenantID      uuid.UUID
	WorkspaceRoot string
	Parameters    map[string]any
}

// Has reports whether the parameter is present and non-nil.
func (c ToolExecutionContext) Has(name string) bool {
	v, ok := c.Parameters[name]
	return ok && v != nil
}

// String returns a required, non-blank string parameter.
func (c ToolExecutionContext) String(name string) (string, error) {
	v, ok := c.Parameters[name]
	if !ok || v == nil {
		return "", NewMissingParameterErr(name)
	}
	s, ok := v.(string)
	if !ok {
		return "", NewValidationErr(fmt.Sprintf("parameter '%s' must be a string", name))
	}
	if strings.TrimSpace(s) == "" {
		return "", NewMissingParameterErr(name)
	}
	return s, nil
}

// OptionalString returns a string parameter, or def when it is absent or blank.
func (c ToolExecutionContext) OptionalString(name, def string) (string, error) {
	v, ok := c.Parameters[name]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", NewValidationErr(fmt.Sprintf("parameter '%s' must be a string", name))
	}
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return s, nil
}

// OptionalInt returns an integer parameter, or def when it is absent. Numbers
// decoded from JSON (float64, json.Number) and numeric strings are accepted.
func (c ToolExecutionContext) OptionalInt(name string, def int) (int, error) {
	v, ok := c.Parameters[name]
	if !ok || v == nil {
		return def, nil
	}
	malformed := NewValidationErr(fmt.Sprintf("parameter '%s' must be an integer", name))
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, malformed
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, malformed
		}
		return int(i), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, malformed
		}
		return i, nil
	default:
		return 0, malformed
	}
}

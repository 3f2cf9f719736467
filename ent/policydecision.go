// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/valet-assistant/valet/ent/policydecision"
)

// PolicyDecision is the model entity for the PolicyDecision schema.
type PolicyDecision struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName string `json:"tool_name,omitempty"`
	// ALLOW, ALLOW_WITH_CONFIRMATION, ESCALATE or DENY
	Decision string `json:"decision,omitempty"`
	// 0-100
	RiskScore int `json:"risk_score,omitempty"`
	// ReasonCode holds the value of the "reason_code" field.
	ReasonCode string `json:"reason_code,omitempty"`
	// IntentSummary holds the value of the "intent_summary" field.
	IntentSummary *string `json:"intent_summary,omitempty"`
	// Mode holds the value of the "mode" field.
	Mode policydecision.Mode `json:"mode,omitempty"`
	// ToolExecutionID holds the value of the "tool_execution_id" field.
	ToolExecutionID *string `json:"tool_execution_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PolicyDecision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case policydecision.FieldRiskScore:
			values[i] = new(sql.NullInt64)
		case policydecision.FieldID, policydecision.FieldSessionID, policydecision.FieldUserID, policydecision.FieldToolName, policydecision.FieldDecision, policydecision.FieldReasonCode, policydecision.FieldIntentSummary, policydecision.FieldMode, policydecision.FieldToolExecutionID:
			values[i] = new(sql.NullString)
		case policydecision.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PolicyDecision fields.
func (_m *PolicyDecision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case policydecision.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case policydecision.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case policydecision.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case policydecision.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = value.String
			}
		case policydecision.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = value.String
			}
		case policydecision.FieldRiskScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_score", values[i])
			} else if value.Valid {
				_m.RiskScore = int(value.Int64)
			}
		case policydecision.FieldReasonCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason_code", values[i])
			} else if value.Valid {
				_m.ReasonCode = value.String
			}
		case policydecision.FieldIntentSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent_summary", values[i])
			} else if value.Valid {
				_m.IntentSummary = new(string)
				*_m.IntentSummary = value.String
			}
		case policydecision.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = policydecision.Mode(value.String)
			}
		case policydecision.FieldToolExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_execution_id", values[i])
			} else if value.Valid {
				_m.ToolExecutionID = new(string)
				*_m.ToolExecutionID = value.String
			}
		case policydecision.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PolicyDecision.
// This includes values selected through modifiers, order, etc.
func (_m *PolicyDecision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PolicyDecision.
// Note that you need to call PolicyDecision.Unwrap() before calling this method if this PolicyDecision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PolicyDecision) Update() *PolicyDecisionUpdateOne {
	return NewPolicyDecisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PolicyDecision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PolicyDecision) Unwrap() *PolicyDecision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PolicyDecision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PolicyDecision) String() string {
	var builder strings.Builder
	builder.WriteString("PolicyDecision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("tool_name=")
	builder.WriteString(_m.ToolName)
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(_m.Decision)
	builder.WriteString(", ")
	builder.WriteString("risk_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskScore))
	builder.WriteString(", ")
	builder.WriteString("reason_code=")
	builder.WriteString(_m.ReasonCode)
	builder.WriteString(", ")
	if v := _m.IntentSummary; v != nil {
		builder.WriteString("intent_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mode))
	builder.WriteString(", ")
	if v := _m.ToolExecutionID; v != nil {
		builder.WriteString("tool_execution_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PolicyDecisions is a parsable slice of PolicyDecision.
type PolicyDecisions []*PolicyDecision

// Code generated by ent, DO NOT EDIT.

package policydecision

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the policydecision type in the database.
	Label = "policy_decision"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "decision_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldToolName holds the string denoting the tool_name field in the database.
	FieldToolName = "tool_name"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldRiskScore holds the string denoting the risk_score field in the database.
	FieldRiskScore = "risk_score"
	// FieldReasonCode holds the string denoting the reason_code field in the database.
	FieldReasonCode = "reason_code"
	// FieldIntentSummary holds the string denoting the intent_summary field in the database.
	FieldIntentSummary = "intent_summary"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldToolExecutionID holds the string denoting the tool_execution_id field in the database.
	FieldToolExecutionID = "tool_execution_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the policydecision in the database.
	Table = "policy_decisions"
)

// Columns holds all SQL columns for policydecision fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldUserID,
	FieldToolName,
	FieldDecision,
	FieldRiskScore,
	FieldReasonCode,
	FieldIntentSummary,
	FieldMode,
	FieldToolExecutionID,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Mode defines the type for the "mode" enum field.
type Mode string

// ModeEnforce is the default value of the Mode enum.
const DefaultMode = ModeEnforce

// Mode values.
const (
	ModeEnforce Mode = "enforce"
	ModeAudit   Mode = "audit"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModeEnforce, ModeAudit:
		return nil
	default:
		return fmt.Errorf("policydecision: invalid enum value for mode field: %q", m)
	}
}

// OrderOption defines the ordering options for the PolicyDecision queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByToolName orders the results by the tool_name field.
func ByToolName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolName, opts...).ToFunc()
}

// ByDecision orders the results by the decision field.
func ByDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecision, opts...).ToFunc()
}

// ByRiskScore orders the results by the risk_score field.
func ByRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScore, opts...).ToFunc()
}

// ByReasonCode orders the results by the reason_code field.
func ByReasonCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasonCode, opts...).ToFunc()
}

// ByIntentSummary orders the results by the intent_summary field.
func ByIntentSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntentSummary, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByToolExecutionID orders the results by the tool_execution_id field.
func ByToolExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolExecutionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package policydecision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/valet-assistant/valet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldUserID, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldToolName, v))
}

// Decision applies equality check predicate on the "decision" field. It's identical to DecisionEQ.
func Decision(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldDecision, v))
}

// RiskScore applies equality check predicate on the "risk_score" field. It's identical to RiskScoreEQ.
func RiskScore(v int) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldRiskScore, v))
}

// ReasonCode applies equality check predicate on the "reason_code" field. It's identical to ReasonCodeEQ.
func ReasonCode(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldReasonCode, v))
}

// IntentSummary applies equality check predicate on the "intent_summary" field. It's identical to IntentSummaryEQ.
func IntentSummary(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldIntentSummary, v))
}

// ToolExecutionID applies equality check predicate on the "tool_execution_id" field. It's identical to ToolExecutionIDEQ.
func ToolExecutionID(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldToolExecutionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldContainsFold(FieldUserID, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldContainsFold(FieldToolName, v))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNotIn(FieldDecision, vs...))
}

// DecisionGT applies the GT predicate on the "decision" field.
func DecisionGT(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGT(FieldDecision, v))
}

// DecisionGTE applies the GTE predicate on the "decision" field.
func DecisionGTE(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGTE(FieldDecision, v))
}

// DecisionLT applies the LT predicate on the "decision" field.
func DecisionLT(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLT(FieldDecision, v))
}

// DecisionLTE applies the LTE predicate on the "decision" field.
func DecisionLTE(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLTE(FieldDecision, v))
}

// DecisionContains applies the Contains predicate on the "decision" field.
func DecisionContains(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldContains(FieldDecision, v))
}

// DecisionHasPrefix applies the HasPrefix predicate on the "decision" field.
func DecisionHasPrefix(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldHasPrefix(FieldDecision, v))
}

// DecisionHasSuffix applies the HasSuffix predicate on the "decision" field.
func DecisionHasSuffix(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldHasSuffix(FieldDecision, v))
}

// DecisionEqualFold applies the EqualFold predicate on the "decision" field.
func DecisionEqualFold(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEqualFold(FieldDecision, v))
}

// DecisionContainsFold applies the ContainsFold predicate on the "decision" field.
func DecisionContainsFold(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldContainsFold(FieldDecision, v))
}

// RiskScoreEQ applies the EQ predicate on the "risk_score" field.
func RiskScoreEQ(v int) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldRiskScore, v))
}

// RiskScoreNEQ applies the NEQ predicate on the "risk_score" field.
func RiskScoreNEQ(v int) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNEQ(FieldRiskScore, v))
}

// RiskScoreIn applies the In predicate on the "risk_score" field.
func RiskScoreIn(vs ...int) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldIn(FieldRiskScore, vs...))
}

// RiskScoreNotIn applies the NotIn predicate on the "risk_score" field.
func RiskScoreNotIn(vs ...int) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNotIn(FieldRiskScore, vs...))
}

// RiskScoreGT applies the GT predicate on the "risk_score" field.
func RiskScoreGT(v int) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGT(FieldRiskScore, v))
}

// RiskScoreGTE applies the GTE predicate on the "risk_score" field.
func RiskScoreGTE(v int) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGTE(FieldRiskScore, v))
}

// RiskScoreLT applies the LT predicate on the "risk_score" field.
func RiskScoreLT(v int) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLT(FieldRiskScore, v))
}

// RiskScoreLTE applies the LTE predicate on the "risk_score" field.
func RiskScoreLTE(v int) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLTE(FieldRiskScore, v))
}

// ReasonCodeEQ applies the EQ predicate on the "reason_code" field.
func ReasonCodeEQ(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldReasonCode, v))
}

// ReasonCodeNEQ applies the NEQ predicate on the "reason_code" field.
func ReasonCodeNEQ(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNEQ(FieldReasonCode, v))
}

// ReasonCodeIn applies the In predicate on the "reason_code" field.
func ReasonCodeIn(vs ...string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldIn(FieldReasonCode, vs...))
}

// ReasonCodeNotIn applies the NotIn predicate on the "reason_code" field.
func ReasonCodeNotIn(vs ...string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNotIn(FieldReasonCode, vs...))
}

// ReasonCodeGT applies the GT predicate on the "reason_code" field.
func ReasonCodeGT(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGT(FieldReasonCode, v))
}

// ReasonCodeGTE applies the GTE predicate on the "reason_code" field.
func ReasonCodeGTE(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGTE(FieldReasonCode, v))
}

// ReasonCodeLT applies the LT predicate on the "reason_code" field.
func ReasonCodeLT(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLT(FieldReasonCode, v))
}

// ReasonCodeLTE applies the LTE predicate on the "reason_code" field.
func ReasonCodeLTE(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLTE(FieldReasonCode, v))
}

// ReasonCodeContains applies the Contains predicate on the "reason_code" field.
func ReasonCodeContains(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldContains(FieldReasonCode, v))
}

// ReasonCodeHasPrefix applies the HasPrefix predicate on the "reason_code" field.
func ReasonCodeHasPrefix(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldHasPrefix(FieldReasonCode, v))
}

// ReasonCodeHasSuffix applies the HasSuffix predicate on the "reason_code" field.
func ReasonCodeHasSuffix(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldHasSuffix(FieldReasonCode, v))
}

// ReasonCodeEqualFold applies the EqualFold predicate on the "reason_code" field.
func ReasonCodeEqualFold(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEqualFold(FieldReasonCode, v))
}

// ReasonCodeContainsFold applies the ContainsFold predicate on the "reason_code" field.
func ReasonCodeContainsFold(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldContainsFold(FieldReasonCode, v))
}

// IntentSummaryEQ applies the EQ predicate on the "intent_summary" field.
func IntentSummaryEQ(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldIntentSummary, v))
}

// IntentSummaryNEQ applies the NEQ predicate on the "intent_summary" field.
func IntentSummaryNEQ(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNEQ(FieldIntentSummary, v))
}

// IntentSummaryIn applies the In predicate on the "intent_summary" field.
func IntentSummaryIn(vs ...string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldIn(FieldIntentSummary, vs...))
}

// IntentSummaryNotIn applies the NotIn predicate on the "intent_summary" field.
func IntentSummaryNotIn(vs ...string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNotIn(FieldIntentSummary, vs...))
}

// IntentSummaryGT applies the GT predicate on the "intent_summary" field.
func IntentSummaryGT(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGT(FieldIntentSummary, v))
}

// IntentSummaryGTE applies the GTE predicate on the "intent_summary" field.
func IntentSummaryGTE(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGTE(FieldIntentSummary, v))
}

// IntentSummaryLT applies the LT predicate on the "intent_summary" field.
func IntentSummaryLT(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLT(FieldIntentSummary, v))
}

// IntentSummaryLTE applies the LTE predicate on the "intent_summary" field.
func IntentSummaryLTE(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLTE(FieldIntentSummary, v))
}

// IntentSummaryContains applies the Contains predicate on the "intent_summary" field.
func IntentSummaryContains(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldContains(FieldIntentSummary, v))
}

// IntentSummaryHasPrefix applies the HasPrefix predicate on the "intent_summary" field.
func IntentSummaryHasPrefix(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldHasPrefix(FieldIntentSummary, v))
}

// IntentSummaryHasSuffix applies the HasSuffix predicate on the "intent_summary" field.
func IntentSummaryHasSuffix(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldHasSuffix(FieldIntentSummary, v))
}

// IntentSummaryIsNil applies the IsNil predicate on the "intent_summary" field.
func IntentSummaryIsNil() predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldIsNull(FieldIntentSummary))
}

// IntentSummaryNotNil applies the NotNil predicate on the "intent_summary" field.
func IntentSummaryNotNil() predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNotNull(FieldIntentSummary))
}

// IntentSummaryEqualFold applies the EqualFold predicate on the "intent_summary" field.
func IntentSummaryEqualFold(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEqualFold(FieldIntentSummary, v))
}

// IntentSummaryContainsFold applies the ContainsFold predicate on the "intent_summary" field.
func IntentSummaryContainsFold(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldContainsFold(FieldIntentSummary, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNotIn(FieldMode, vs...))
}

// ToolExecutionIDEQ applies the EQ predicate on the "tool_execution_id" field.
func ToolExecutionIDEQ(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldToolExecutionID, v))
}

// ToolExecutionIDNEQ applies the NEQ predicate on the "tool_execution_id" field.
func ToolExecutionIDNEQ(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNEQ(FieldToolExecutionID, v))
}

// ToolExecutionIDIn applies the In predicate on the "tool_execution_id" field.
func ToolExecutionIDIn(vs ...string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldIn(FieldToolExecutionID, vs...))
}

// ToolExecutionIDNotIn applies the NotIn predicate on the "tool_execution_id" field.
func ToolExecutionIDNotIn(vs ...string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNotIn(FieldToolExecutionID, vs...))
}

// ToolExecutionIDGT applies the GT predicate on the "tool_execution_id" field.
func ToolExecutionIDGT(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGT(FieldToolExecutionID, v))
}

// ToolExecutionIDGTE applies the GTE predicate on the "tool_execution_id" field.
func ToolExecutionIDGTE(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGTE(FieldToolExecutionID, v))
}

// ToolExecutionIDLT applies the LT predicate on the "tool_execution_id" field.
func ToolExecutionIDLT(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLT(FieldToolExecutionID, v))
}

// ToolExecutionIDLTE applies the LTE predicate on the "tool_execution_id" field.
func ToolExecutionIDLTE(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLTE(FieldToolExecutionID, v))
}

// ToolExecutionIDContains applies the Contains predicate on the "tool_execution_id" field.
func ToolExecutionIDContains(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldContains(FieldToolExecutionID, v))
}

// ToolExecutionIDHasPrefix applies the HasPrefix predicate on the "tool_execution_id" field.
func ToolExecutionIDHasPrefix(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldHasPrefix(FieldToolExecutionID, v))
}

// ToolExecutionIDHasSuffix applies the HasSuffix predicate on the "tool_execution_id" field.
func ToolExecutionIDHasSuffix(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldHasSuffix(FieldToolExecutionID, v))
}

// ToolExecutionIDIsNil applies the IsNil predicate on the "tool_execution_id" field.
func ToolExecutionIDIsNil() predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldIsNull(FieldToolExecutionID))
}

// ToolExecutionIDNotNil applies the NotNil predicate on the "tool_execution_id" field.
func ToolExecutionIDNotNil() predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNotNull(FieldToolExecutionID))
}

// ToolExecutionIDEqualFold applies the EqualFold predicate on the "tool_execution_id" field.
func ToolExecutionIDEqualFold(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEqualFold(FieldToolExecutionID, v))
}

// ToolExecutionIDContainsFold applies the ContainsFold predicate on the "tool_execution_id" field.
func ToolExecutionIDContainsFold(v string) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldContainsFold(FieldToolExecutionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PolicyDecision) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PolicyDecision) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PolicyDecision) predicate.PolicyDecision {
	return predicate.PolicyDecision(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package confirmation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/valet-assistant/valet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContainsFold(FieldID, id))
}

// ToolExecutionID applies equality check predicate on the "tool_execution_id" field. It's identical to ToolExecutionIDEQ.
func ToolExecutionID(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldToolExecutionID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldUserID, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldToolName, v))
}

// DecisionType applies equality check predicate on the "decision_type" field. It's identical to DecisionTypeEQ.
func DecisionType(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldDecisionType, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldPrompt, v))
}

// RequiredPhrase applies equality check predicate on the "required_phrase" field. It's identical to RequiredPhraseEQ.
func RequiredPhrase(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldRequiredPhrase, v))
}

// RiskScore applies equality check predicate on the "risk_score" field. It's identical to RiskScoreEQ.
func RiskScore(v int) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldRiskScore, v))
}

// ReasonCode applies equality check predicate on the "reason_code" field. It's identical to ReasonCodeEQ.
func ReasonCode(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldReasonCode, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldExpiresAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldResolvedAt, v))
}

// TraceID applies equality check predicate on the "trace_id" field. It's identical to TraceIDEQ.
func TraceID(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldTraceID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldCreatedAt, v))
}

// ToolExecutionIDEQ applies the EQ predicate on the "tool_execution_id" field.
func ToolExecutionIDEQ(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldToolExecutionID, v))
}

// ToolExecutionIDNEQ applies the NEQ predicate on the "tool_execution_id" field.
func ToolExecutionIDNEQ(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNEQ(FieldToolExecutionID, v))
}

// ToolExecutionIDIn applies the In predicate on the "tool_execution_id" field.
func ToolExecutionIDIn(vs ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIn(FieldToolExecutionID, vs...))
}

// ToolExecutionIDNotIn applies the NotIn predicate on the "tool_execution_id" field.
func ToolExecutionIDNotIn(vs ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotIn(FieldToolExecutionID, vs...))
}

// ToolExecutionIDGT applies the GT predicate on the "tool_execution_id" field.
func ToolExecutionIDGT(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGT(FieldToolExecutionID, v))
}

// ToolExecutionIDGTE applies the GTE predicate on the "tool_execution_id" field.
func ToolExecutionIDGTE(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGTE(FieldToolExecutionID, v))
}

// ToolExecutionIDLT applies the LT predicate on the "tool_execution_id" field.
func ToolExecutionIDLT(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLT(FieldToolExecutionID, v))
}

// ToolExecutionIDLTE applies the LTE predicate on the "tool_execution_id" field.
func ToolExecutionIDLTE(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLTE(FieldToolExecutionID, v))
}

// ToolExecutionIDContains applies the Contains predicate on the "tool_execution_id" field.
func ToolExecutionIDContains(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContains(FieldToolExecutionID, v))
}

// ToolExecutionIDHasPrefix applies the HasPrefix predicate on the "tool_execution_id" field.
func ToolExecutionIDHasPrefix(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldHasPrefix(FieldToolExecutionID, v))
}

// ToolExecutionIDHasSuffix applies the HasSuffix predicate on the "tool_execution_id" field.
func ToolExecutionIDHasSuffix(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldHasSuffix(FieldToolExecutionID, v))
}

// ToolExecutionIDEqualFold applies the EqualFold predicate on the "tool_execution_id" field.
func ToolExecutionIDEqualFold(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEqualFold(FieldToolExecutionID, v))
}

// ToolExecutionIDContainsFold applies the ContainsFold predicate on the "tool_execution_id" field.
func ToolExecutionIDContainsFold(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContainsFold(FieldToolExecutionID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContainsFold(FieldUserID, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContainsFold(FieldToolName, v))
}

// ArgsIsNil applies the IsNil predicate on the "args" field.
func ArgsIsNil() predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIsNull(FieldArgs))
}

// ArgsNotNil applies the NotNil predicate on the "args" field.
func ArgsNotNil() predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotNull(FieldArgs))
}

// DecisionTypeEQ applies the EQ predicate on the "decision_type" field.
func DecisionTypeEQ(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldDecisionType, v))
}

// DecisionTypeNEQ applies the NEQ predicate on the "decision_type" field.
func DecisionTypeNEQ(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNEQ(FieldDecisionType, v))
}

// DecisionTypeIn applies the In predicate on the "decision_type" field.
func DecisionTypeIn(vs ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIn(FieldDecisionType, vs...))
}

// DecisionTypeNotIn applies the NotIn predicate on the "decision_type" field.
func DecisionTypeNotIn(vs ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotIn(FieldDecisionType, vs...))
}

// DecisionTypeGT applies the GT predicate on the "decision_type" field.
func DecisionTypeGT(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGT(FieldDecisionType, v))
}

// DecisionTypeGTE applies the GTE predicate on the "decision_type" field.
func DecisionTypeGTE(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGTE(FieldDecisionType, v))
}

// DecisionTypeLT applies the LT predicate on the "decision_type" field.
func DecisionTypeLT(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLT(FieldDecisionType, v))
}

// DecisionTypeLTE applies the LTE predicate on the "decision_type" field.
func DecisionTypeLTE(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLTE(FieldDecisionType, v))
}

// DecisionTypeContains applies the Contains predicate on the "decision_type" field.
func DecisionTypeContains(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContains(FieldDecisionType, v))
}

// DecisionTypeHasPrefix applies the HasPrefix predicate on the "decision_type" field.
func DecisionTypeHasPrefix(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldHasPrefix(FieldDecisionType, v))
}

// DecisionTypeHasSuffix applies the HasSuffix predicate on the "decision_type" field.
func DecisionTypeHasSuffix(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldHasSuffix(FieldDecisionType, v))
}

// DecisionTypeEqualFold applies the EqualFold predicate on the "decision_type" field.
func DecisionTypeEqualFold(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEqualFold(FieldDecisionType, v))
}

// DecisionTypeContainsFold applies the ContainsFold predicate on the "decision_type" field.
func DecisionTypeContainsFold(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContainsFold(FieldDecisionType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotIn(FieldStatus, vs...))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContainsFold(FieldPrompt, v))
}

// RequiredPhraseEQ applies the EQ predicate on the "required_phrase" field.
func RequiredPhraseEQ(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldRequiredPhrase, v))
}

// RequiredPhraseNEQ applies the NEQ predicate on the "required_phrase" field.
func RequiredPhraseNEQ(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNEQ(FieldRequiredPhrase, v))
}

// RequiredPhraseIn applies the In predicate on the "required_phrase" field.
func RequiredPhraseIn(vs ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIn(FieldRequiredPhrase, vs...))
}

// RequiredPhraseNotIn applies the NotIn predicate on the "required_phrase" field.
func RequiredPhraseNotIn(vs ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotIn(FieldRequiredPhrase, vs...))
}

// RequiredPhraseGT applies the GT predicate on the "required_phrase" field.
func RequiredPhraseGT(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGT(FieldRequiredPhrase, v))
}

// RequiredPhraseGTE applies the GTE predicate on the "required_phrase" field.
func RequiredPhraseGTE(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGTE(FieldRequiredPhrase, v))
}

// RequiredPhraseLT applies the LT predicate on the "required_phrase" field.
func RequiredPhraseLT(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLT(FieldRequiredPhrase, v))
}

// RequiredPhraseLTE applies the LTE predicate on the "required_phrase" field.
func RequiredPhraseLTE(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLTE(FieldRequiredPhrase, v))
}

// RequiredPhraseContains applies the Contains predicate on the "required_phrase" field.
func RequiredPhraseContains(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContains(FieldRequiredPhrase, v))
}

// RequiredPhraseHasPrefix applies the HasPrefix predicate on the "required_phrase" field.
func RequiredPhraseHasPrefix(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldHasPrefix(FieldRequiredPhrase, v))
}

// RequiredPhraseHasSuffix applies the HasSuffix predicate on the "required_phrase" field.
func RequiredPhraseHasSuffix(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldHasSuffix(FieldRequiredPhrase, v))
}

// RequiredPhraseIsNil applies the IsNil predicate on the "required_phrase" field.
func RequiredPhraseIsNil() predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIsNull(FieldRequiredPhrase))
}

// RequiredPhraseNotNil applies the NotNil predicate on the "required_phrase" field.
func RequiredPhraseNotNil() predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotNull(FieldRequiredPhrase))
}

// RequiredPhraseEqualFold applies the EqualFold predicate on the "required_phrase" field.
func RequiredPhraseEqualFold(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEqualFold(FieldRequiredPhrase, v))
}

// RequiredPhraseContainsFold applies the ContainsFold predicate on the "required_phrase" field.
func RequiredPhraseContainsFold(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContainsFold(FieldRequiredPhrase, v))
}

// RiskScoreEQ applies the EQ predicate on the "risk_score" field.
func RiskScoreEQ(v int) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldRiskScore, v))
}

// RiskScoreNEQ applies the NEQ predicate on the "risk_score" field.
func RiskScoreNEQ(v int) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNEQ(FieldRiskScore, v))
}

// RiskScoreIn applies the In predicate on the "risk_score" field.
func RiskScoreIn(vs ...int) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIn(FieldRiskScore, vs...))
}

// RiskScoreNotIn applies the NotIn predicate on the "risk_score" field.
func RiskScoreNotIn(vs ...int) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotIn(FieldRiskScore, vs...))
}

// RiskScoreGT applies the GT predicate on the "risk_score" field.
func RiskScoreGT(v int) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGT(FieldRiskScore, v))
}

// RiskScoreGTE applies the GTE predicate on the "risk_score" field.
func RiskScoreGTE(v int) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGTE(FieldRiskScore, v))
}

// RiskScoreLT applies the LT predicate on the "risk_score" field.
func RiskScoreLT(v int) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLT(FieldRiskScore, v))
}

// RiskScoreLTE applies the LTE predicate on the "risk_score" field.
func RiskScoreLTE(v int) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLTE(FieldRiskScore, v))
}

// ReasonCodeEQ applies the EQ predicate on the "reason_code" field.
func ReasonCodeEQ(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldReasonCode, v))
}

// ReasonCodeNEQ applies the NEQ predicate on the "reason_code" field.
func ReasonCodeNEQ(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNEQ(FieldReasonCode, v))
}

// ReasonCodeIn applies the In predicate on the "reason_code" field.
func ReasonCodeIn(vs ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIn(FieldReasonCode, vs...))
}

// ReasonCodeNotIn applies the NotIn predicate on the "reason_code" field.
func ReasonCodeNotIn(vs ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotIn(FieldReasonCode, vs...))
}

// ReasonCodeGT applies the GT predicate on the "reason_code" field.
func ReasonCodeGT(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGT(FieldReasonCode, v))
}

// ReasonCodeGTE applies the GTE predicate on the "reason_code" field.
func ReasonCodeGTE(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGTE(FieldReasonCode, v))
}

// ReasonCodeLT applies the LT predicate on the "reason_code" field.
func ReasonCodeLT(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLT(FieldReasonCode, v))
}

// ReasonCodeLTE applies the LTE predicate on the "reason_code" field.
func ReasonCodeLTE(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLTE(FieldReasonCode, v))
}

// ReasonCodeContains applies the Contains predicate on the "reason_code" field.
func ReasonCodeContains(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContains(FieldReasonCode, v))
}

// ReasonCodeHasPrefix applies the HasPrefix predicate on the "reason_code" field.
func ReasonCodeHasPrefix(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldHasPrefix(FieldReasonCode, v))
}

// ReasonCodeHasSuffix applies the HasSuffix predicate on the "reason_code" field.
func ReasonCodeHasSuffix(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldHasSuffix(FieldReasonCode, v))
}

// ReasonCodeEqualFold applies the EqualFold predicate on the "reason_code" field.
func ReasonCodeEqualFold(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEqualFold(FieldReasonCode, v))
}

// ReasonCodeContainsFold applies the ContainsFold predicate on the "reason_code" field.
func ReasonCodeContainsFold(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContainsFold(FieldReasonCode, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLTE(FieldExpiresAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotNull(FieldResolvedAt))
}

// TraceIDEQ applies the EQ predicate on the "trace_id" field.
func TraceIDEQ(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldTraceID, v))
}

// TraceIDNEQ applies the NEQ predicate on the "trace_id" field.
func TraceIDNEQ(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNEQ(FieldTraceID, v))
}

// TraceIDIn applies the In predicate on the "trace_id" field.
func TraceIDIn(vs ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIn(FieldTraceID, vs...))
}

// TraceIDNotIn applies the NotIn predicate on the "trace_id" field.
func TraceIDNotIn(vs ...string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotIn(FieldTraceID, vs...))
}

// TraceIDGT applies the GT predicate on the "trace_id" field.
func TraceIDGT(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGT(FieldTraceID, v))
}

// TraceIDGTE applies the GTE predicate on the "trace_id" field.
func TraceIDGTE(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGTE(FieldTraceID, v))
}

// TraceIDLT applies the LT predicate on the "trace_id" field.
func TraceIDLT(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLT(FieldTraceID, v))
}

// TraceIDLTE applies the LTE predicate on the "trace_id" field.
func TraceIDLTE(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLTE(FieldTraceID, v))
}

// TraceIDContains applies the Contains predicate on the "trace_id" field.
func TraceIDContains(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContains(FieldTraceID, v))
}

// TraceIDHasPrefix applies the HasPrefix predicate on the "trace_id" field.
func TraceIDHasPrefix(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldHasPrefix(FieldTraceID, v))
}

// TraceIDHasSuffix applies the HasSuffix predicate on the "trace_id" field.
func TraceIDHasSuffix(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldHasSuffix(FieldTraceID, v))
}

// TraceIDIsNil applies the IsNil predicate on the "trace_id" field.
func TraceIDIsNil() predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIsNull(FieldTraceID))
}

// TraceIDNotNil applies the NotNil predicate on the "trace_id" field.
func TraceIDNotNil() predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotNull(FieldTraceID))
}

// TraceIDEqualFold applies the EqualFold predicate on the "trace_id" field.
func TraceIDEqualFold(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEqualFold(FieldTraceID, v))
}

// TraceIDContainsFold applies the ContainsFold predicate on the "trace_id" field.
func TraceIDContainsFold(v string) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldContainsFold(FieldTraceID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Confirmation {
	return predicate.Confirmation(sql.FieldLTE(FieldCreatedAt, v))
}

// HasExecution applies the HasEdge predicate on the "execution" edge.
func HasExecution() predicate.Confirmation {
	return predicate.Confirmation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionWith applies the HasEdge predicate on the "execution" edge with a given conditions (other predicates).
func HasExecutionWith(preds ...predicate.ToolExecution) predicate.Confirmation {
	return predicate.Confirmation(func(s *sql.Selector) {
		step := newExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Confirmation) predicate.Confirmation {
	return predicate.Confirmation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Confirmation) predicate.Confirmation {
	return predicate.Confirmation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Confirmation) predicate.Confirmation {
	return predicate.Confirmation(sql.NotPredicates(p))
}

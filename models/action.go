package models

// ActionType identifies one command in the closed action vocabulary the
// assistant is allowed to emit.
type ActionType string

const (
	// Contact actions
	ActionCreateContact        ActionType = "create_contact"
	ActionUpdateContact        ActionType = "update_contact"
	ActionDeleteContact        ActionType = "delete_contact"
	ActionBulkUpdateContacts   ActionType = "bulk_update_contacts"
	ActionBulkDeleteContacts   ActionType = "bulk_delete_contacts"
	ActionLinkContactToCompany ActionType = "link_contact_to_company"

	// Company actions
	ActionCreateCompany ActionType = "create_company"
	ActionUpdateCompany ActionType = "update_company"
	ActionDeleteCompany ActionType = "delete_company"

	// Email actions
	ActionSendEmail     ActionType = "send_email"
	ActionSendBulkEmail ActionType = "send_bulk_email"

	// Export and reporting actions
	ActionExportContacts  ActionType = "export_contacts"
	ActionExportCompanies ActionType = "export_companies"
	ActionAnalyzeContacts ActionType = "analyze_contacts"
	ActionGetContactStats ActionType = "get_contact_stats"

	// Pipeline actions
	ActionCreatePipeline     ActionType = "create_pipeline"
	ActionUpdatePipeline     ActionType = "update_pipeline"
	ActionDeletePipeline     ActionType = "delete_pipeline"
	ActionAddStage           ActionType = "add_stage"
	ActionUpdateStage        ActionType = "update_stage"
	ActionDeleteStage        ActionType = "delete_stage"
	ActionReorderStages      ActionType = "reorder_stages"
	ActionSetDefaultPipeline ActionType = "set_default_pipeline"

	// Opportunity actions
	ActionCreateOpportunity       ActionType = "create_opportunity"
	ActionUpdateOpportunity       ActionType = "update_opportunity"
	ActionMoveOpportunity         ActionType = "move_opportunity"
	ActionDeleteOpportunity       ActionType = "delete_opportunity"
	ActionBulkUpdateOpportunities ActionType = "bulk_update_opportunities"
	ActionBulkDeleteOpportunities ActionType = "bulk_delete_opportunities"
)

// AllActionTypes lists the full closed vocabulary
var AllActionTypes = []ActionType{
	ActionCreateContact,
	ActionUpdateContact,
	ActionDeleteContact,
	ActionBulkUpdateContacts,
	ActionBulkDeleteContacts,
	ActionLinkContactToCompany,
	ActionCreateCompany,
	ActionUpdateCompany,
	ActionDeleteCompany,
	ActionSendEmail,
	ActionSendBulkEmail,
	ActionExportContacts,
	ActionExportCompanies,
	ActionAnalyzeContacts,
	ActionGetContactStats,
	ActionCreatePipeline,
	ActionUpdatePipeline,
	ActionDeletePipeline,
	ActionAddStage,
	ActionUpdateStage,
	ActionDeleteStage,
	ActionReorderStages,
	ActionSetDefaultPipeline,
	ActionCreateOpportunity,
	ActionUpdateOpportunity,
	ActionMoveOpportunity,
	ActionDeleteOpportunity,
	ActionBulkUpdateOpportunities,
	ActionBulkDeleteOpportunities,
}

// destructiveActions is the set of action types that require a human
// confirmation before they are dispatched. Membership depends on the action
// type alone, never on parameter content.
var destructiveActions = map[ActionType]bool{
	ActionDeleteContact:           true,
	ActionBulkDeleteContacts:      true,
	ActionDeleteCompany:           true,
	ActionDeletePipeline:          true,
	ActionDeleteStage:             true,
	ActionDeleteOpportunity:       true,
	ActionBulkDeleteOpportunities: true,
}

// ActionRequiresConfirmation reports whether the given action type is
// destructive. This is advisory: the caller collecting the human's
// confirmation is responsible for enforcement, the executor never re-checks.
func ActionRequiresConfirmation(actionType ActionType) bool {
	return destructiveActions[actionType]
}

// IsKnownActionType reports whether the given type is part of the vocabulary
func IsKnownActionType(actionType ActionType) bool {
	for _, t := range AllActionTypes {
		if t == actionType {
			return true
		}
	}
	return false
}

// Params is the untyped parameter bag attached to a parsed command. Required
// keys are a function of the command type and are enforced by the validator
// before execution.
type Params map[string]any

// String returns the string value for key, or "" if absent or not a string
func (p Params) String(key string) string {
	value, ok := p[key].(string)
	if !ok {
		return ""
	}
	return value
}

// StringSlice returns the list of strings for key. JSON decoding produces
// []any, so both []string and []any with string members are accepted.
func (p Params) StringSlice(key string) []string {
	switch value := p[key].(type) {
	case []string:
		return value
	case []any:
		result := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	default:
		return nil
	}
}

// Float returns the numeric value for key and whether one was present.
// JSON numbers decode as float64; numeric strings are not accepted.
func (p Params) Float(key string) (float64, bool) {
	switch value := p[key].(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	default:
		return 0, false
	}
}

// Map returns the nested object for key, or nil if absent or not an object
func (p Params) Map(key string) map[string]any {
	value, ok := p[key].(map[string]any)
	if !ok {
		return nil
	}
	return value
}

// Has reports whether key is present at all
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Command is the parsed unit of work extracted from one block of assistant
// text. It is created once by the parser, immutable thereafter, and consumed
// exactly once by validation then execution.
type Command struct {
	Type                 ActionType `json:"type"`
	Params               Params     `json:"params"`
	RequiresConfirmation bool       `json:"requires_confirmation"`
	Description          string     `json:"description"`
}

// ValidationResult is the outcome of parameter validation for one command
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ActionResult is the uniform outcome of executing one command
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BulkItemOutcome is the per-target outcome of one call within a bulk action
type BulkItemOutcome struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// BulkOutcome aggregates a settled bulk action.
// SuccessCount + FailCount always equals the size of the input list.
type BulkOutcome struct {
	SuccessCount int               `json:"successCount"`
	FailCount    int               `json:"failCount"`
	Items        []BulkItemOutcome `json:"items"`
}

// ExportFile is the payload of an export action, served to the caller as a
// file download
type ExportFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}

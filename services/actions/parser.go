package actions

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"crmbackend/models"
)

// actionBlockRegex matches the first fenced block tagged "action" in a chunk
// of assistant output. Only the first block is considered; surrounding prose
// belongs to the chat surface.
var actionBlockRegex = regexp.MustCompile("(?s)```action\\s*\\n(.*?)```")

type actionBlock struct {
	Action string        `json:"action"`
	Params models.Params `json:"params"`
}

// ParseActionBlock extracts the first embedded ```action block from a chunk
// of assistant text and parses its JSON body into a Command.
//
// Returns (nil, nil) when the text contains no action block at all, and
// (nil, err) when a block is present but its body is not parseable - the two
// cases are deliberately distinguishable so the caller can treat "no command"
// differently from "malformed command". This function never panics.
func ParseActionBlock(text string) (*models.Command, error) {
	match := actionBlockRegex.FindStringSubmatch(text)
	if match == nil {
		return nil, nil
	}

	var block actionBlock
	if err := json.Unmarshal([]byte(match[1]), &block); err != nil {
		log.Printf("❌ Failed to parse action block: %v", err)
		return nil, fmt.Errorf("failed to parse action block: %w", err)
	}

	if strings.TrimSpace(block.Action) == "" {
		log.Printf("❌ Action block is missing an action name")
		return nil, fmt.Errorf("action block is missing an action name")
	}

	actionType := models.ActionType(strings.TrimSpace(block.Action))
	params := block.Params
	if params == nil {
		params = models.Params{}
	}

	command := &models.Command{
		Type:                 actionType,
		Params:               params,
		RequiresConfirmation: models.ActionRequiresConfirmation(actionType),
		Description:          DescribeCommand(actionType, params),
	}

	log.Printf("📋 Parsed action command: %s", command.Description)
	return command, nil
}

// DescribeCommand produces the one-line human readable rendering of a
// command. Unknown types fall back to a generic phrase.
func DescribeCommand(actionType models.ActionType, params models.Params) string {
	switch actionType {
	case models.ActionCreateContact:
		return fmt.Sprintf("Create contact %s",
			strings.TrimSpace(params.String("firstName")+" "+params.String("lastName")))
	case models.ActionUpdateContact:
		return fmt.Sprintf("Update contact %s", params.String("id"))
	case models.ActionDeleteContact:
		return fmt.Sprintf("Delete contact %s", params.String("id"))
	case models.ActionBulkUpdateContacts:
		return fmt.Sprintf("Update %s", countNoun(len(params.StringSlice("contactIds")), "contact"))
	case models.ActionBulkDeleteContacts:
		return fmt.Sprintf("Delete %s", countNoun(len(params.StringSlice("contactIds")), "contact"))
	case models.ActionLinkContactToCompany:
		return fmt.Sprintf("Link contact %s to company %s",
			params.String("contactId"), params.String("companyId"))
	case models.ActionCreateCompany:
		return fmt.Sprintf("Create company %s", params.String("name"))
	case models.ActionUpdateCompany:
		return fmt.Sprintf("Update company %s", params.String("id"))
	case models.ActionDeleteCompany:
		return fmt.Sprintf("Delete company %s", params.String("id"))
	case models.ActionSendEmail:
		return fmt.Sprintf("Send email to %s", params.String("to"))
	case models.ActionSendBulkEmail:
		return fmt.Sprintf("Send email to %s", countNoun(len(params.StringSlice("contactIds")), "contact"))
	case models.ActionExportContacts:
		return "Export contacts to CSV"
	case models.ActionExportCompanies:
		return "Export companies to CSV"
	case models.ActionAnalyzeContacts:
		return "Analyze contacts"
	case models.ActionGetContactStats:
		return "Compute contact statistics"
	case models.ActionCreatePipeline:
		return fmt.Sprintf("Create pipeline %s with %s",
			params.String("name"), countNoun(stageDefinitionCount(params), "stage"))
	case models.ActionUpdatePipeline:
		return fmt.Sprintf("Update pipeline %s", params.String("pipelineId"))
	case models.ActionDeletePipeline:
		return fmt.Sprintf("Delete pipeline %s", params.String("pipelineId"))
	case models.ActionAddStage:
		return fmt.Sprintf("Add stage %s to pipeline %s",
			params.String("stageName"), params.String("pipelineId"))
	case models.ActionUpdateStage:
		return fmt.Sprintf("Update stage %s in pipeline %s",
			params.String("stageId"), params.String("pipelineId"))
	case models.ActionDeleteStage:
		return fmt.Sprintf("Delete stage %s from pipeline %s",
			params.String("stageId"), params.String("pipelineId"))
	case models.ActionReorderStages:
		return fmt.Sprintf("Reorder %s in pipeline %s",
			countNoun(len(params.StringSlice("stageIds")), "stage"), params.String("pipelineId"))
	case models.ActionSetDefaultPipeline:
		return fmt.Sprintf("Set default pipeline to %s", params.String("pipelineId"))
	case models.ActionCreateOpportunity:
		return fmt.Sprintf("Create opportunity %s", params.String("title"))
	case models.ActionUpdateOpportunity:
		return fmt.Sprintf("Update opportunity %s", params.String("id"))
	case models.ActionMoveOpportunity:
		return fmt.Sprintf("Move opportunity %s to stage %s",
			params.String("id"), params.String("stageId"))
	case models.ActionDeleteOpportunity:
		return fmt.Sprintf("Delete opportunity %s", params.String("id"))
	case models.ActionBulkUpdateOpportunities:
		return fmt.Sprintf("Update %s", countNoun(len(params.StringSlice("opportunityIds")), "opportunity"))
	case models.ActionBulkDeleteOpportunities:
		return fmt.Sprintf("Delete %s", countNoun(len(params.StringSlice("opportunityIds")), "opportunity"))
	default:
		return "Execute: " + strings.ReplaceAll(string(actionType), "_", " ")
	}
}

// stageDefinitionCount counts the stage definitions of a create_pipeline
// command without requiring a particular element shape
func stageDefinitionCount(params models.Params) int {
	if list, ok := params["stages"].([]any); ok {
		return len(list)
	}
	return len(params.StringSlice("stages"))
}

// countNoun renders "3 contacts" / "1 contact" / "2 opportunities"
func countNoun(count int, noun string) string {
	return fmt.Sprintf("%d %s", count, pluralize(noun, count))
}

func pluralize(noun string, count int) string {
	if count == 1 {
		return noun
	}
	if strings.HasSuffix(noun, "y") {
		return strings.TrimSuffix(noun, "y") + "ies"
	}
	return noun + "s"
}

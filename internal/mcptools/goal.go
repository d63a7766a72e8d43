package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"questlog/internal/goal"
)

// ─── GoalListTool ───────────────────────────────────────────────────────────

// GoalListTool handles the goal_list MCP tool.
type GoalListTool struct {
	uc goal.UseCase
}

func NewGoalListTool(uc goal.UseCase) *GoalListTool {
	return &GoalListTool{uc: uc}
}

func (t *GoalListTool) Definition() mcp.Tool {
	return mcp.NewTool("goal_list",
		mcp.WithDescription("List goals with their progress, mode and subtasks."),
	)
}

func (t *GoalListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := t.uc.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list goals: %v", err)), nil
	}
	if len(out.Goals) == 0 {
		return mcp.NewToolResultText("No goals tracked."), nil
	}

	var b strings.Builder
	for _, v := range out.Goals {
		formatGoal(&b, v.Goal, v.Pending)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// ─── ToggleSubtaskTool ──────────────────────────────────────────────────────

// ToggleSubtaskTool handles the goal_toggle_subtask MCP tool.
type ToggleSubtaskTool struct {
	uc goal.UseCase
}

func NewToggleSubtaskTool(uc goal.UseCase) *ToggleSubtaskTool {
	return &ToggleSubtaskTool{uc: uc}
}

func (t *ToggleSubtaskTool) Definition() mcp.Tool {
	return mcp.NewTool("goal_toggle_subtask",
		mcp.WithDescription(
			"Flip a subtask between done and not done. In AUTOMATIC mode the goal's progress "+
				"is recomputed from its subtasks.",
		),
		mcp.WithString("goal_id", mcp.Required(), mcp.Description("Goal ID")),
		mcp.WithString("subtask_id", mcp.Required(), mcp.Description("Subtask ID")),
	)
}

func (t *ToggleSubtaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goalID := req.GetString("goal_id", "")
	subtaskID := req.GetString("subtask_id", "")
	if goalID == "" || subtaskID == "" {
		return mcp.NewToolResultError("'goal_id' and 'subtask_id' are required"), nil
	}

	out, err := t.uc.ToggleSubtask(ctx, goal.ToggleSubtaskInput{GoalID: goalID, SubtaskID: subtaskID})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to toggle subtask: %v", err)), nil
	}
	return goalOutcome(out), nil
}

// ─── SetProgressTool ────────────────────────────────────────────────────────

// SetProgressTool handles the goal_set_progress MCP tool.
type SetProgressTool struct {
	uc goal.UseCase
}

func NewSetProgressTool(uc goal.UseCase) *SetProgressTool {
	return &SetProgressTool{uc: uc}
}

func (t *SetProgressTool) Definition() mcp.Tool {
	return mcp.NewTool("goal_set_progress",
		mcp.WithDescription(
			"Set a goal's progress by hand. This switches the goal to MANUAL mode, where "+
				"subtask changes no longer move progress until goal_toggle_mode is called.",
		),
		mcp.WithString("goal_id", mcp.Required(), mcp.Description("Goal ID")),
		mcp.WithNumber("progress", mcp.Required(), mcp.Description("Progress percentage, 0 to 100")),
	)
}

func (t *SetProgressTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goalID := req.GetString("goal_id", "")
	if goalID == "" {
		return mcp.NewToolResultError("'goal_id' is required"), nil
	}
	progress, ok := intArg(req, "progress")
	if !ok {
		return mcp.NewToolResultError("'progress' must be a whole number from 0 to 100"), nil
	}

	out, err := t.uc.SetManualProgress(ctx, goal.SetProgressInput{GoalID: goalID, Progress: progress})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to set progress: %v", err)), nil
	}
	return goalOutcome(out), nil
}

// ─── ToggleModeTool ─────────────────────────────────────────────────────────

// ToggleModeTool handles the goal_toggle_mode MCP tool.
type ToggleModeTool struct {
	uc goal.UseCase
}

func NewToggleModeTool(uc goal.UseCase) *ToggleModeTool {
	return &ToggleModeTool{uc: uc}
}

func (t *ToggleModeTool) Definition() mcp.Tool {
	return mcp.NewTool("goal_toggle_mode",
		mcp.WithDescription(
			"Switch a goal between AUTOMATIC and MANUAL progress. Switching to AUTOMATIC "+
				"recomputes progress from the subtasks immediately.",
		),
		mcp.WithString("goal_id", mcp.Required(), mcp.Description("Goal ID")),
	)
}

func (t *ToggleModeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goalID := req.GetString("goal_id", "")
	if goalID == "" {
		return mcp.NewToolResultError("'goal_id' is required"), nil
	}

	out, err := t.uc.ToggleMode(ctx, goalID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to toggle mode: %v", err)), nil
	}
	return goalOutcome(out), nil
}

func goalOutcome(out goal.MutationOutput) *mcp.CallToolResult {
	var b strings.Builder
	formatGoal(&b, out.Goal.Goal, out.Goal.Pending)
	return outcomeResult(out.Outcome, b.String())
}

package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"questlog/internal/habit"
)

// HabitListTool handles the habit_list MCP tool.
type HabitListTool struct {
	uc habit.UseCase
}

func NewHabitListTool(uc habit.UseCase) *HabitListTool {
	return &HabitListTool{uc: uc}
}

func (t *HabitListTool) Definition() mcp.Tool {
	return mcp.NewTool("habit_list",
		mcp.WithDescription("List habits with their completion state and reset policy."),
	)
}

func (t *HabitListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := t.uc.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list habits: %v", err)), nil
	}
	if len(out.Habits) == 0 {
		return mcp.NewToolResultText("No habits tracked."), nil
	}

	var b strings.Builder
	for _, v := range out.Habits {
		formatHabit(&b, v.Habit, v.Pending)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// HabitToggleTool handles the habit_toggle MCP tool.
type HabitToggleTool struct {
	uc habit.UseCase
}

func NewHabitToggleTool(uc habit.UseCase) *HabitToggleTool {
	return &HabitToggleTool{uc: uc}
}

func (t *HabitToggleTool) Definition() mcp.Tool {
	return mcp.NewTool("habit_toggle",
		mcp.WithDescription(
			"Mark a habit done or not done. Completed habits with a reset policy clear "+
				"themselves at the configured time.",
		),
		mcp.WithString("habit_id", mcp.Required(), mcp.Description("Habit ID")),
	)
}

func (t *HabitToggleTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("habit_id", "")
	if id == "" {
		return mcp.NewToolResultError("'habit_id' is required"), nil
	}

	out, err := t.uc.ToggleCompletion(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to toggle habit: %v", err)), nil
	}

	var b strings.Builder
	formatHabit(&b, out.Habit.Habit, out.Habit.Pending)
	return outcomeResult(out.Outcome, b.String()), nil
}

// Package mcptools exposes the goal and habit entry points as MCP tools.
//
// Each tool is a struct holding its use case, with Definition() returning
// the mcp.Tool schema and Handle() serving the call. Domain failures come
// back as tool errors, never as Go errors, so the agent can read them.
package mcptools

import (
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"questlog/internal/model"
	"questlog/internal/mutation"
)

// intArg extracts a whole-number argument. JSON numbers arrive as float64;
// fractional values are refused.
func intArg(req mcp.CallToolRequest, key string) (int, bool) {
	v, ok := req.GetArguments()[key].(float64)
	if !ok || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

func formatGoal(b *strings.Builder, g model.Goal, pending int) {
	fmt.Fprintf(b, "Goal %s: %s\n", g.ID, g.Title)
	fmt.Fprintf(b, "  progress: %d%% (%s)\n", g.Progress, g.EffectiveMode())
	if !g.TargetDate.IsZero() {
		fmt.Fprintf(b, "  target: %s\n", g.TargetDate.Format("2006-01-02"))
	}
	for _, st := range g.Subtasks {
		mark := " "
		if st.Completed {
			mark = "x"
		}
		fmt.Fprintf(b, "  [%s] %s %s\n", mark, st.ID, st.Title)
	}
	if pending > 0 {
		fmt.Fprintf(b, "  pending writes: %d\n", pending)
	}
}

func formatHabit(b *strings.Builder, h model.Habit, pending int) {
	mark := " "
	if h.Completed {
		mark = "x"
	}
	fmt.Fprintf(b, "[%s] Habit %s: %s", mark, h.ID, h.Name)
	if h.ResetPolicy.Actionable() {
		fmt.Fprintf(b, " (resets %s at %s)", strings.ToLower(string(h.ResetPolicy.Option)), h.ResetPolicy.TimeOfDay)
	}
	if h.Completed && h.CompletedAt != nil {
		fmt.Fprintf(b, " completed %s", h.CompletedAt.Format("2006-01-02 15:04"))
	}
	if pending > 0 {
		fmt.Fprintf(b, " pending writes: %d", pending)
	}
	b.WriteString("\n")
}

// outcomeResult reports a rollback as a tool error carrying the restored state.
func outcomeResult(o mutation.Outcome, state string) *mcp.CallToolResult {
	if o.Committed() {
		return mcp.NewToolResultText("Saved.\n" + state)
	}
	return mcp.NewToolResultError(fmt.Sprintf("Change was reverted: %v\n%s", o.Reason, state))
}

package mcptools

import (
	"github.com/mark3labs/mcp-go/server"

	"questlog/internal/goal"
	"questlog/internal/habit"
	"questlog/internal/notify"
)

// Version is set at build time via ldflags.
var Version = "dev"

// NewServer creates the MCP server with every tool registered.
func NewServer(goals goal.UseCase, habits habit.UseCase, feed notify.UseCase) *server.MCPServer {
	s := server.NewMCPServer(
		"questlog",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	goalList := NewGoalListTool(goals)
	s.AddTool(goalList.Definition(), goalList.Handle)

	toggleSubtask := NewToggleSubtaskTool(goals)
	s.AddTool(toggleSubtask.Definition(), toggleSubtask.Handle)

	setProgress := NewSetProgressTool(goals)
	s.AddTool(setProgress.Definition(), setProgress.Handle)

	toggleMode := NewToggleModeTool(goals)
	s.AddTool(toggleMode.Definition(), toggleMode.Handle)

	habitList := NewHabitListTool(habits)
	s.AddTool(habitList.Definition(), habitList.Handle)

	habitToggle := NewHabitToggleTool(habits)
	s.AddTool(habitToggle.Definition(), habitToggle.Handle)

	notifications := NewNotificationsTool(feed)
	s.AddTool(notifications.Definition(), notifications.Handle)

	return s
}

const instructions = `questlog tracks goals with subtasks and recurring habits.
Changes apply immediately and are saved to the sync service in the background.
If the service rejects a change it is reverted and reported as a tool error.
Call goal_list or habit_list first to find IDs.`

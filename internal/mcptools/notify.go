package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"questlog/internal/notify"
)

// NotificationsTool handles the notifications_list MCP tool.
type NotificationsTool struct {
	uc notify.UseCase
}

func NewNotificationsTool(uc notify.UseCase) *NotificationsTool {
	return &NotificationsTool{uc: uc}
}

func (t *NotificationsTool) Definition() mcp.Tool {
	return mcp.NewTool("notifications_list",
		mcp.WithDescription("List recent notifications, newest first, including reverted changes."),
	)
}

func (t *NotificationsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out := t.uc.List(ctx)
	if len(out.Notifications) == 0 {
		return mcp.NewToolResultText("No notifications."), nil
	}

	var b strings.Builder
	for _, n := range out.Notifications {
		fmt.Fprintf(&b, "%s [%s] %s\n", n.CreatedAt.Format("15:04:05"), n.Level, n.Message)
	}
	return mcp.NewToolResultText(b.String()), nil
}

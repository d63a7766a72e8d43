package http

import (
	"questlog/internal/notify"
	"questlog/pkg/response"
)

type notificationResp struct {
	ID        string            `json:"id"`
	Level     string            `json:"level"`
	Entity    string            `json:"entity,omitempty"`
	Kind      string            `json:"kind,omitempty"`
	Message   string            `json:"message"`
	CreatedAt response.DateTime `json:"created_at"`
}

type listResp struct {
	Notifications []notificationResp `json:"notifications"`
}

func (h *handler) newListResp(out notify.ListOutput) listResp {
	items := make([]notificationResp, len(out.Notifications))
	for i, n := range out.Notifications {
		items[i] = notificationResp{
			ID:        n.ID,
			Level:     string(n.Level),
			Entity:    n.Entity,
			Kind:      n.Kind,
			Message:   n.Message,
			CreatedAt: response.DateTime(n.CreatedAt),
		}
	}
	return listResp{Notifications: items}
}

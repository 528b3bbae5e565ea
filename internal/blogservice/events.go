package blogservice

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/sushihentaime/blogist/internal/common"
)

// Event is the message published after a blog change is committed. Blog
// carries the stored post for created and updated events; deleted events
// only name the ID.
type Event struct {
	Event string `json:"event"`
	ID    int64  `json:"id"`
	Blog  *Blog  `json:"blog,omitempty"`
}

// publish is best effort: the change is already committed, so a broker
// failure is logged and swallowed.
func (s *BlogService) publish(ctx context.Context, key common.BindingKey, id int64, blog *Blog) {
	if s.mb == nil {
		return
	}

	msg, err := json.Marshal(Event{Event: string(key), ID: id, Blog: blog})
	if err != nil {
		s.logger.Error("could not marshal blog event", slog.String("error", err.Error()))
		return
	}

	err = s.mb.Publish(ctx, msg, key, common.BlogExchange)
	if err != nil {
		s.logger.Error("could not publish blog event", slog.String("event", string(key)), slog.Int64("id", id), slog.String("error", err.Error()))
	}
}

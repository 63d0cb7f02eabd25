// Package notify fans review-workflow events out to interested users.
// Delivery channels (email, in-app) plug in behind the same surface; the
// log notifier is the default sink.
package notify

import (
	"context"
	"log/slog"

	"github.com/glosshub/glossary-backend/internal/domain"
)

// LogNotifier records draft events to the structured log.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{log: logger.With("component", "notifier")}
}

// DraftChanged logs the event with its recipients. Never fails; a lost
// notification must not fail the mutation that produced it.
func (n *LogNotifier) DraftChanged(ctx context.Context, event domain.DraftEvent) {
	recipients := make([]string, len(event.RecipientIDs))
	for i, id := range event.RecipientIDs {
		recipients[i] = id.String()
	}

	n.log.InfoContext(ctx, "draft event",
		slog.String("action", string(event.Action)),
		slog.String("draft_id", event.DraftID.String()),
		slog.String("entry_id", event.EntryID.String()),
		slog.String("actor_id", event.ActorID.String()),
		slog.Any("recipients", recipients),
	)
}

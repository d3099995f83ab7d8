package bot

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"outlaw/events"
)

// subscribeNotifications delivers NotificationEvents as direct
// messages. Delivery is best-effort: a closed DM or a missing user is
// logged and dropped, never retried.
func (b *Bot) subscribeNotifications() {
	b.eventBus.Subscribe(events.EventTypeNotification, func(ctx context.Context, event events.Event) {
		notification, ok := event.(events.NotificationEvent)
		if !ok {
			return
		}

		if err := b.sendDirectMessage(notification.RecipientID, notification.Message); err != nil {
			log.WithFields(log.Fields{
				"recipientID": notification.RecipientID,
				"error":       err,
			}).Warn("Failed to deliver notification")
		}
	})
}

func (b *Bot) sendDirectMessage(userID int64, message string) error {
	channel, err := b.session.UserChannelCreate(fmt.Sprintf("%d", userID))
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	if _, err := b.session.ChannelMessageSend(channel.ID, message); err != nil {
		return fmt.Errorf("failed to send DM: %w", err)
	}

	return nil
}

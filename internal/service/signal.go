package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	workmesh "github.com/workmesh/metadata-indexer"
)

// SignalService fans indexed-document events out over redis pub/sub. Each
// category gets its own channel so consumers can subscribe selectively.
type SignalService struct {
	rdb *redis.Client
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb: redisClient,
	}
}

func channelFor(category workmesh.Category) string {
	return "indexed:" + string(category)
}

// channelsFor maps category names to their pub/sub channels, dropping names
// that are not categories.
func channelsFor(ctx context.Context, names []string) []string {
	channels := make([]string, 0, len(names))
	for _, name := range names {
		category, ok := workmesh.ParseCategory(name)
		if !ok {
			slog.InfoContext(
				ctx, "ignoring unknown category",
				slog.String("category", name),
				slog.String("module", "signal"),
			)
			continue
		}
		channels = append(channels, channelFor(category))
	}
	return channels
}

func (s *SignalService) Publish(ctx context.Context, event workmesh.Event) error {

	jsonstr, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = s.rdb.Publish(ctx, channelFor(event.Category), jsonstr).Err()
	if err != nil {
		return err
	}

	return nil
}

// Realtime streams events for the requested categories to output until ctx is
// done. Each message on input replaces the current subscription set; unknown
// category names are ignored.
func (s *SignalService) Realtime(ctx context.Context, input chan []string, output chan workmesh.Event) {

	pubsub := s.rdb.Subscribe(ctx)
	defer pubsub.Close()

	messages := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return
		case categories, ok := <-input:
			if !ok {
				return
			}

			channels := channelsFor(ctx, categories)

			err := pubsub.Unsubscribe(ctx)
			if err != nil {
				slog.ErrorContext(
					ctx, "failed to unsubscribe",
					slog.String("error", err.Error()),
					slog.String("module", "signal"),
				)
				return
			}
			if len(channels) > 0 {
				err = pubsub.Subscribe(ctx, channels...)
				if err != nil {
					slog.ErrorContext(
						ctx, "failed to subscribe",
						slog.String("error", err.Error()),
						slog.String("module", "signal"),
					)
					return
				}
			}
		case msg, ok := <-messages:
			if !ok {
				return
			}

			var event workmesh.Event
			err := json.Unmarshal([]byte(msg.Payload), &event)
			if err != nil {
				slog.ErrorContext(
					ctx, "failed to decode event",
					slog.String("error", err.Error()),
					slog.String("module", "signal"),
				)
				continue
			}

			select {
			case output <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}

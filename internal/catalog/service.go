package catalog

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"shopfront/internal/eventbus"
)

const submitTimeout = 5 * time.Second

// Service persists comments submitted through the event bus
type Service struct {
	store *Store
	bus   eventbus.EventBus
	log   *zap.Logger
	unsub func()
}

// NewService subscribes the store to CommentSubmitted events
func NewService(store *Store, bus eventbus.EventBus, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		store: store,
		bus:   bus,
		log:   logger.Named("catalog-service"),
	}
	s.unsub = bus.Subscribe(eventbus.EventCommentSubmitted, s.handleCommentSubmitted)
	return s
}

// Close stops listening for submissions
func (s *Service) Close() {
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
}

func (s *Service) handleCommentSubmitted(e eventbus.DomainEvent) {
	event, ok := e.(eventbus.CommentSubmittedEvent)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()

	c, err := s.store.AddComment(ctx, event.ProductID, event.Username, event.Text, event.Rating)
	if err != nil {
		s.log.Warn("comment rejected", zap.String("product", event.ProductID), zap.Error(err))
		s.bus.Publish(eventbus.ErrorEvent{Message: commentErrorMessage(err), Err: err})
		return
	}
	s.bus.Publish(eventbus.CommentAddedEvent{Comment: c})
}

func commentErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmptyComment):
		return "Comment cannot be empty"
	case errors.Is(err, ErrInvalidRating):
		return "Please choose a rating"
	case errors.Is(err, ErrProductNotFound):
		return "Product no longer exists"
	}
	return "Could not save comment"
}

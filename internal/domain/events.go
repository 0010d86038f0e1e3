package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventError            EventType = "Error"
	EventCommentSubmitted EventType = "CommentSubmitted"
	EventCommentAdded     EventType = "CommentAdded"
	EventLoggedIn         EventType = "LoggedIn"
	EventLoggedOut        EventType = "LoggedOut"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventCatalogReady     EventType = "CatalogReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ErrorEvent is emitted when a background operation fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// CommentSubmittedEvent is emitted when the comment form is submitted
type CommentSubmittedEvent struct {
	ProductID string
	Username  string
	Text      string
	Rating    float64
}

func (e CommentSubmittedEvent) Type() EventType { return EventCommentSubmitted }

// CommentAddedEvent is emitted once a submitted comment has been stored
type CommentAddedEvent struct {
	Comment Comment
}

func (e CommentAddedEvent) Type() EventType { return EventCommentAdded }

// LoggedInEvent is emitted after a successful login
type LoggedInEvent struct {
	User User
}

func (e LoggedInEvent) Type() EventType { return EventLoggedIn }

// LoggedOutEvent is emitted after the session has been cleared
type LoggedOutEvent struct {
	Username string
}

func (e LoggedOutEvent) Type() EventType { return EventLoggedOut }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	Created bool // true when the file did not exist and defaults were written
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// CatalogReadyEvent is emitted when the product store has been opened and seeded
type CatalogReadyEvent struct {
	Products []Product
	Seeded   bool
}

func (e CatalogReadyEvent) Type() EventType { return EventCatalogReady }

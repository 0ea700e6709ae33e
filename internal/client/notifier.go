package client

// NotificationKind distinguishes success from failure notices
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationFailure NotificationKind = "failure"
)

// Notification is a transient message for the user
type Notification struct {
	Kind    NotificationKind
	Message string
}

// Notifier shows notifications to the user. Each Submit emits at most one.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

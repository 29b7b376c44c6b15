package signin

import "time"

// DefaultNotificationTTL is how long a notification stays visible.
const DefaultNotificationTTL = 4 * time.Second

type Kind uint8

const (
	KindSuccess Kind = iota
	KindFailure
)

func (k Kind) String() string {
	if k == KindFailure {
		return "failure"
	}
	return "success"
}

type Notification struct {
	Kind    Kind
	Message string
	TTL     time.Duration
}

func Success(msg string) Notification {
	return Notification{Kind: KindSuccess, Message: msg, TTL: DefaultNotificationTTL}
}

func Failure(msg string) Notification {
	return Notification{Kind: KindFailure, Message: msg, TTL: DefaultNotificationTTL}
}

// Notifier is the transient message surface of the screen.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

package ports

// NotificationKind tells a presenter how to style a notification
type NotificationKind int

const (
	NotificationSuccess NotificationKind = iota
	NotificationError
)

func (k NotificationKind) String() string {
	switch k {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	default:
		return "unknown"
	}
}

// Notification is a short user-facing message about an action's outcome
type Notification struct {
	Kind        NotificationKind
	Title       string
	Description string
}

// Notifier surfaces action outcomes to whoever presents them (toast, CLI, MCP)
type Notifier interface {
	Notify(n Notification)
}

package service

// Event identifies which state changed in a successful mutation. View code
// subscribes to refresh whatever it renders from that state.
type Event string

const (
	EventParticipantsChanged Event = "participants"
	EventFinancesChanged     Event = "finances"
	EventSettingsChanged     Event = "settings"
)

// Listener receives change notifications after successful mutations.
type Listener func(Event)

// Notifier is the registry of view listeners. Mutations notify it after a
// successful persist; zero registered listeners is valid and Notify is then
// a no-op. Failed mutations never notify.
type Notifier struct {
	listeners []Listener
}

// Register adds a listener.
func (n *Notifier) Register(l Listener) {
	n.listeners = append(n.listeners, l)
}

// Notify delivers e to every registered listener in registration order.
func (n *Notifier) Notify(e Event) {
	for _, l := range n.listeners {
		l(e)
	}
}

package equalheight

import "slices"

// Notification is broadcast after recomputes. It is informational only.
type Notification struct {
	ID       string
	Elements []Target
}

type subscriber struct {
	id uint64
	fn func(Notification)
}

// Subscribe registers fn to receive a notification after every flush in
// which the target table was recomputed. Several recomputes within one
// flush produce one notification carrying the final table.
func (s *Scope) Subscribe(fn func(Notification)) Unbind {
	id := globalBindingID.Add(1)
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		s.subscribers = slices.DeleteFunc(s.subscribers, func(sub subscriber) bool { return sub.id == id })
	}
}

func (s *Scope) deliverNotifications() {
	if !s.notifyPending {
		return
	}
	s.notifyPending = false
	n := Notification{ID: s.id, Elements: s.Targets()}
	for _, sub := range slices.Clone(s.subscribers) {
		sub.fn(n)
	}
}

package events

// Publisher is what the card service needs from an event sink.
// Publishing happens after commit, so a failure here never undoes a write.
type Publisher interface {
	Publish(event Event) error
}

// Compile-time verification that *Bus implements Publisher
var _ Publisher = (*Bus)(nil)

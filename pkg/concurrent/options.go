package concurrent

// settings holds construction-time configuration shared by the
// fine-policy container family (List, Queue, Stack).
type settings struct {
	fineGrained bool
}

// Option configures a container at construction time.
type Option func(*settings)

// WithFineGrained makes multi-item operations emit one Add event per item
// instead of a single Reset.
func WithFineGrained() Option {
	return func(s *settings) {
		s.fineGrained = true
	}
}

func applyOptions(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

package aria

// Option configures a Composer.
type Option func(*Composer)

// WithLivePolicy replaces the politeness table. Nil keeps the default.
func WithLivePolicy(policy LivePolicy) Option {
	return func(c *Composer) {
		if policy != nil {
			c.live = policy.Clone()
		}
	}
}

// WithLiveOverrides layers entries over the current politeness table.
func WithLiveOverrides(overrides LivePolicy) Option {
	return func(c *Composer) {
		c.live = c.live.Merge(overrides)
	}
}

// Composer builds descriptor sets. It never changes after NewComposer
// returns, so one value can serve concurrent renders.
type Composer struct {
	live LivePolicy
}

// NewComposer returns a Composer using DefaultLivePolicy unless overridden.
func NewComposer(options ...Option) *Composer {
	c := &Composer{live: DefaultLivePolicy()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// LivePolicy returns a copy of the composer's politeness table.
func (c *Composer) LivePolicy() LivePolicy {
	return c.live.Clone()
}

var defaultComposer = NewComposer()

// ComposeField builds single field descriptors with the default composer.
func ComposeField(fieldID string, state FieldState) FieldData {
	return defaultComposer.Field(fieldID, state)
}

// ComposeGroup builds field group descriptors with the default composer.
func ComposeGroup(fieldID string, state GroupState) GroupData {
	return defaultComposer.Group(fieldID, state)
}

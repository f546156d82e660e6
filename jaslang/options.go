package jaslang

const DefaultMaxCallDepth = 1000

// Options carries interpreter limits, typically decoded from the host
// config. The zero value means defaults.
type Options struct {
	MaxCallDepth int `json:"maxCallDepth"`
}

func (o Options) withDefaults() Options {
	if o.MaxCallDepth <= 0 {
		o.MaxCallDepth = DefaultMaxCallDepth
	}
	return o
}

package service

// Option defines a function type for configuring a document service.
type Option func(*Config)

// WithAddress sets the listen address.
func WithAddress(addr string) Option {
	return func(cfg *Config) {
		cfg.Address = addr
	}
}

// WithMaxBodyBytes limits the size of PUT request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(cfg *Config) {
		cfg.MaxBodyBytes = n
	}
}

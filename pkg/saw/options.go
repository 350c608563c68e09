package saw

// Option configures an Engine.
type Option func(*Engine)

// WithNormalizeWeights controls whether weights are rescaled to sum to 1
// before aggregation. Enabled by default.
func WithNormalizeWeights(enabled bool) Option {
	return func(e *Engine) {
		e.normalizeWeights = enabled
	}
}

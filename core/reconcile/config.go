package reconcile

import "time"

// Config holds configuration for report computation.
type Config struct {
	// JoinScope selects the purchase join (branch, all).
	JoinScope string `mapstructure:"join_scope" default:"branch"`
	// SessionTTLMinutes is how long an idle session keeps its uploads.
	SessionTTLMinutes int `mapstructure:"session_ttl_minutes" default:"120"`
}

// Options converts the configuration into engine options.
func (c Config) Options() (Options, error) {
	scope, err := ParseJoinScope(c.JoinScope)
	if err != nil {
		return Options{}, err
	}
	return Options{Scope: scope}, nil
}

// SessionTTL returns the idle timeout of a session. Zero disables eviction.
func (c Config) SessionTTL() time.Duration {
	if c.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

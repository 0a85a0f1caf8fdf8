package portalsim

import "time"

const (
	// DefaultAddr mirrors the campus gateway port.
	DefaultAddr = "localhost:8090"

	// DefaultUsername and DefaultPassword are the credential pair the
	// simulator accepts unless overridden by flags.
	DefaultUsername = "081bel052"
	DefaultPassword = "campus-secret"
)

// Config selects the simulator's behaviour. Everything comes from
// command-line flags; the simulator deliberately shares nothing with the
// client's configuration so the two processes cannot accidentally agree.
type Config struct {
	// Addr is the listen address, e.g. "localhost:8090".
	Addr string

	// Username and Password form the single accepted credential pair.
	Username string
	Password string

	// ResponseDelay is an artificial delay applied before every response,
	// used to exercise client-side timeouts.
	ResponseDelay time.Duration

	// FailStatus, when non-zero, makes every login answer with that bare
	// HTTP status instead of the portal protocol. Simulates a broken
	// gateway for server-error classification tests.
	FailStatus int
}

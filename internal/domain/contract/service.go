package contract

// DisconnectService is the surface the interaction handler consumes
type DisconnectService interface {
	// Register parses both times, infers the user's UTC offset and stores the
	// schedule, replacing any previous one. Returns the confirmation text.
	Register(userID, target, currentLocal string) (string, error)

	// TimeLeft returns whole minutes until the user's disconnect instant,
	// plus the local-time string they registered with
	TimeLeft(userID string) (int, string, error)
}

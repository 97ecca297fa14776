package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by both binaries. Role-specific requirements (such as
// the server's token sign key) are enforced by the client/server views.
func (cfg *StructuredConfig) validate() error {
	return nil
}

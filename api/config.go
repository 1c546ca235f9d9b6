package api

import "github.com/danielgtaylor/huma/v2"

// newConfig builds the shared Huma config. The default schema-link hook is
// dropped: it would inject a $schema field into every object response body,
// and clients depend on bodies carrying only their documented fields.
func newConfig(title, version string) huma.Config {
	config := huma.DefaultConfig(title, version)
	config.CreateHooks = nil
	return config
}

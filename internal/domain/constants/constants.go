// Package constants holds values shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Webhook batch hand-off providers.
const (
	PubSubProviderInline = "inline"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Header names.
const (
	HeaderLineSignature = "X-Line-Signature"
	HeaderLineRequestID = "X-Line-Request-Id"
	HeaderRequestID     = "X-Request-ID"
)

// Capabilities checked by the delivery layer and chat commands.
const (
	CapabilityManageOptions = "manage_options"
	CapabilityViewReports   = "view_reports"
)

// Package constants holds values shared across layers.
package constants

const (
	// EnvDevelop is the env name used for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal posts events straight to a local worker endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// NamePlaceholder is substituted with the recipient's display name in broadcast bodies.
	NamePlaceholder = "{name}"

	// DefaultBroadcastBody is used when a broadcast is sent without a body template.
	DefaultBroadcastBody = "Hi {name}, tap to check out our new deals!"

	// DefaultNotificationURL is where a tapped notification lands when no URL is given.
	DefaultNotificationURL = "/notification"

	// DefaultNotificationIcon is the icon sent with web push payloads.
	DefaultNotificationIcon = "/icons/icon-192.png"

	// PlatformWeb, PlatformAndroid and PlatformIOS are the registrable token platforms.
	PlatformWeb     = "web"
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

// Package constants holds values shared across layers.
package constants

const (
	// EnvDevelop is the env.env value for local development.
	EnvDevelop = "develop"
	// EnvProduction is the env.env value for production.
	EnvProduction = "production"
)

const (
	// PubSubProviderNone disables event publishing.
	PubSubProviderNone = ""
	// PubSubProviderLocal posts push-format envelopes to a local worker.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// EventTypeOrderPlaced marks order.placed events.
	EventTypeOrderPlaced = "order.placed"
	// EventTypeAttribute is the Pub/Sub attribute carrying the event type.
	EventTypeAttribute = "event_type"
)

// DefaultOrderQuantity applies when place_order omits quantity.
const DefaultOrderQuantity = 1

const (
	// PriceScale is the number of decimal places a price column stores.
	PriceScale = 2
	// MaxPriceDigits is the integer digits a price column stores, NUMERIC(10,2).
	MaxPriceDigits = 8
)

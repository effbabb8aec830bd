// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub providers accepted by the pubsub.provider setting.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// PubSubPushPath is the worker route that push subscriptions deliver to.
const PubSubPushPath = "/pubsub/push"

// Event types published on the order topic.
const (
	EventTypeOrderPlaced = "order.placed"
)

package service

// MetricsRecorder records business counters.
type MetricsRecorder interface {
	// OrderPlaced counts a committed order
	OrderPlaced()

	// OrderRejected counts an order refused for reason (e.g. insufficient_stock)
	OrderRejected(reason string)

	// MessageSent counts a stored message by kind
	MessageSent(kind string)
}

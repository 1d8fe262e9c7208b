// Package feed implements the change feed that keeps every connected display
// convergent with the order store.
//
// The Hub is a run-loop over a single message channel: subscriptions,
// unsubscriptions, and published events are all processed by one goroutine,
// so a new subscriber's initial snapshot and its live tail are gap-free and
// events are delivered in commit order. Delivery to each session is
// fire-and-forget over a buffered channel; a session that cannot keep up is
// evicted rather than allowed to stall the writer, and its client resyncs by
// reconnecting for a fresh snapshot.
//
// The Registry tracks connected sessions and their scope filters. Nothing
// about a session survives its disconnect; a reconnect is indistinguishable
// from a fresh join.
package feed

// Package notify implements the change-notification channel the kit's
// observable objects publish through: an explicit, property-keyed
// publish/subscribe mechanism with contractual silence and coalescing rules,
// in place of an implicit property-changed event convention.
//
// Each subscribable object owns one Source. The Source enforces three rules
// that binding layers rely on:
//
//   - Construction silence: a Source is silent until its first subscriber
//     attaches. Property assignments made while the owning object is still
//     being wired up are never announced.
//   - At most one notification per property per synchronous unit of work:
//     publishes made inside Batch coalesce, and the survivors are delivered
//     when the outermost batch exits, once the object's invariants hold.
//   - Deterministic delivery: subscribers of a property run synchronously in
//     subscription order. No ordering is promised across distinct properties,
//     though batches flush in first-publish order.
//
// A panicking subscriber never stops delivery to the rest: the dispatch loop
// recovers, logs the offender by its subscription token, and moves on.
//
// # Usage
//
//	src := notify.NewSource()
//	off := src.Subscribe("value", func(e notify.Event) {
//		render()
//	})
//	defer off()
//
//	src.Batch(func() {
//		src.Publish("value")
//		src.Publish("value") // coalesced with the one above
//	})
//
// Equality checks belong to the publisher: call Publish only when the
// property actually changed.
package notify

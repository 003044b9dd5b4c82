// Package report assembles read-only views over the event store.
//
// # Reports
//
//   - Inventory: wrapped-unbaked and available-baked levels with anomalies.
//   - Event: the validated settlement of one market event.
//   - Tapas: overall and weekly tapas totals.
//   - RecentEvents: the latest market events with cash and sales totals.
//
// Every report is JSON-serialisable; the Archiver stores them in object
// storage under <prefix>/<kind>/<date>-<uuid>.json.
package report

/*
Package observability aggregates engine activity into a queryable view.

A Collector subscribes to the engine through lifecycle hooks and tallies
calculations by outcome along with duration extremes. Snapshots are value
copies, safe to serialize from a serving surface while the engine keeps
running.
*/
package observability

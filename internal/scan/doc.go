// Package scan aggregates repository discovery and inspection into reports.
//
// The Service walks the configured roots, inspects every discovered
// repository concurrently, applies the recency filter, and returns records in
// deterministic path order. CommandBuilder wires the scan and show commands.
package scan

// Package sheetdata turns raw spreadsheet tab exports into typed portfolio
// records. It owns the lenient CSV scanner, the locale-tolerant numeric
// normalizer, the fixed cell-position schemas, the record extractors and the
// team-wide aggregation. Everything in this package is pure: no I/O, no
// clocks, no ambient configuration.
package sheetdata

// Package analytics is the sales aggregation engine.
//
// Every stage is a pure function over materialised slices:
//
//	Flatten → OrderTotals → TopCustomers / CustomerReports / CitySummary → FilterReports
//	Flatten → ProductPerformance
//
// Stages never mutate their inputs, so one snapshot can be shared by concurrent callers.
// Ordering is imposed only by the ranking step of each report; grouping itself does not
// depend on input order. Money is decimal throughout.
package analytics

package analytics

import (
	"insight/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CustomerReportFilter narrows an already built customer report.
type CustomerReportFilter struct {
	// MinRevenue keeps reports with TotalSpent >= MinRevenue.
	MinRevenue decimal.Decimal
	// City, when set and non-empty, keeps reports of exactly that city (case-sensitive).
	City *string
}

func (f CustomerReportFilter) matches(report entity.CustomerReport) bool {
	if report.TotalSpent.LessThan(f.MinRevenue) {
		return false
	}
	if f.City != nil && *f.City != "" && report.City != *f.City {
		return false
	}

	return true
}

// FilterReports keeps the reports matching filter, preserving their relative order.
func FilterReports(reports []entity.CustomerReport, filter CustomerReportFilter) []entity.CustomerReport {
	kept := make([]entity.CustomerReport, 0, len(reports))
	for _, report := range reports {
		if filter.matches(report) {
			kept = append(kept, report)
		}
	}

	return kept
}

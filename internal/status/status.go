// SPDX-License-Identifier: AGPL-3.0-or-later

// Package status holds the project status fixtures for the CRM frontend.
// The tables are literal data, kept apart from the workbook generation so
// a tracker-backed source can replace them without touching the writer.
package status

import "github.com/acme/crmtool/internal/report"

// Sheet names, in workbook order.
const (
	SheetFrontend  = "Frontend"
	SheetBackend   = "Backend"
	SheetNextSteps = "Next Steps"
)

var frontend = report.Table{
	Name:    SheetFrontend,
	Columns: []string{"Component", "Status", "Owner", "Notes"},
	Rows: [][]string{
		{"App shell / layout", "Done", "Mara", "Sidebar + header grid in place"},
		{"Sidebar navigation", "Done", "Mara", "Collapsible, active-route highlight"},
		{"Header bar", "Done", "Mara", "Search box is a stub"},
		{"Dashboard page", "In progress", "Jonas", "Widgets render with mock data"},
		{"Ticket entry form", "In progress", "Priya", "Validation rules pending"},
		{"Ticket list view", "In progress", "Priya", "Sorting works, filters missing"},
		{"Customer table", "Not started", "Jonas", "Blocked on customers endpoint"},
		{"Login page", "Done", "Mara", "Redirect after login untested"},
		{"Client-side routing", "Done", "Jonas", "Base path aware since CI deploys"},
		{"Theme / design tokens", "Done", "Mara", "Dark mode deferred"},
		{"API client", "In progress", "Priya", "Error mapping incomplete"},
		{"Form validation", "Not started", "Priya", "Waiting on ticket form fields"},
		{"CI deploy pipeline", "Done", "Jonas", "Publishes to GitHub Pages"},
	},
}

var backend = report.Table{
	Name:    SheetBackend,
	Columns: []string{"Endpoint", "Method", "Status", "Notes"},
	Rows: [][]string{
		{"/api/tickets", "GET", "Done", "Pagination supported"},
		{"/api/tickets", "POST", "Done", "Validation mirrors the form"},
		{"/api/tickets/:id", "GET", "In progress", "History sub-resource missing"},
		{"/api/customers", "GET", "Not started", "Schema under review"},
		{"/api/auth/login", "POST", "Done", "Session cookie only"},
		{"/api/health", "GET", "Done", ""},
	},
}

var nextSteps = report.Table{
	Name:    SheetNextSteps,
	Columns: []string{"Task", "Priority", "Target"},
	Rows: [][]string{
		{"Finish ticket form validation", "High", "Sprint 12"},
		{"Wire customer table to API", "High", "Sprint 12"},
		{"Dashboard real data instead of mocks", "Medium", "Sprint 13"},
		{"Accessibility pass on forms", "Low", "Sprint 14"},
	},
}

// Workbook returns the project summary workbook: the three status tables
// in their fixed order. Each call returns the same content.
func Workbook() report.Workbook {
	return report.Workbook{Tables: []report.Table{frontend, backend, nextSteps}}
}

// Package viascan discovers, downloads, and scans documentation files
// published on the Italian environmental-assessment portal. It walks
// paginated search results and document tables, downloads the referenced
// files idempotently, and scans the resulting PDFs for coordinates,
// cadastral references, and turbine specifications, producing a
// line-addressed match report.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, pdf/).
package viascan

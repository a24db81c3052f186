// Package admindashboardservice serves the administrator's read-only views:
// platform totals and the cross-school participant and nomination listings
// enriched with school details. It owns no tables; every port is a read-only
// directory over state owned by the other modules.
package admindashboardservice

// Package nominationservice owns teacher award nominations: schools nominate
// teachers for award categories, evaluators score shortlisted candidates, and
// administrators move nominations through the status lifecycle. The public
// vote tally lives on the nomination row but is written by the voting side;
// this module treats it as read-only display data.
package nominationservice

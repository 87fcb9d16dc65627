// Package recipients loads per-recipient template contexts from CSV files.
//
// Each data row of a CSV source becomes one Context: a flat mapping of
// normalized column name to cell value, extended with the detected recipient
// address and caller-level sender/subject defaults. Column names are
// normalized into identifiers so they can be referenced from templates:
//
//	First Name;E-Mail
//	Ann;ann@example.com
//
// yields a context with the keys first_name, e_mail, recipient and to.
//
// A recipient list may aggregate several sources, each with its own
// delimiter and skip-row count; results are concatenated in source order.
package recipients

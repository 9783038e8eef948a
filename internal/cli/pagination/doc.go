// Package pagination provides shared pagination and sorting for the list
// commands. It supports offset-based (--limit/--offset) and page-based
// (--page/--page-size) modes; the two are mutually exclusive.
package pagination

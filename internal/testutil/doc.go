// Package testutil holds deterministic helpers shared by package tests:
// predictable record ids and golden-file comparison.
package testutil

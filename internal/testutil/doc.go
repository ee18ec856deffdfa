// Package testutil provides fluent builders for constructing type catalogs
// and seeded persistent objects in tests without repetitive setup noise.
package testutil

// Package pagination defines the paged list contract shared by every resource:
// query parameter parsing, offset math and the PagedResult envelope.
package pagination

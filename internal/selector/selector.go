// Package selector provides memoized read views over the store.
//
// Every view is recomputed only when the revision of its underlying
// collection changes, so repeated calls between unrelated mutations return
// the very same slice. Returned slices are shared and must not be modified.
package selector

import "github.com/heartmarshall/hearthhub/internal/store"

// DefaultRecentLimit is the number of listings returned by Recent.
const DefaultRecentLimit = 10

// maxFilterEntries bounds the per-revision cache of filtered views.
const maxFilterEntries = 64

type source interface {
	Snapshot() store.Snapshot
}

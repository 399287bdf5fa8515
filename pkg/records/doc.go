// Package records owns the simulated backend's persistent collections: the
// registered users and the inventory items.
//
// A Store is constructed once from a store.Store, loads both collections,
// and rewrites the affected collection in full after every mutation. Ids are
// integers assigned by the store and never reused, even after deletion: the
// highest id ever issued is persisted next to each collection.
//
// Business-rule failures are returned as *BadRequestError or
// *NotFoundError, both of which carry an HTTP status code. Anything else
// (a failed write, corrupt persisted data) is an ordinary error.
//
// Usage:
//
//	recs, err := records.Open(ctx, memory.New())
//	user, err := recs.Register(ctx, records.User{Username: "bob", Password: "pw"})
//	pub, err := recs.Authenticate("bob", "pw")
//	item, err := recs.CreateItem(ctx, map[string]any{"name": "Widget"})
package records

package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/getmockd/fakeapi/pkg/logging"
	"github.com/getmockd/fakeapi/pkg/store"
)

// Keys under which the collections are persisted.
const (
	UsersKey     = "users"
	InventoryKey = "inventory"

	// seqSuffix marks the key holding a collection's highest issued id.
	seqSuffix = ":seq"
)

// Store holds the user and inventory collections in memory and persists
// them to a key-value store after every mutation.
//
// Reads take a shared lock and writes an exclusive one, so handlers run one
// mutation at a time. Mutations are copy-on-write: the new collection is
// written first and only swapped in once the write succeeded.
type Store struct {
	mu  sync.RWMutex
	kv  store.Store
	log *slog.Logger

	users   []User
	items   []Item
	userSeq int
	itemSeq int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store's logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// Open loads both collections from kv. Missing keys yield empty
// collections; corrupt data is an error.
func Open(ctx context.Context, kv store.Store, opts ...Option) (*Store, error) {
	if kv == nil {
		return nil, errors.New("records: key-value store cannot be nil")
	}

	s := &Store{
		kv:    kv,
		log:   logging.Nop(),
		users: []User{},
		items: []Item{},
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}

	s.log.Debug("record store loaded", "users", len(s.users), "items", len(s.items))
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	if err := s.loadJSON(ctx, UsersKey, &s.users); err != nil {
		return err
	}
	if err := s.loadJSON(ctx, InventoryKey, &s.items); err != nil {
		return err
	}
	if err := s.loadJSON(ctx, UsersKey+seqSuffix, &s.userSeq); err != nil {
		return err
	}
	if err := s.loadJSON(ctx, InventoryKey+seqSuffix, &s.itemSeq); err != nil {
		return err
	}

	if s.users == nil {
		s.users = []User{}
	}
	if s.items == nil {
		s.items = []Item{}
	}

	// A sequence can lag behind the data if it was never written.
	for _, u := range s.users {
		s.userSeq = max(s.userSeq, u.ID)
	}
	for _, it := range s.items {
		s.itemSeq = max(s.itemSeq, it.ID)
	}
	return nil
}

func (s *Store) loadJSON(ctx context.Context, key string, v any) error {
	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) persist(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Put(ctx, key, data); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// persistSeq advances a collection's sequence on disk. The in-memory
// sequence is advanced by the caller even if the following collection write
// fails, which leaves a gap rather than risking reuse.
func (s *Store) persistSeq(ctx context.Context, key string, seq int) error {
	return s.persist(ctx, key+seqSuffix, seq)
}

// =============================================================================
// Users
// =============================================================================

// Authenticate returns the public view of the user whose username and
// password both match exactly.
func (s *Store) Authenticate(username, password string) (PublicUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return u.Public(), nil
		}
	}
	return PublicUser{}, errBadCredentials()
}

// Register assigns u a new id and appends it. A username already in use is
// rejected without touching the store.
func (s *Store) Register(ctx context.Context, u User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.usernameOwner(u.Username) != 0 {
		return User{}, errUsernameTaken(u.Username)
	}

	u.ID = s.userSeq + 1
	if err := s.persistSeq(ctx, UsersKey, u.ID); err != nil {
		return User{}, err
	}
	s.userSeq = u.ID

	next := append(slices.Clone(s.users), u)
	if err := s.persist(ctx, UsersKey, next); err != nil {
		return User{}, err
	}
	s.users = next

	s.log.Debug("user registered", "id", u.ID, "username", u.Username)
	return u, nil
}

// Users returns every user's public projection in insertion order.
func (s *Store) Users() []PublicUser {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]PublicUser, len(s.users))
	for i, u := range s.users {
		out[i] = u.Public()
	}
	return out
}

// User returns the public projection of the user with id.
func (s *Store) User(id int) (PublicUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.userIndex(id); i >= 0 {
		return s.users[i].Public(), true
	}
	return PublicUser{}, false
}

// UpdateUser merges upd onto the user with id. An absent or empty password
// keeps the existing one; renaming onto another user's username fails.
func (s *Store) UpdateUser(ctx context.Context, id int, upd UserUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndex(id)
	if i < 0 {
		return &NotFoundError{Resource: "User", ID: id}
	}
	current := s.users[i]

	if upd.Password != nil && *upd.Password == "" {
		upd.Password = nil
	}
	if upd.Username != nil && *upd.Username != current.Username {
		if owner := s.usernameOwner(*upd.Username); owner != 0 && owner != id {
			return errUsernameTaken(*upd.Username)
		}
	}

	next := slices.Clone(s.users)
	next[i] = upd.apply(current)
	if err := s.persist(ctx, UsersKey, next); err != nil {
		return err
	}
	s.users = next
	return nil
}

// DeleteUser removes the user with id, if any, and persists the remainder.
func (s *Store) DeleteUser(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.users), func(u User) bool { return u.ID == id })
	if err := s.persist(ctx, UsersKey, next); err != nil {
		return err
	}
	s.users = next
	return nil
}

func (s *Store) userIndex(id int) int {
	return slices.IndexFunc(s.users, func(u User) bool { return u.ID == id })
}

// usernameOwner returns the id of the user holding username, or 0.
func (s *Store) usernameOwner(username string) int {
	for _, u := range s.users {
		if u.Username == username {
			return u.ID
		}
	}
	return 0
}

// =============================================================================
// Inventory
// =============================================================================

// CreateItem stores fields as a new item under a fresh id. An "id" in
// fields is ignored.
func (s *Store) CreateItem(ctx context.Context, fields map[string]any) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := Item{ID: s.itemSeq + 1, Fields: withoutID(fields)}
	if err := s.persistSeq(ctx, InventoryKey, item.ID); err != nil {
		return Item{}, err
	}
	s.itemSeq = item.ID

	next := append(slices.Clone(s.items), item)
	if err := s.persist(ctx, InventoryKey, next); err != nil {
		return Item{}, err
	}
	s.items = next

	s.log.Debug("item created", "id", item.ID)
	return item.clone(), nil
}

// Items returns every item in insertion order.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	for i, it := range s.items {
		out[i] = it.clone()
	}
	return out
}

// Item returns the item with id.
func (s *Store) Item(id int) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.itemIndex(id); i >= 0 {
		return s.items[i].clone(), true
	}
	return Item{}, false
}

// UpdateItem overwrites the given top-level fields of the item with id.
// Fields not present in fields are untouched; "id" cannot be changed.
func (s *Store) UpdateItem(ctx context.Context, id int, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return &NotFoundError{Resource: "Item", ID: id}
	}

	merged := s.items[i].clone()
	if merged.Fields == nil {
		merged.Fields = make(map[string]any, len(fields))
	}
	for k, v := range withoutID(fields) {
		merged.Fields[k] = v
	}

	next := slices.Clone(s.items)
	next[i] = merged
	if err := s.persist(ctx, InventoryKey, next); err != nil {
		return err
	}
	s.items = next
	return nil
}

// DeleteItem removes the item with id, if any, and persists the remainder.
func (s *Store) DeleteItem(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.items), func(it Item) bool { return it.ID == id })
	if err := s.persist(ctx, InventoryKey, next); err != nil {
		return err
	}
	s.items = next
	return nil
}

func (s *Store) itemIndex(id int) int {
	return slices.IndexFunc(s.items, func(it Item) bool { return it.ID == id })
}

func withoutID(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "id" {
			continue
		}
		out[k] = v
	}
	return out
}

// =============================================================================
// Maintenance
// =============================================================================

// Reset removes both collections and their sequences, so ids start at 1
// again.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{UsersKey, InventoryKey, UsersKey + seqSuffix, InventoryKey + seqSuffix} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	s.users = []User{}
	s.items = []Item{}
	s.userSeq = 0
	s.itemSeq = 0

	s.log.Info("record store reset")
	return nil
}

// Stats summarizes the store's contents.
type Stats struct {
	Users      int `json:"users"`
	Items      int `json:"items"`
	LastUserID int `json:"lastUserId"`
	LastItemID int `json:"lastItemId"`
}

// Stats returns collection sizes and the highest ids issued so far.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Users:      len(s.users),
		Items:      len(s.items),
		LastUserID: s.userSeq,
		LastItemID: s.itemSeq,
	}
}

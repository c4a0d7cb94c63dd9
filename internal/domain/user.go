package domain

// Gender is a user's self-reported gender.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid reports whether g is one of the three recognized values.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// Address is a user's postal address. City is only meaningful relative
// to State: every city belongs to exactly one state in the reference data.
type Address struct {
	Line1 string
	Line2 string
	State string
	City  string
	PIN   string
}

// User is a managed user record. ID is assigned once at creation and
// never changes afterward.
type User struct {
	ID          string
	Name        string
	Email       string
	LinkedinURL string
	Gender      Gender
	Address     Address
}

// UserStore is an ordered, in-memory collection of users. Mutations are
// total: they never fail, and readers always observe a consistent
// snapshot, never a partially applied change.
type UserStore interface {
	// Add appends the user to the end of the collection. The caller is
	// trusted to supply a unique ID; no re-check is performed.
	Add(user User)
	// Update replaces the first record with a matching ID in place,
	// preserving its position. A missing ID is a silent no-op.
	Update(user User)
	// Delete removes every record with the given ID.
	Delete(id string)
	// Get returns the first record with the given ID.
	Get(id string) (User, bool)
	// All returns a snapshot of the collection in insertion order. The
	// returned slice is never mutated by later store operations.
	All() []User
	// Len returns the number of records.
	Len() int
	// Subscribe registers a listener invoked with the new snapshot after
	// every mutation. The returned function removes the listener.
	Subscribe(fn func(users []User)) (unsubscribe func())
}

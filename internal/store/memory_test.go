package store_test

import (
	"reflect"
	"testing"

	"github.com/msomdec/userdesk/internal/domain"
	"github.com/msomdec/userdesk/internal/store"
)

func testUser(id, name string) domain.User {
	return domain.User{
		ID:          id,
		Name:        name,
		Email:       name + "@example.com",
		LinkedinURL: "https://www.linkedin.com/in/" + id,
		Gender:      domain.GenderOther,
		Address: domain.Address{
			Line1: "1 Main St",
			State: "Goa",
			City:  "Panaji",
			PIN:   "403001",
		},
	}
}

func TestAddThenGet(t *testing.T) {
	m := store.NewMemory()
	u := testUser("u1", "Jane Doe")
	m.Add(u)

	got, ok := m.Get("u1")
	if !ok {
		t.Fatal("expected to find u1")
	}
	if !reflect.DeepEqual(got, u) {
		t.Fatalf("got %+v, want %+v", got, u)
	}
	if m.Len() != 1 {
		t.Fatalf("expected length 1, got %d", m.Len())
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	m := store.NewMemory()
	m.Add(testUser("u1", "First"))
	m.Add(testUser("u2", "Second"))
	m.Add(testUser("u3", "Third"))

	all := m.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 users, got %d", len(all))
	}
	for i, want := range []string{"u1", "u2", "u3"} {
		if all[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, all[i].ID)
		}
	}
}

func TestUpdateReplacesInPlace(t *testing.T) {
	m := store.NewMemory()
	m.Add(testUser("u1", "First"))
	m.Add(testUser("u2", "Second"))
	m.Add(testUser("u3", "Third"))

	updated := testUser("u2", "Renamed")
	m.Update(updated)

	all := m.All()
	if all[1].Name != "Renamed" {
		t.Fatalf("expected u2 renamed in place, got %q", all[1].Name)
	}
	if all[0].ID != "u1" || all[2].ID != "u3" {
		t.Fatal("update disturbed neighboring positions")
	}
}

func TestUpdateMissingIDIsNoOp(t *testing.T) {
	m := store.NewMemory()
	m.Add(testUser("u1", "First"))
	m.Add(testUser("u2", "Second"))
	before := m.All()

	m.Update(testUser("ghost", "Ghost"))

	after := m.All()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("collection changed: before %+v, after %+v", before, after)
	}
	if m.Len() != 2 {
		t.Fatalf("expected length 2, got %d", m.Len())
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	m := store.NewMemory()
	m.Add(testUser("u1", "First"))
	m.Add(testUser("u2", "Second"))
	m.Add(testUser("u3", "Third"))

	m.Delete("u2")

	if m.Len() != 2 {
		t.Fatalf("expected length 2, got %d", m.Len())
	}
	if _, ok := m.Get("u2"); ok {
		t.Fatal("expected u2 to be gone")
	}
	all := m.All()
	if all[0].ID != "u1" || all[1].ID != "u3" {
		t.Fatalf("expected remaining order u1, u3; got %s, %s", all[0].ID, all[1].ID)
	}
}

func TestDeleteAbsentIDIsNoOp(t *testing.T) {
	m := store.NewMemory()
	m.Add(testUser("u1", "First"))
	before := m.All()

	m.Delete("ghost")

	if !reflect.DeepEqual(before, m.All()) {
		t.Fatal("deleting an absent ID changed the collection")
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	m := store.NewMemory()
	m.Add(testUser("u1", "First"))

	snapshot := m.All()
	m.Add(testUser("u2", "Second"))
	m.Update(testUser("u1", "Renamed"))
	m.Delete("u1")

	if len(snapshot) != 1 {
		t.Fatalf("snapshot length changed to %d", len(snapshot))
	}
	if snapshot[0].Name != "First" {
		t.Fatalf("snapshot contents changed: %q", snapshot[0].Name)
	}
}

func TestSubscribeNotifiesOnEveryMutation(t *testing.T) {
	m := store.NewMemory()
	var counts []int
	m.Subscribe(func(users []domain.User) {
		counts = append(counts, len(users))
	})

	m.Add(testUser("u1", "First"))
	m.Add(testUser("u2", "Second"))
	m.Update(testUser("u1", "Renamed"))
	m.Delete("u2")

	want := []int{1, 2, 2, 1}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("listener saw %v, want %v", counts, want)
	}
}

func TestSubscribeNoOpMutationsDoNotNotify(t *testing.T) {
	m := store.NewMemory()
	m.Add(testUser("u1", "First"))

	notified := 0
	m.Subscribe(func(users []domain.User) { notified++ })

	m.Update(testUser("ghost", "Ghost"))
	m.Delete("ghost")

	if notified != 0 {
		t.Fatalf("expected no notifications for no-op mutations, got %d", notified)
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	m := store.NewMemory()
	notified := 0
	unsubscribe := m.Subscribe(func(users []domain.User) { notified++ })

	m.Add(testUser("u1", "First"))
	unsubscribe()
	m.Add(testUser("u2", "Second"))

	if notified != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", notified)
	}
}

package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/msomdec/userdesk/internal/config"
	"github.com/msomdec/userdesk/internal/domain"
	"github.com/msomdec/userdesk/internal/service"
	"github.com/msomdec/userdesk/internal/store"
)

func newTestUserService(t *testing.T) (*service.UserService, *store.Memory) {
	t.Helper()
	m := store.NewMemory()
	return service.NewUserService(m, config.DefaultRules(), nil), m
}

func validInput() service.UserInput {
	return service.UserInput{
		Name:        "Jane Doe",
		Email:       "jane@x.com",
		LinkedinURL: "https://www.linkedin.com/in/jane",
		Gender:      "female",
		Address: service.AddressInput{
			Line1: "1 Main St",
			Line2: "",
			State: "Goa",
			City:  "Panaji",
			PIN:   "403001",
		},
	}
}

func TestCreate_ValidInput(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected a non-empty derived ID")
	}

	stored, ok := m.Get(user.ID)
	if !ok {
		t.Fatal("expected stored record to be retrievable by the returned ID")
	}
	if stored.Name != "Jane Doe" || stored.Email != "jane@x.com" {
		t.Fatalf("stored fields differ from input: %+v", stored)
	}
	if stored.Gender != domain.GenderFemale {
		t.Fatalf("expected gender female, got %q", stored.Gender)
	}
	if stored.Address.City != "Panaji" || stored.Address.State != "Goa" {
		t.Fatalf("stored address differs from input: %+v", stored.Address)
	}
}

func TestCreate_CustomIDGenerator(t *testing.T) {
	m := store.NewMemory()
	n := 0
	svc := service.NewUserService(m, config.DefaultRules(), func() string {
		n++
		return "fixed-id"
	})

	user, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID != "fixed-id" {
		t.Fatalf("expected injected generator ID, got %q", user.ID)
	}
	if n != 1 {
		t.Fatalf("expected generator called once, called %d times", n)
	}
}

func TestValidate_SingleRuleViolations(t *testing.T) {
	svc, _ := newTestUserService(t)

	tests := []struct {
		name      string
		mutate    func(in *service.UserInput)
		wantField string
	}{
		{"name too short", func(in *service.UserInput) { in.Name = "J" }, "name"},
		{"name too long", func(in *service.UserInput) { in.Name = strings.Repeat("a", 51) }, "name"},
		{"bad email", func(in *service.UserInput) { in.Email = "not-an-email" }, "email"},
		{"bad linkedin host", func(in *service.UserInput) { in.LinkedinURL = "https://example.com/in/jane" }, "linkedinUrl"},
		{"linkedin not https", func(in *service.UserInput) { in.LinkedinURL = "http://www.linkedin.com/in/jane" }, "linkedinUrl"},
		{"bad gender", func(in *service.UserInput) { in.Gender = "unknown" }, "gender"},
		{"missing line1", func(in *service.UserInput) { in.Address.Line1 = "" }, "address.line1"},
		{"missing state", func(in *service.UserInput) { in.Address.State = "" }, "address.state"},
		{"unknown state", func(in *service.UserInput) { in.Address.State = "Atlantis" }, "address.state"},
		{"missing city", func(in *service.UserInput) { in.Address.City = "" }, "address.city"},
		{"city from other state", func(in *service.UserInput) { in.Address.City = "Mumbai" }, "address.city"},
		{"pin too short", func(in *service.UserInput) { in.Address.PIN = "4030" }, "address.pin"},
		{"pin not numeric", func(in *service.UserInput) { in.Address.PIN = "40300a" }, "address.pin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := svc.Validate(in)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}

			var fields domain.FieldErrors
			if !errors.As(err, &fields) {
				t.Fatalf("expected FieldErrors, got %T", err)
			}
			if len(fields) != 1 {
				t.Fatalf("expected exactly one field error, got %v", fields)
			}
			if _, ok := fields[tt.wantField]; !ok {
				t.Fatalf("expected error on %q, got %v", tt.wantField, fields)
			}
		})
	}
}

func TestValidate_Line2Optional(t *testing.T) {
	svc, _ := newTestUserService(t)

	in := validInput()
	in.Address.Line2 = ""
	if err := svc.Validate(in); err != nil {
		t.Fatalf("empty line2 should be valid: %v", err)
	}

	in.Address.Line2 = "Flat 4B"
	if err := svc.Validate(in); err != nil {
		t.Fatalf("non-empty line2 should be valid: %v", err)
	}
}

func TestValidate_StateChangeClearedCity(t *testing.T) {
	svc, _ := newTestUserService(t)

	// Simulates the form after a state change: city was cleared and the
	// user submitted without re-selecting.
	in := validInput()
	in.Address.State = "Kerala"
	in.Address.City = ""

	err := svc.Validate(in)
	var fields domain.FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if msg, ok := fields["address.city"]; !ok || msg == "" {
		t.Fatalf("expected a city-required error, got %v", fields)
	}
}

func TestCreate_InvalidInputLeavesStoreUntouched(t *testing.T) {
	svc, m := newTestUserService(t)

	in := validInput()
	in.Email = "broken"
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatal("expected validation failure")
	}
	if m.Len() != 0 {
		t.Fatalf("expected empty store after failed create, got %d records", m.Len())
	}
}

func TestUpdate_PreservesID(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	in := validInput()
	in.ID = created.ID
	in.Name = "Jane Updated"
	updated, err := svc.Update(ctx, in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("update changed the ID: %q -> %q", created.ID, updated.ID)
	}

	stored, _ := m.Get(created.ID)
	if stored.Name != "Jane Updated" {
		t.Fatalf("expected updated name, got %q", stored.Name)
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", m.Len())
	}
}

func TestUpdate_MissingIDIsSilentNoOp(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, validInput()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	before := m.All()

	in := validInput()
	in.ID = "no-such-id"
	if _, err := svc.Update(ctx, in); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}

	after := m.All()
	if len(after) != len(before) {
		t.Fatalf("collection length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("record %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	svc, m := newTestUserService(t)
	ctx := context.Background()

	first, _ := svc.Create(ctx, validInput())
	second := validInput()
	second.Name = "John Roe"
	second.Email = "john@x.com"
	if _, err := svc.Create(ctx, second); err != nil {
		t.Fatalf("Create second: %v", err)
	}

	svc.Delete(ctx, first.ID)

	if m.Len() != 1 {
		t.Fatalf("expected 1 record after delete, got %d", m.Len())
	}
	if _, ok := m.Get(first.ID); ok {
		t.Fatal("expected deleted record to be gone")
	}

	svc.Delete(ctx, "absent-id")
	if m.Len() != 1 {
		t.Fatalf("deleting an absent ID changed the collection to %d records", m.Len())
	}
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Get(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

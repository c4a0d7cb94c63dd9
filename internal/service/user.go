package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/msomdec/userdesk/internal/config"
	"github.com/msomdec/userdesk/internal/domain"
	"github.com/msomdec/userdesk/internal/refdata"
)

// IDGenerator produces identifiers for newly created users.
type IDGenerator func() string

// UUIDs is the default IDGenerator.
func UUIDs() string {
	return uuid.NewString()
}

// UserInput is a candidate user as submitted by the form, before
// validation. Field paths in validation errors follow the form tags.
type UserInput struct {
	ID          string       `form:"id"`
	Name        string       `form:"name" validate:"required,name_len"`
	Email       string       `form:"email" validate:"required,email_shape"`
	LinkedinURL string       `form:"linkedinUrl" validate:"required,url,linkedin"`
	Gender      string       `form:"gender" validate:"required,oneof=male female other"`
	Address     AddressInput `form:"address"`
}

// AddressInput is the address portion of a form submission.
type AddressInput struct {
	Line1 string `form:"line1" validate:"required"`
	Line2 string `form:"line2"`
	State string `form:"state" validate:"required,state"`
	City  string `form:"city" validate:"required"`
	PIN   string `form:"pin" validate:"required,pin"`
}

// UserService validates form submissions and applies user mutations to
// the store. It is the only writer path into the store.
type UserService struct {
	store    domain.UserStore
	rules    config.Rules
	newID    IDGenerator
	validate *validator.Validate
}

// NewUserService creates a UserService. A nil newID falls back to UUIDs.
func NewUserService(store domain.UserStore, rules config.Rules, newID IDGenerator) *UserService {
	if newID == nil {
		newID = UUIDs
	}
	return &UserService{
		store:    store,
		rules:    rules,
		newID:    newID,
		validate: newValidator(rules),
	}
}

// Create validates the input, assigns a fresh ID, and appends the user
// to the store. On validation failure it returns domain.FieldErrors and
// the store is untouched.
func (s *UserService) Create(ctx context.Context, in UserInput) (domain.User, error) {
	if err := s.Validate(in); err != nil {
		return domain.User{}, err
	}
	user := in.toUser()
	user.ID = s.newID()
	s.store.Add(user)
	return user, nil
}

// Update validates the input and replaces the stored record with the
// same ID, preserving its position. An unknown ID is a silent no-op in
// the store; the validated user is returned either way.
func (s *UserService) Update(ctx context.Context, in UserInput) (domain.User, error) {
	if err := s.Validate(in); err != nil {
		return domain.User{}, err
	}
	user := in.toUser()
	s.store.Update(user)
	return user, nil
}

// Delete removes the user with the given ID. An absent ID is a no-op.
func (s *UserService) Delete(ctx context.Context, id string) {
	s.store.Delete(id)
}

// Get returns the user with the given ID.
func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	user, ok := s.store.Get(id)
	if !ok {
		return domain.User{}, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return user, nil
}

// Lookup returns the user with the given ID, without the error shape
// of Get. Useful where absence is an expected state, not a failure.
func (s *UserService) Lookup(id string) (domain.User, bool) {
	return s.store.Get(id)
}

// List returns a snapshot of all users in insertion order.
func (s *UserService) List(ctx context.Context) []domain.User {
	return s.store.All()
}

// Page returns the page at the given index over the live collection,
// clamped into range.
func (s *UserService) Page(index int) Page {
	return Paginate(s.store.All(), index, s.rules.PageSize)
}

// Rules exposes the form rule surface the service validates against.
func (s *UserService) Rules() config.Rules {
	return s.rules
}

// Validate checks every field rule against the input. It returns nil or
// domain.FieldErrors keyed by field path ("name", "address.city", ...).
func (s *UserService) Validate(in UserInput) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable with a non-struct input, which the typed
		// signature rules out.
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	fields := make(domain.FieldErrors, len(verrs))
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		if _, seen := fields[path]; seen {
			continue
		}
		fields[path] = s.message(path, fe)
	}
	return fields
}

func (in UserInput) toUser() domain.User {
	return domain.User{
		ID:          in.ID,
		Name:        in.Name,
		Email:       in.Email,
		LinkedinURL: in.LinkedinURL,
		Gender:      domain.Gender(in.Gender),
		Address: domain.Address{
			Line1: in.Address.Line1,
			Line2: in.Address.Line2,
			State: in.Address.State,
			City:  in.Address.City,
			PIN:   in.Address.PIN,
		},
	}
}

// newValidator builds the validator with the custom rules bound to the
// configured patterns and bounds.
func newValidator(rules config.Rules) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("form")
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("name_len", func(fl validator.FieldLevel) bool {
		n := len(fl.Field().String())
		return n >= rules.NameMin && n <= rules.NameMax
	})
	v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return rules.Email.MatchString(fl.Field().String())
	})
	v.RegisterValidation("linkedin", func(fl validator.FieldLevel) bool {
		return rules.Linkedin.MatchString(fl.Field().String())
	})
	v.RegisterValidation("pin", func(fl validator.FieldLevel) bool {
		return rules.PIN.MatchString(fl.Field().String())
	})
	v.RegisterValidation("state", func(fl validator.FieldLevel) bool {
		return refdata.ValidState(fl.Field().String())
	})

	// City is only valid relative to the selected state, so the check
	// needs both fields at once.
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		a := sl.Current().Interface().(AddressInput)
		if a.City == "" || !refdata.ValidState(a.State) {
			return
		}
		if !refdata.ValidCity(a.State, a.City) {
			sl.ReportError(a.City, "city", "City", "city_in_state", "")
		}
	}, AddressInput{})

	return v
}

// fieldPath turns a validator namespace like "UserInput.address.city"
// into the form field path "address.city".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func (s *UserService) message(path string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "name_len":
		return fmt.Sprintf("must be between %d and %d characters", s.rules.NameMin, s.rules.NameMax)
	case "email_shape":
		return "must be a valid email address"
	case "url", "linkedin":
		return "must be a valid LinkedIn profile URL"
	case "oneof":
		return "must be male, female, or other"
	case "state":
		return "must be a known state"
	case "city_in_state":
		return "must be a city in the selected state"
	case "pin":
		return "must be exactly 6 digits"
	case "required":
		switch path {
		case "address.line1":
			return "address line 1 is required"
		case "address.state":
			return "state is required"
		case "address.city":
			return "city is required"
		}
		return "is required"
	}
	return "is invalid"
}

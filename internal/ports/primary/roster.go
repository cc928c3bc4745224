package primary

import "context"

// RosterService defines the primary port for managing lab personnel.
type RosterService interface {
	// AddPerson registers a tester or assistant.
	AddPerson(ctx context.Context, req AddPersonRequest) (*Person, error)

	// ListPeople lists people, optionally filtered by team.
	ListPeople(ctx context.Context, team string) ([]*Person, error)

	// RenamePerson updates a person's display name.
	RenamePerson(ctx context.Context, personID, name string) error

	// RemovePerson deletes a person from the roster.
	RemovePerson(ctx context.Context, personID string) error
}

// AddPersonRequest contains parameters for registering a person.
type AddPersonRequest struct {
	Name string
	Team string // "testers" or "assistants"
}

// Person represents a roster entry at the port boundary.
type Person struct {
	ID   string
	Name string
	Team string
}

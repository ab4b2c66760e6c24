// Package person defines an immutable value type. Fields are unexported and
// only readable through accessors, so a Person can be shared between
// goroutines without locking.
package person

import "fmt"

// Person is an id and a name. The zero value is a valid, anonymous person.
type Person struct {
	id   int
	name string
}

// New returns a Person with the given id and name.
func New(id int, name string) Person {
	return Person{id: id, name: name}
}

func (p Person) ID() int      { return p.id }
func (p Person) Name() string { return p.name }

// String formats p as Person(id, name).
func (p Person) String() string { return fmt.Sprintf("Person(%d, %s)", p.id, p.name) }

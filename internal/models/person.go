package models

import "github.com/google/uuid"

// Person is a single member of a network. Friends are held by id so that the
// owning network stays the only holder of *Person values.
type Person struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`

	friends  []uuid.UUID
	friendOf map[uuid.UUID]struct{}
}

// NewPerson returns a person with a fresh id and no friends. The name is not validated.
func NewPerson(name string) *Person {
	return &Person{
		ID:       uuid.New(),
		Name:     name,
		friendOf: make(map[uuid.UUID]struct{}),
	}
}

// AddFriend appends other to the friend list. It reports false, leaving the
// list untouched, when other is already a friend. Only p is mutated.
func (p *Person) AddFriend(other *Person) bool {
	if p.friendOf == nil {
		p.friendOf = make(map[uuid.UUID]struct{})
	}
	if _, ok := p.friendOf[other.ID]; ok {
		return false
	}
	p.friendOf[other.ID] = struct{}{}
	p.friends = append(p.friends, other.ID)
	return true
}

// HasFriend reports whether id is in the friend list.
func (p *Person) HasFriend(id uuid.UUID) bool {
	_, ok := p.friendOf[id]
	return ok
}

// Friends returns a copy of the friend ids in the order they were added.
func (p *Person) Friends() []uuid.UUID {
	out := make([]uuid.UUID, len(p.friends))
	copy(out, p.friends)
	return out
}

func (p *Person) FriendCount() int {
	return len(p.friends)
}

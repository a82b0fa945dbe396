package network

// Outcome tags the result of a network operation. None of these are errors:
// a call that reports AlreadyExists, NotFound, AlreadyLinked or SelfLink
// returns normally and leaves the network unchanged.
type Outcome int

const (
	Created Outcome = iota
	AlreadyExists
	NotFound
	Linked
	AlreadyLinked
	SelfLink
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case AlreadyExists:
		return "already_exists"
	case NotFound:
		return "not_found"
	case Linked:
		return "linked"
	case AlreadyLinked:
		return "already_linked"
	case SelfLink:
		return "self_link"
	default:
		return "unknown"
	}
}

// Changed reports whether the outcome mutated the network.
func (o Outcome) Changed() bool {
	return o == Created || o == Linked
}

// Duplicate records one side of a friendship that was already in place:
// Friend was already listed by Owner.
type Duplicate struct {
	Owner  string
	Friend string
}

// Result is what AddPerson and AddFriendship return.
//
// Names holds the names the outcome refers to: the person for Created and
// AlreadyExists, the missing name for NotFound, and both names (in call
// order) for Linked, AlreadyLinked and SelfLink.
type Result struct {
	Outcome    Outcome
	Names      []string
	Duplicates []Duplicate
}

// Package network holds the in-memory friendship graph.
//
// A Network owns every Person registered with it. People are stored in an
// arena keyed by id and found through a name index; friendships are stored as
// ids on both ends, so the graph has no pointer cycles.
package network

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/friendgraph/internal/models"
	"github.com/sirupsen/logrus"
)

type Network struct {
	people map[uuid.UUID]*models.Person
	byName map[string]uuid.UUID
	order  []uuid.UUID

	log logrus.FieldLogger
}

// New returns an empty network. A nil logger falls back to the logrus standard logger.
func New(logger logrus.FieldLogger) *Network {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Network{
		people: make(map[uuid.UUID]*models.Person),
		byName: make(map[string]uuid.UUID),
		log:    logger,
	}
}

// AddPerson registers a new person under name. If the name is taken the
// network is left as is and AlreadyExists is reported.
func (n *Network) AddPerson(name string) Result {
	if _, exists := n.byName[name]; exists {
		n.log.WithField("name", name).Debug("person already registered")
		return Result{Outcome: AlreadyExists, Names: []string{name}}
	}

	p := models.NewPerson(name)
	n.people[p.ID] = p
	n.byName[name] = p.ID
	n.order = append(n.order, p.ID)

	n.log.WithFields(logrus.Fields{
		"name": name,
		"id":   p.ID,
	}).Debug("person registered")
	return Result{Outcome: Created, Names: []string{name}}
}

// AddFriendship links the two named people in both directions.
//
// name1 is checked before name2, and the first unknown name is the one
// reported as NotFound. A person cannot befriend themselves. Each side is
// checked for an existing edge independently; sides that already held the
// other are listed in Result.Duplicates. When both sides did, the outcome is
// AlreadyLinked, otherwise Linked.
func (n *Network) AddFriendship(name1, name2 string) Result {
	p1, ok := n.lookup(name1)
	if !ok {
		n.log.WithField("name", name1).Debug("friendship references unknown person")
		return Result{Outcome: NotFound, Names: []string{name1}}
	}
	p2, ok := n.lookup(name2)
	if !ok {
		n.log.WithField("name", name2).Debug("friendship references unknown person")
		return Result{Outcome: NotFound, Names: []string{name2}}
	}
	if p1.ID == p2.ID {
		return Result{Outcome: SelfLink, Names: []string{name1, name2}}
	}

	res := Result{Outcome: Linked, Names: []string{name1, name2}}
	if !p1.AddFriend(p2) {
		res.Duplicates = append(res.Duplicates, Duplicate{Owner: p1.Name, Friend: p2.Name})
	}
	if !p2.AddFriend(p1) {
		res.Duplicates = append(res.Duplicates, Duplicate{Owner: p2.Name, Friend: p1.Name})
	}
	if len(res.Duplicates) == 2 {
		res.Outcome = AlreadyLinked
	}

	n.log.WithFields(logrus.Fields{
		"person1": name1,
		"person2": name2,
		"outcome": res.Outcome,
	}).Debug("friendship added")
	return res
}

// Len returns the number of registered people.
func (n *Network) Len() int {
	return len(n.order)
}

// Person returns the person registered under name.
func (n *Network) Person(name string) (*models.Person, bool) {
	return n.lookup(name)
}

// FriendNames returns the names of name's friends in the order they were added.
func (n *Network) FriendNames(name string) ([]string, bool) {
	p, ok := n.lookup(name)
	if !ok {
		return nil, false
	}
	return n.names(p.Friends()), true
}

// AreFriends reports whether a and b are both registered and linked.
func (n *Network) AreFriends(a, b string) bool {
	pa, ok := n.lookup(a)
	if !ok {
		return false
	}
	pb, ok := n.lookup(b)
	if !ok {
		return false
	}
	return pa.HasFriend(pb.ID)
}

// Friendships returns every edge once, ordered by the registration order of
// the earlier person and then by that person's friend order.
func (n *Network) Friendships() []models.Friend {
	rank := make(map[uuid.UUID]int, len(n.order))
	for i, id := range n.order {
		rank[id] = i
	}

	var fs []models.Friend
	for _, id := range n.order {
		for _, fid := range n.people[id].Friends() {
			if rank[fid] > rank[id] {
				fs = append(fs, models.Friend{Person1ID: id, Person2ID: fid})
			}
		}
	}
	return fs
}

// Name returns the name of the person with the given id.
func (n *Network) Name(id uuid.UUID) (string, bool) {
	p, ok := n.people[id]
	if !ok {
		return "", false
	}
	return p.Name, true
}

func (n *Network) lookup(name string) (*models.Person, bool) {
	id, ok := n.byName[name]
	if !ok {
		return nil, false
	}
	return n.people[id], true
}

func (n *Network) names(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, n.people[id].Name)
	}
	return out
}

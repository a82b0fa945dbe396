package handlers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jason-s-yu/friendgraph/internal/models"
	"github.com/jason-s-yu/friendgraph/internal/network"
)

// FormatResult renders the console lines for a network result.
func FormatResult(res network.Result) []string {
	switch res.Outcome {
	case network.Created:
		return []string{fmt.Sprintf("Person %s added to the network.", res.Names[0])}
	case network.AlreadyExists:
		return []string{fmt.Sprintf("Person %s already exists in the network.", res.Names[0])}
	case network.NotFound:
		return []string{fmt.Sprintf("%s does not exist in the network.", res.Names[0])}
	case network.SelfLink:
		return []string{fmt.Sprintf("%s cannot be friends with themselves.", res.Names[0])}
	case network.Linked, network.AlreadyLinked:
		lines := make([]string, 0, len(res.Duplicates)+1)
		for _, d := range res.Duplicates {
			lines = append(lines, fmt.Sprintf("%s is already a friend of %s.", d.Friend, d.Owner))
		}
		return append(lines, fmt.Sprintf("%s and %s are now friends.", res.Names[0], res.Names[1]))
	}
	return nil
}

// FormatListing renders one line per person, or the empty-network message.
func FormatListing(l network.Listing) []string {
	if l.Empty {
		return []string{"The network is empty."}
	}
	lines := make([]string, 0, len(l.Entries))
	for _, e := range l.Entries {
		lines = append(lines, fmt.Sprintf("%s: %s", e.Name, strings.Join(e.Friends, ", ")))
	}
	return lines
}

// Namer resolves a person id to a display name.
type Namer interface {
	Name(id uuid.UUID) (string, bool)
}

// FormatEdges renders each friendship once as "<name1> - <name2>".
func FormatEdges(names Namer, fs []models.Friend) []string {
	if len(fs) == 0 {
		return []string{"The network has no friendships."}
	}
	lines := make([]string, 0, len(fs))
	for _, f := range fs {
		a, _ := names.Name(f.Person1ID)
		b, _ := names.Name(f.Person2ID)
		lines = append(lines, fmt.Sprintf("%s - %s", a, b))
	}
	return lines
}

package models

import "github.com/google/uuid"

// Friend is one undirected friendship edge. Person1ID is the person who was
// registered first.
type Friend struct {
	Person1ID uuid.UUID `json:"person1_id"`
	Person2ID uuid.UUID `json:"person2_id"`
}

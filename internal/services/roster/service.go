// Package roster defines saved build operations: creating a character,
// saving it, and rebuilding it from storage
package roster

import (
	"context"

	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
	"github.com/KirkDiggler/wotr-planner/internal/orchestrators/character"
)

// Service defines the interface for saved build operations
type Service interface {
	// NewCharacter creates a level 1 character with a fresh ID
	NewCharacter(ctx context.Context, input *NewCharacterInput) (*NewCharacterOutput, error)

	// Save stores the character's current choices, creating or replacing
	// the saved build
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Load rebuilds a saved character by replaying its choices. Choices that
	// are no longer legal are dropped and reported.
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	List(ctx context.Context, input *ListInput) (*ListOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// NewCharacterInput defines the request for creating a character
type NewCharacterInput struct {
	Name string
	// RaceName and ClassName default to the configured baseline
	RaceName  string
	ClassName string
}

// NewCharacterOutput defines the response for creating a character
type NewCharacterOutput struct {
	Character *character.Character
}

// SaveInput defines the request for saving a character
type SaveInput struct {
	Character *character.Character
}

// SaveOutput defines the response for saving a character
type SaveOutput struct {
	CharacterData *wotr.CharacterData
	Created       bool
}

// LoadInput defines the request for loading a saved build
type LoadInput struct {
	ID string
}

// LoadOutput defines the response for loading a saved build
type LoadOutput struct {
	Character *character.Character
	Rejected  []Rejection
}

// ListInput defines the request for listing saved builds
type ListInput struct{}

// ListOutput defines the response for listing saved builds
type ListOutput struct {
	Characters []*wotr.CharacterData
}

// DeleteInput defines the request for deleting a saved build
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the response for deleting a saved build
type DeleteOutput struct{}

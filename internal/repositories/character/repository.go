// Package character provides the interface for saved build persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/wotr-planner/internal/repositories/character Repository

import (
	"context"
	"sort"

	"github.com/KirkDiggler/wotr-planner/internal/entities/wotr"
	"github.com/KirkDiggler/wotr-planner/internal/errors"
)

// Repository defines the interface for saved build persistence
type Repository interface {
	// Create stores a new build
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a build with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a build by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the build doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing build, keeping its creation time
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the build doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a build by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the build doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every saved build ordered by name, then ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a build
type CreateInput struct {
	CharacterData *wotr.CharacterData
}

// CreateOutput defines the output for creating a build
type CreateOutput struct {
	CharacterData *wotr.CharacterData
}

// GetInput defines the input for getting a build
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a build
type GetOutput struct {
	CharacterData *wotr.CharacterData
}

// UpdateInput defines the input for updating a build
type UpdateInput struct {
	CharacterData *wotr.CharacterData
}

// UpdateOutput defines the output for updating a build
type UpdateOutput struct {
	CharacterData *wotr.CharacterData
}

// DeleteInput defines the input for deleting a build
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a build
type DeleteOutput struct{}

// ListInput defines the input for listing builds
type ListInput struct{}

// ListOutput defines the output for listing builds
type ListOutput struct {
	Characters []*wotr.CharacterData
}

const (
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
)

func validateData(data *wotr.CharacterData) error {
	if data == nil {
		return errors.InvalidArgument(errCharacterNil)
	}
	if data.ID == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}
	return nil
}

func sortByName(list []*wotr.CharacterData) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
}

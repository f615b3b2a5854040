package roster

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KitchAIv1/statjam-sub000/internal/repositories/roster Repository

import (
	"context"

	"github.com/KitchAIv1/statjam-sub000/internal/models"
)

// Repository defines the interface for team roster persistence
type Repository interface {
	// SavePlayer adds or updates a player on a team roster
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves one player from a team roster
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetTeamPlayers retrieves every eligible player of a team, regular and custom
	GetTeamPlayers(ctx context.Context, input *GetTeamPlayersInput) (*GetTeamPlayersOutput, error)

	// RemovePlayer takes a player off a team roster
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) error
}

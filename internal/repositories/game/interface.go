package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KitchAIv1/statjam-sub000/internal/repositories/game Repository

import (
	"context"

	"github.com/KitchAIv1/statjam-sub000/internal/models"
)

// Repository stores the last authoritative snapshot of each game
type Repository interface {
	// SaveGame persists a game snapshot, replacing any earlier one
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GetActiveGames retrieves all scheduled and in-progress games
	GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error)
}

package roster

import "github.com/KitchAIv1/statjam-sub000/internal/models"

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	TeamID string
	Ref    models.PlayerRef
}

// GetTeamPlayersInput contains parameters for retrieving a team roster
type GetTeamPlayersInput struct {
	TeamID string
}

// GetTeamPlayersOutput contains the players on a team roster in roster order
type GetTeamPlayersOutput struct {
	Players []*models.Player
}

// RemovePlayerInput contains parameters for removing a player
type RemovePlayerInput struct {
	TeamID string
	Ref    models.PlayerRef
}

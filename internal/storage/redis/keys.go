package redis

import (
	"fmt"

	"github.com/mcoot/gamenight-go/internal/model"
)

// Key prefix for all tracker data
const keyPrefix = "gamenight"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the SET of all player keys
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesByStartIndexKey returns the Redis key for the ZSET of game keys
// scored by start time, which gives ListGames its chronological order
func gamesByStartIndexKey() string {
	return fmt.Sprintf("%s:idx:games_by_start", keyPrefix)
}

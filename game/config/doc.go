// Package config provides configuration management for Gem Hunters.
//
// The config package handles:
//   - Loading game configurations from JSON files
//   - Filling missing console messages with the stock text
//   - Configuration validation through engine.ValidateGameConfig
//   - Default configuration management and discovery
//
// Configuration Format:
//
// Game configurations are stored as JSON files in the configs directory:
//
//	{
//	  "name": "Practice",
//	  "description": "Fixed board for learning the rules",
//	  "layout": [".GG...", "..O...", "...", ...],
//	  "messages": {"win": "Player %d takes the gems!"}
//	}
//
// The board size, obstacle and gem counts and the turn limit are fixed and
// cannot be configured. A config may pin a seed or a complete layout.
//
// Usage:
//
//	manager, err := config.NewManager("configs", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("practice")
//
//	// classic.json when present, else the built-in random board
//	defaultConfig := manager.GetDefault()
package config

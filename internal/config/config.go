package config

import (
	"github.com/zeromicro/go-zero/rest"
)

// Config holds the server configuration. The embedded RestConf serves the
// JSON API, metrics and the streamable MCP endpoint.
type Config struct {
	rest.RestConf

	UI       UIConfig       `json:",optional"`
	Database DatabaseConfig `json:",optional"`
	Queue    QueueConfig    `json:",optional"`
	Worker   WorkerConfig   `json:",optional"`
	Skins    SkinsConfig    `json:",optional"`
}

// UIConfig holds the Web UI server settings.
type UIConfig struct {
	rest.RestConf
}

// DatabaseConfig holds database settings.
type DatabaseConfig struct {
	Path string `json:",default=./.data/templateforge.db"`
}

// QueueConfig holds scoring queue settings.
type QueueConfig struct {
	Name        string `json:",default=score"`
	MaxAttempts int    `json:",default=3"`
}

// WorkerConfig holds scoring worker settings.
type WorkerConfig struct {
	Workers   int `json:",default=2"`
	RateLimit int `json:",default=600"` // jobs per minute
}

// SkinsConfig points at an optional YAML file of extra skins.
type SkinsConfig struct {
	File string `json:",optional"`
}

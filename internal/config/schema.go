package config

// Config is the full tasklist configuration.
type Config struct {
	// Backend selects the persistence slot: file, sqlite, redis or memory.
	Backend string `yaml:"backend" mapstructure:"backend"`

	File   FileConfig   `yaml:"file" mapstructure:"file"`
	SQLite SQLiteConfig `yaml:"sqlite" mapstructure:"sqlite"`
	Redis  RedisConfig  `yaml:"redis" mapstructure:"redis"`

	// Theme is one of classic, neon, mono.
	Theme string `yaml:"theme" mapstructure:"theme"`

	Log LogConfig `yaml:"log" mapstructure:"log"`
}

type FileConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

type SQLiteConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
	Key  string `yaml:"key" mapstructure:"key"`
}

type RedisConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
	DB   int    `yaml:"db" mapstructure:"db"`
	Key  string `yaml:"key" mapstructure:"key"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	// File receives log output; empty means stderr.
	File string `yaml:"file" mapstructure:"file"`
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
	RateLimitPerMinute() int
	IsDevelopment() bool
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Storage interface {
	Driver() string
	SnapshotPath() string
}

type Database interface {
	DatabaseName() string
	SuppliesCollection() string
	DSN() string
}

type Cache interface {
	Enabled() bool
	Addr() string
	Password() string
	DB() int
	CacheTTL() time.Duration
}

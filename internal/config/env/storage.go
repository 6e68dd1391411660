package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	StorageDriverMongo  = "mongo"
	StorageDriverMemory = "memory"
)

type storageEnv struct {
	Driver       string `env:"STORAGE_DRIVER" envDefault:"mongo"`
	SnapshotPath string `env:"MEMORY_SNAPSHOT_PATH"`
}

type storage struct {
	raw storageEnv
}

func NewStorageConfig() (*storage, error) {
	var raw storageEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	switch raw.Driver {
	case StorageDriverMongo, StorageDriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", raw.Driver)
	}

	return &storage{raw: raw}, nil
}

func (cfg *storage) Driver() string       { return cfg.raw.Driver }
func (cfg *storage) SnapshotPath() string { return cfg.raw.SnapshotPath }

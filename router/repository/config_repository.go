package routerrepo

import (
	"context"
	"fmt"

	dbm "github.com/cometbft/cometbft-db"

	"github.com/prismswap/swaprouter/domain"
	"github.com/prismswap/swaprouter/domain/json"
)

// ConfigRepository represents the contract for a repository holding the router contract config.
type ConfigRepository interface {
	// LoadConfig returns the stored config.
	// Returns domain.ErrConfigNotFound if nothing was stored yet.
	LoadConfig(ctx context.Context) (domain.ContractConfig, error)
	// SaveConfig stores the config, replacing any previous value.
	SaveConfig(ctx context.Context, config domain.ContractConfig) error
}

var _ ConfigRepository = &configRepo{}

var configKey = []byte("config")

type configRepo struct {
	db dbm.DB
}

// New creates a new config repository on top of the given key-value store.
func New(db dbm.DB) ConfigRepository {
	return &configRepo{
		db: db,
	}
}

// LoadConfig implements ConfigRepository.
func (r *configRepo) LoadConfig(_ context.Context) (domain.ContractConfig, error) {
	bz, err := r.db.Get(configKey)
	if err != nil {
		return domain.ContractConfig{}, err
	}
	if bz == nil {
		return domain.ContractConfig{}, domain.ErrConfigNotFound
	}

	var config domain.ContractConfig
	if err := json.Unmarshal(bz, &config); err != nil {
		return domain.ContractConfig{}, fmt.Errorf("failed to decode stored config: %w", err)
	}

	return config, nil
}

// SaveConfig implements ConfigRepository.
func (r *configRepo) SaveConfig(_ context.Context, config domain.ContractConfig) error {
	if config.RegistryAddress == "" {
		return fmt.Errorf("registry address must be set")
	}

	bz, err := json.Marshal(config)
	if err != nil {
		return err
	}

	return r.db.SetSync(configKey, bz)
}

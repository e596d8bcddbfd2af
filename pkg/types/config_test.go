package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "valid sqlite config",
			config: Config{Backend: BackendSQLite, DataDir: "/tmp/data"},
		},
		{
			name:   "valid with sync strategy",
			config: Config{Backend: BackendSQLite, SyncStrategy: SyncOnClose},
		},
		{
			name:    "empty backend rejected",
			config:  Config{DataDir: "/tmp/data"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend rejected",
			config:  Config{Backend: "postgres"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "unknown sync strategy rejected",
			config:  Config{Backend: BackendSQLite, SyncStrategy: "eventually"},
			wantErr: ErrSyncStrategyUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfigEffectiveSyncStrategy(t *testing.T) {
	assert.Equal(t, SyncImmediate, Config{}.EffectiveSyncStrategy())
	assert.Equal(t, SyncOnClose, Config{SyncStrategy: SyncOnClose}.EffectiveSyncStrategy())
}

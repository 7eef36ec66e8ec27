package config

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string   `json:"name"`
	Settle  Duration `json:"settle"`
	invalid bool
}

func (c *testConfig) Validate() error {
	if c.invalid || c.Name == "" {
		return errors.New("name is required")
	}

	return nil
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{"name": "wanprov", "settle": "20s"}`)

	var cfg testConfig

	require.NoError(t, Load(context.Background(), path, &cfg))
	assert.Equal(t, "wanprov", cfg.Name)
	assert.Equal(t, 20*time.Second, cfg.Settle.Duration())
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	var cfg testConfig

	err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoad_BadJSON(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{not json`)

	var cfg testConfig

	err := Load(context.Background(), path, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal JSON")
}

func TestLoadAndValidate(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{"name": "wanprov"}`)

	var cfg testConfig

	require.NoError(t, LoadAndValidate(context.Background(), path, &cfg))
}

func TestLoadAndValidate_Invalid(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{"name": ""}`)

	var cfg testConfig

	require.Error(t, LoadAndValidate(context.Background(), path, &cfg))
}

func TestDuration_Unmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{`"20s"`, 20 * time.Second, false},
		{`"1m30s"`, 90 * time.Second, false},
		{`""`, 0, false},
		{`"bogus"`, 0, true},
		{`42`, 0, true},
	}

	for _, tt := range tests {
		var d Duration

		err := json.Unmarshal([]byte(tt.in), &d)
		if tt.wantErr {
			require.Error(t, err, "input %s", tt.in)
			continue
		}

		require.NoError(t, err, "input %s", tt.in)
		assert.Equal(t, tt.want, d.Duration(), "input %s", tt.in)
	}
}

func TestDuration_Marshal(t *testing.T) {
	t.Parallel()

	d := Duration(20 * time.Second)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"20s"`, string(data))
}

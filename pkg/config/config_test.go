package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadShippingRates(t *testing.T) {
	t.Run("empty path -> defaults", func(t *testing.T) {
		rates, err := LoadShippingRates("")
		require.NoError(t, err)
		assert.Equal(t, "10", rates.BaseFee.String())
		assert.Equal(t, "0.02", rates.WeightRatePerGram.String())
	})

	t.Run("file overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rates.yaml")
		require.NoError(t, os.WriteFile(path, []byte("base_fee: \"7.5\"\nweight_rate_per_gram: \"0.03\"\n"), 0o600))

		rates, err := LoadShippingRates(path)
		require.NoError(t, err)
		assert.Equal(t, "7.5", rates.BaseFee.String())
		assert.Equal(t, "0.03", rates.WeightRatePerGram.String())
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rates.yaml")
		require.NoError(t, os.WriteFile(path, []byte("base_fee: \"12\"\n"), 0o600))

		rates, err := LoadShippingRates(path)
		require.NoError(t, err)
		assert.Equal(t, "12", rates.BaseFee.String())
		assert.Equal(t, "0.02", rates.WeightRatePerGram.String())
	})

	t.Run("bad decimal -> error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rates.yaml")
		require.NoError(t, os.WriteFile(path, []byte("base_fee: \"ten\"\n"), 0o600))

		_, err := LoadShippingRates(path)
		assert.Error(t, err)
	})

	t.Run("missing file -> error", func(t *testing.T) {
		_, err := LoadShippingRates(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

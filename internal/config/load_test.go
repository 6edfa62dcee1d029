package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	defer viper.Reset()

	t.Run("Defaults", func(t *testing.T) {
		viper.Reset()

		Load("")

		assert.Equal(t, -1, viper.GetInt("precision"))
		assert.True(t, viper.GetBool("color"))
		assert.False(t, viper.GetBool("plain"))
	})

	t.Run("Load From Env", func(t *testing.T) {
		viper.Reset()
		os.Setenv("CALC_PRECISION", "2")
		defer os.Unsetenv("CALC_PRECISION")

		Load("")
		assert.Equal(t, 2, viper.GetInt("precision"))
	})

	t.Run("Load From File", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		cfgPath := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("precision: 3\ncolor: false\n"), 0644))

		Load(cfgPath)

		assert.Equal(t, 3, viper.GetInt("precision"))
		assert.False(t, viper.GetBool("color"))
	})

	t.Run("Missing File Keeps Defaults", func(t *testing.T) {
		viper.Reset()

		Load(filepath.Join(t.TempDir(), "nope.yaml"))

		assert.Equal(t, -1, viper.GetInt("precision"))
	})
}

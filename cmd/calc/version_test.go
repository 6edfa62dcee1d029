package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var versionCmd *cobra.Command
	for _, c := range rootCmd.Commands() {
		if c.Name() == "version" {
			versionCmd = c
			break
		}
	}
	require.NotNil(t, versionCmd, "version command should be registered")

	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	output := out.String()
	assert.Contains(t, output, "calc version "+version)
	assert.Contains(t, output, "Go Version:")
	assert.Contains(t, output, "Platform:")
}

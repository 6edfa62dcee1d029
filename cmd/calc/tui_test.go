package main

import (
	"bytes"
	"fmt"
	"testing"

	"calc/internal/calculator"
	"calc/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICommand(t *testing.T) {
	originalRunForm := runCalcForm
	originalPiped := checkPipedInput
	defer func() {
		runCalcForm = originalRunForm
		checkPipedInput = originalPiped
	}()
	checkPipedInput = func() bool { return true }

	setup := func(t *testing.T) (*cobra.Command, *bytes.Buffer) {
		t.Helper()
		viper.Reset()
		viper.Set("color", false)
		viper.Set("precision", -1)
		t.Cleanup(viper.Reset)

		cmd := &cobra.Command{}
		var out bytes.Buffer
		cmd.SetOut(&out)
		return cmd, &out
	}

	t.Run("Completed form prints result", func(t *testing.T) {
		runCalcForm = func(m ui.CalcFormModel) (ui.CalcFormModel, error) {
			m.Operand1 = 4
			m.Operand2 = 5
			m.Operator = calculator.OpAdd
			m.Completed = true
			return m, nil
		}

		cmd, out := setup(t)
		err := runTUI(cmd, nil)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Result: 9")
	})

	t.Run("Division by zero reported", func(t *testing.T) {
		runCalcForm = func(m ui.CalcFormModel) (ui.CalcFormModel, error) {
			m.Operand1 = 10
			m.Operand2 = 0
			m.Operator = calculator.OpDivide
			m.Completed = true
			return m, nil
		}

		cmd, out := setup(t)
		err := runTUI(cmd, nil)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Error: Cannot divide by zero.")
		assert.NotContains(t, out.String(), "Result:")
	})

	t.Run("Cancelled form", func(t *testing.T) {
		runCalcForm = func(m ui.CalcFormModel) (ui.CalcFormModel, error) {
			m.Cancelled = true
			return m, nil
		}

		cmd, out := setup(t)
		err := runTUI(cmd, nil)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Cancelled.")
	})

	t.Run("Program failure propagates", func(t *testing.T) {
		runCalcForm = func(m ui.CalcFormModel) (ui.CalcFormModel, error) {
			return m, fmt.Errorf("no tty")
		}

		cmd, _ := setup(t)
		err := runTUI(cmd, nil)
		assert.Error(t, err)
	})
}

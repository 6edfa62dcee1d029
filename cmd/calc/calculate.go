package main

import (
	"bufio"
	"errors"
	"fmt"

	"calc/internal/calculator"
	"calc/internal/ui"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Perform one calculation interactively",
	Long: `Prompts for a first number, an operator (+, -, *, /) and a second
number, then prints the result. With --plain (or piped stdin) the three
inputs are read as raw lines instead of interactive prompts.`,
	RunE: runCalculate,
}

func init() {
	rootCmd.AddCommand(calculateCmd)
}

func runCalculate(cmd *cobra.Command, args []string) error {
	colored := coloredOutput()

	fmt.Fprintln(cmd.OutOrStdout(), ui.Banner(colored))

	read := promptReader(cmd)

	firstText, err := read("Enter first number:")
	if err != nil {
		return err
	}
	a, err := calculator.ParseOperand(firstText)
	if err != nil {
		return fmt.Errorf("invalid first number %q: %w", firstText, err)
	}

	opText, err := read("Enter operator (+, -, *, /):")
	if err != nil {
		return err
	}

	secondText, err := read("Enter second number:")
	if err != nil {
		return err
	}
	b, err := calculator.ParseOperand(secondText)
	if err != nil {
		return fmt.Errorf("invalid second number %q: %w", secondText, err)
	}

	return printOutcome(cmd, a, b, opText)
}

// promptReader returns the input function for this run: survey prompts on
// a terminal, raw line reads when --plain is set or stdin is piped.
func promptReader(cmd *cobra.Command) func(message string) (string, error) {
	if viper.GetBool("plain") || checkPipedInput() {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		return func(message string) (string, error) {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return "", err
				}
				return "", fmt.Errorf("missing input for %q", message)
			}
			return scanner.Text(), nil
		}
	}

	return func(message string) (string, error) {
		var text string
		if err := askOneFunc(&survey.Input{Message: message}, &text); err != nil {
			return "", err
		}
		return text, nil
	}
}

// printOutcome dispatches on the operator text and prints exactly one of
// the three outcome lines. Division by zero and an unknown operator are
// reported as printed messages, not as errors.
func printOutcome(cmd *cobra.Command, a, b float64, opText string) error {
	colored := coloredOutput()
	out := cmd.OutOrStdout()

	op, err := calculator.ParseOperator(opText)
	if err != nil {
		fmt.Fprintln(out, ui.ErrorLine("Invalid operator.", colored))
		return nil
	}

	result, err := calculator.Compute(a, b, op)
	if errors.Is(err, calculator.ErrDivideByZero) {
		fmt.Fprintln(out, ui.ErrorLine("Error: Cannot divide by zero.", colored))
		return nil
	}
	if err != nil {
		fmt.Fprintln(out, ui.ErrorLine("Invalid operator.", colored))
		return nil
	}

	value := calculator.FormatResult(result, viper.GetInt("precision"))
	fmt.Fprintln(out, ui.ResultLine(value, colored))
	return nil
}

package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const guideMarkdown = `# calc

A simple calculator for the terminal. Each invocation performs exactly one
calculation: two numbers, one operator, one printed outcome.

## Usage

Run ` + "`calc`" + ` and answer the three prompts:

1. The first number (any decimal, e.g. ` + "`2.5`" + ` or ` + "`-3`" + `)
2. The operator: one of ` + "`+ - * /`" + `
3. The second number

On success the result is printed as ` + "`Result: <value>`" + `.

## Piped input

With ` + "`--plain`" + ` (or when stdin is piped) the three inputs are read as
raw lines:

` + "```bash" + `
printf '10\n/\n2\n' | calc
` + "```" + `

## Outcomes

- ` + "`Result: <value>`" + ` on success
- ` + "`Error: Cannot divide by zero.`" + ` when dividing by zero
- ` + "`Invalid operator.`" + ` for any operator outside the four symbols

## Other modes

- ` + "`calc tui`" + ` opens a full-screen input form
- ` + "`calc version`" + ` prints build information
`

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the usage guide",
	RunE:  runGuide,
}

func init() {
	rootCmd.AddCommand(guideCmd)
}

func runGuide(cmd *cobra.Command, args []string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to plain text
		fmt.Fprint(cmd.OutOrStdout(), guideMarkdown)
		return nil
	}

	out, err := renderer.Render(guideMarkdown)
	if err != nil {
		fmt.Fprint(cmd.OutOrStdout(), guideMarkdown)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

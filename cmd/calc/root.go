package main

import (
	"fmt"
	"os"

	"calc/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Simple Calculator for the terminal",
	Long: `calc reads two numbers and an operator, performs one of the four
basic arithmetic operations and prints the result. It performs exactly
one calculation per invocation.`,
	SilenceErrors: true,
	RunE:          runCalculate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'calc --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().Int("precision", -1, "decimal places for the result (-1 keeps the default form)")
	rootCmd.PersistentFlags().Bool("plain", false, "read the three inputs as raw lines from stdin")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable styled output")

	viper.BindPFlag("precision", rootCmd.PersistentFlags().Lookup("precision"))
	viper.BindPFlag("plain", rootCmd.PersistentFlags().Lookup("plain"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)
}

// coloredOutput reports whether styled output is enabled for this run.
// Piped input implies piped-style usage, so styling is dropped there too.
func coloredOutput() bool {
	if viper.GetBool("no_color") || !viper.GetBool("color") {
		return false
	}
	return !viper.GetBool("plain") && !checkPipedInput()
}

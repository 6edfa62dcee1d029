package main

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// Wrapper for survey functions to allow mocking in tests
var askOneFunc = survey.AskOne

// checkPipedInput is a variable to allow mocking in tests
var checkPipedInput = func() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) == 0
}

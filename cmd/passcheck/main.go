package main

import (
	"fmt"
	"os"

	"github.com/jwalitptl/passcheck/pkg/logger"
	"github.com/jwalitptl/passcheck/pkg/password"
)

// sampleCandidate mirrors the password used in the registration walkthrough.
const sampleCandidate = "PythonR0cks!"

func main() {
	log := logger.NewLogger(nil)

	candidates := os.Args[1:]
	if len(candidates) == 0 {
		candidates = []string{sampleCandidate}
	}

	allValid := true
	for _, candidate := range candidates {
		for _, c := range password.Constraints() {
			log.Debug("constraint evaluated",
				"constraint", c.Name,
				"satisfied", c.Check(candidate),
			)
		}

		if password.IsValid(candidate) {
			fmt.Printf("Password %s is valid. Thank you for joining!\n", candidate)
		} else {
			fmt.Printf("Password %s is not valid. Please try again.\n", candidate)
			allValid = false
		}
	}

	if !allValid {
		os.Exit(1)
	}
}

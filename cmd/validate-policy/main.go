package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/marcelsud/library-api/access"
)

/* validate-policy - Standalone CLI tool to validate an access policy file
 * Usage: go run cmd/validate-policy/main.go [policy.yaml]
 * Without arguments the embedded default policy is checked.
 * Exit codes: 0 = valid, 1 = invalid
 */

func main() {
	loader := access.NewLoader()
	source := "embedded default"

	var err error
	if len(os.Args) > 1 {
		source = os.Args[1]
		err = loader.Load(source)
	} else {
		loader, err = access.Default()
	}

	fmt.Printf("Validating access policy: %s\n", source)
	fmt.Println(strings.Repeat("-", 50))

	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ VALIDATION FAILED\n\n")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rules := loader.List()
	fmt.Printf("✓ VALIDATION PASSED\n\n")
	fmt.Printf("Loaded %d permission(s):\n", len(rules))

	for i, rule := range rules {
		roles := make([]string, 0, len(rule.Roles))
		for _, r := range rule.Roles {
			roles = append(roles, r.String())
		}
		fmt.Printf("\n%d. Permission: %s\n", i+1, rule.Permission)
		if rule.Description != "" {
			fmt.Printf("   Description: %s\n", rule.Description)
		}
		fmt.Printf("   Roles:       %s\n", strings.Join(roles, ", "))
	}

	fmt.Printf("\n✓ Policy is valid!\n")
}

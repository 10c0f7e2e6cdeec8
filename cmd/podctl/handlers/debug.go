package handlers

import (
	"fmt"
	"os"
	"strings"

	"github.com/imamik/podctl/internal/config"
)

// debugEnvVars are reported by Debug. Values of secret variables are masked.
var debugEnvVars = []string{
	config.CredentialEnvVar,
	config.EnvAPIURL,
	config.EnvReadinessMaxAttempts,
	config.EnvReadinessInterval,
	config.EnvReadinessRequestTimeout,
	"AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY",
}

var secretEnvVars = map[string]bool{
	config.CredentialEnvVar: true,
	"AWS_SECRET_ACCESS_KEY": true,
}

// Replaceable in tests.
var (
	executablePath = os.Executable
	workingDir     = os.Getwd
)

// ParsedFlag is one flag after a successful parse.
type ParsedFlag struct {
	Name    string
	Value   string
	Changed bool
}

// ParseResult is the outcome of parsing arguments as deploy flags.
type ParseResult struct {
	Flags []ParsedFlag
	Args  []string
}

// ParseFunc parses arguments the way the deploy command would.
type ParseFunc func(args []string) (*ParseResult, error)

// Debug prints how the process sees argv and its environment, then runs
// parse over args and reports the result or the error and its type.
// It never fails.
func Debug(argv, args []string, parse ParseFunc) {
	printTitle("=== DEBUG: argument analysis ===")
	fmt.Printf("argv = %q\n", argv)
	fmt.Printf("len(argv) = %d\n", len(argv))
	for i, arg := range argv {
		fmt.Printf("argv[%d] = '%s'\n", i, arg)
	}

	fmt.Println()
	printTitle("=== Environment info ===")
	if exe, err := executablePath(); err == nil {
		fmt.Printf("executable = %s\n", exe)
	} else {
		fmt.Printf("executable = <unknown: %v>\n", err)
	}
	if wd, err := workingDir(); err == nil {
		fmt.Printf("working directory = %s\n", wd)
	} else {
		fmt.Printf("working directory = <unknown: %v>\n", err)
	}
	for _, name := range debugEnvVars {
		fmt.Printf("%s = %s\n", name, describeEnv(name))
	}

	fmt.Println()
	printTitle("=== Trying deploy flag parsing ===")
	fmt.Printf("args = %q\n", args)
	result, err := parse(args)
	if err != nil {
		fmt.Printf("parse failed: %v\n", err)
		fmt.Printf("error type: %T\n", err)
		return
	}

	fmt.Println("parse succeeded:")
	for _, f := range result.Flags {
		marker := ""
		if f.Changed {
			marker = " (set)"
		}
		fmt.Printf("  --%s = %q%s\n", f.Name, f.Value, marker)
	}
	if len(result.Args) > 0 {
		fmt.Printf("  positional = %q\n", result.Args)
	}
}

// describeEnv returns the value of name for display.
func describeEnv(name string) string {
	val, ok := os.LookupEnv(name)
	if !ok {
		return "<not set>"
	}
	if secretEnvVars[name] {
		return maskSecret(val)
	}
	return val
}

// maskSecret hides all but the last four characters of long secrets.
func maskSecret(s string) string {
	if s == "" {
		return "<empty>"
	}
	if len(s) <= 8 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/abrishk26/rlox/interp"
	"github.com/spf13/cobra"
)

var version string

// Exit codes follow sysexits: 65 for errors in the source, 70 for runtime
// failures.
const (
	exitCodeDataErr  = 65
	exitCodeSoftware = 70
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rlox",
		Short:         "The rlox programming language",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newReplCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newASTCmd())
	return rootCmd
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script>",
		Short: "Run an rlox script",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			source, err := os.ReadFile(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			errs := interp.Run(string(source), os.Stdout, os.Stdin)
			if len(errs) == 0 {
				return
			}
			exitCode := exitCodeDataErr
			for _, err := range errs {
				fmt.Fprintln(os.Stderr, err)
				var runtimeErr interp.RuntimeError
				if errors.As(err, &runtimeErr) {
					exitCode = exitCodeSoftware
				}
			}
			os.Exit(exitCode)
		},
	}
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			repl(os.Stdin)
		},
	}
}

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <script>",
		Short: "Print the tokens of an rlox script",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			source, err := os.ReadFile(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			tokens, errs := interp.NewScanner(string(source)).ScanTokens()
			for _, token := range tokens {
				fmt.Println(token)
			}
			if len(errs) > 0 {
				for _, err := range errs {
					fmt.Fprintln(os.Stderr, err)
				}
				os.Exit(exitCodeDataErr)
			}
		},
	}
}

func newASTCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast <expression>",
		Short: "Parse an expression and print its structure and value",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			tokens, errs := interp.NewScanner(args[0]).ScanTokens()
			if len(errs) > 0 {
				for _, err := range errs {
					fmt.Fprintln(os.Stderr, err)
				}
				os.Exit(exitCodeDataErr)
			}
			expr, err := interp.NewParser(tokens).ParseExpression()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(exitCodeDataErr)
			}
			value, err := interp.NewInterpreter(os.Stdout, os.Stdin).Evaluate(expr)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(exitCodeSoftware)
			}
			fmt.Printf("expression (%s)\nvalue (%s)\n", interp.FormatExpr(expr), value)
		},
	}
}

// repl evaluates lines as they come in. Definitions persist across lines, a
// bare expression prints its value.
func repl(in *os.File) {
	interpreter := interp.NewInterpreter(os.Stdout, in)
	scanner := bufio.NewScanner(in)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			evalLine(interpreter, line)
		}
		fmt.Print("> ")
	}
	fmt.Println()
}

func evalLine(interpreter *interp.Interpreter, line string) {
	tokens, errs := interp.NewScanner(line).ScanTokens()
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}
		return
	}

	// Try the line as an expression first so values echo back, fall back
	// to statements.
	if expr, err := interp.NewParser(tokens).ParseExpression(); err == nil {
		if resolveErrs := interp.NewResolver(interpreter).ResolveExpr(expr); len(resolveErrs) > 0 {
			for _, err := range resolveErrs {
				fmt.Fprintln(os.Stderr, err)
			}
			return
		}
		value, err := interpreter.Evaluate(expr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Println(value)
		return
	}

	stmts, parseErrs := interp.NewParser(tokens).Parse()
	if len(parseErrs) > 0 {
		for _, err := range parseErrs {
			fmt.Fprintln(os.Stderr, err)
		}
		return
	}
	if resolveErrs := interp.NewResolver(interpreter).Resolve(stmts); len(resolveErrs) > 0 {
		for _, err := range resolveErrs {
			fmt.Fprintln(os.Stderr, err)
		}
		return
	}
	if err := interpreter.Interpret(stmts); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

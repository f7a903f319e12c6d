// Command igsdb-validate checks product JSON files against the controlled
// vocabularies and submission rules before they are sent to the database.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"igsdbcore/internal/infra/persistence/memory"
	"igsdbcore/pkg/product"
)

var exitFunc = os.Exit

func main() {
	code := cli(os.Args[1:], os.Stdout, os.Stderr)
	exitFunc(code)
}

func cli(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("igsdb-validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var warnAsError bool
	fs.BoolVar(&warnAsError, "strict", false, "treat warn-severity violations as failures")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	paths := fs.Args()
	if len(paths) == 0 {
		fmt.Fprintln(stderr, "usage: igsdb-validate [-strict] <product.json> [...]")
		return 2
	}
	failed := false
	for _, path := range paths {
		if err := validateFile(path, warnAsError, stdout); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		return 1
	}
	fmt.Fprintln(stdout, "All products valid.")
	return 0
}

func validateFile(path string, warnAsError bool, stdout io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var p product.BaseProduct
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decode product: %w", err)
	}
	store := memory.NewStore(product.NewRulesEngine())
	res, err := store.RunInTransaction(context.Background(), func(tx product.Transaction) error {
		_, err := tx.CreateProduct(p)
		return err
	})
	for _, v := range res.Violations {
		fmt.Fprintf(stdout, "%s: [%s] %s: %s\n", path, v.Severity, v.Rule, v.Message)
	}
	if err != nil {
		return err
	}
	if warnAsError {
		for _, v := range res.Violations {
			if v.Severity == product.SeverityWarn {
				return fmt.Errorf("warn-severity violations present")
			}
		}
	}
	return nil
}

// Copyright 2026 QGrad Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package main provides the QGrad CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qgrad-ml/qgrad/cost"
)

const version = "v0.1.0-dev"

var (
	nParams   int
	nSteps    int
	batchSize int

	rootCmd = &cobra.Command{
		Use:   "qgrad",
		Short: "Parameter-shift gradients for quantum expectation oracles",
		Long: `QGrad computes exact gradients of black-box quantum expectation
values via the parameter-shift rule and models the circuit-execution
budget of gradient-based optimization.`,
	}

	costCmd = &cobra.Command{
		Use:   "cost",
		Short: "Compare parameter-shift and backprop oracle budgets",
		Long: `Reports how many circuit executions a gradient-descent run needs
under the parameter-shift strategy (two per parameter per step) against
the one-call-per-step reverse-mode baseline.`,
		RunE: runCost,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("QGrad %s\n", version)
		},
	}
)

func init() {
	costCmd.Flags().IntVar(&nParams, "params", 0, "number of circuit parameters")
	costCmd.Flags().IntVar(&nSteps, "steps", 0, "number of optimization steps")
	costCmd.Flags().IntVar(&batchSize, "batch", 1, "batch size multiplier")

	rootCmd.AddCommand(costCmd)
	rootCmd.AddCommand(versionCmd)
}

func runCost(_ *cobra.Command, _ []string) error {
	shiftBudget, err := cost.BatchedShiftEvaluations(nParams, nSteps, batchSize)
	if err != nil {
		return err
	}
	backprop, err := cost.BackpropEvaluations(nSteps)
	if err != nil {
		return err
	}

	fmt.Printf("parameters:       %d\n", nParams)
	fmt.Printf("steps:            %d\n", nSteps)
	if batchSize != 1 {
		fmt.Printf("batch size:       %d\n", batchSize)
	}
	fmt.Printf("parameter-shift:  %d circuit executions\n", shiftBudget)
	fmt.Printf("backprop baseline: %d circuit executions\n", backprop)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

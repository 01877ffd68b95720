package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/san-kum/nants/internal/algebra"
	"github.com/san-kum/nants/internal/config"
	"github.com/san-kum/nants/internal/viz"
)

func solveSystem(cmd *cobra.Command, args []string) error {
	sys, err := config.LoadLinearSystem(args[0])
	if err != nil {
		return err
	}
	a, b, err := sys.Matrices()
	if err != nil {
		return err
	}

	x, err := a.Solve(b)
	if err != nil {
		return err
	}
	if err := algebra.CheckFinite(x); err != nil {
		return err
	}
	logger.Debugf("solved %s system", a.Size())

	ax, err := a.Multiply(x)
	if err != nil {
		return err
	}
	r, err := ax.Subtract(b)
	if err != nil {
		return err
	}
	residual := 0.0
	for _, v := range r.Data() {
		residual = max(residual, math.Abs(v))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Header("solution of %s system", a.Size()))
	for i := 0; i < x.Rows(); i++ {
		fmt.Fprintf(out, "x%d = %.10g\n", i, x.At(i, 0))
	}
	fmt.Fprintf(out, "max residual: %.3e\n", residual)
	return nil
}

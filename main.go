package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"q.log/dualsimplex/instance"
	"q.log/dualsimplex/model"
	"q.log/dualsimplex/report"
	"q.log/dualsimplex/simplex"
	"q.log/dualsimplex/verify"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("dualsimplex: ")

	var (
		mpsFile  = flag.String("mps", "", "equality-form MPS file; the reference problem is solved when empty")
		basisArg = flag.String("basis", "", "initial basis as 1-based variable numbers, e.g. 1,2,5")
		check    = flag.Bool("verify", false, "cross-check the optimum with gonum's float simplex")
		quiet    = flag.Bool("quiet", false, "print only the outcome")
	)
	flag.Parse()

	p, err := load(*mpsFile, *basisArg)
	if err != nil {
		log.Fatal(err)
	}

	var out io.Writer = os.Stdout
	if *quiet {
		out = io.Discard
	}
	res, err := simplex.Solve(p, report.NewText(out))
	var ie *simplex.InfeasibleError
	switch {
	case errors.As(err, &ie):
		fmt.Printf("infeasible: %s in row R%d\n", ie.Cause, ie.Row+1)
		os.Exit(2)
	case err != nil:
		log.Fatal(err)
	}
	if *quiet {
		fmt.Printf("optimal: objective %s after %d iterations\n", res.Objective, res.Iterations)
	}

	if *check {
		opt, err := verify.Check(p, res, verify.DefaultTolerance)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("gonum objective: %g\n", opt)
	}
}

func load(mpsFile, basisArg string) (*model.Model, error) {
	if mpsFile == "" {
		return reference()
	}
	basis, err := instance.ParseBasis(basisArg)
	if err != nil {
		return nil, err
	}
	return instance.NewReader(mpsFile).Read(basis)
}

func reference() (*model.Model, error) {
	return model.FromInts(
		[][]int64{
			{1, 0, 3, -1, 0},
			{0, 1, -5, 2, 0},
			{0, 0, 18, -7, 1},
		},
		[]int64{1, 2, -3},
		[]int64{7, 4, 0, 0, 0},
		[]int{0, 1, 4},
	)
}

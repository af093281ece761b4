// Command booth minimizes Booth's function with a particle swarm and reports
// swarm state every iteration.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "github.com/mxk/go-sqlite/sqlite3"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/quebin31/pso"
	"github.com/quebin31/pso/bench"
	"github.com/quebin31/pso/report"
	"github.com/quebin31/pso/swarm"
)

var (
	niter    = flag.Int("iter", 80, "number of iterations to run")
	npar     = flag.Int("n", 10, "number of particles")
	seed     = flag.Uint64("seed", 1, "random seed")
	dbpath   = flag.String("db", "", "sqlite file to record iteration state into (none if empty)")
	plotpath = flag.String("plot", "", "image file for the final particle positions (none if empty)")
)

func main() {
	flag.Parse()
	pso.Rand = rand.New(rand.NewSource(*seed))

	fn := bench.Booth{}
	obj := pso.NewObjective(fn.Eval, true)

	posDist := distuv.Uniform{Min: -10, Max: 10, Src: pso.Rand}
	velDist := distuv.Uniform{Min: -1, Max: 1, Src: pso.Rand}

	opt := swarm.Options{
		Omega: nil, // fresh uniform draw every iteration
		Phi1:  2.0,
		Phi2:  2.0,
	}

	fmt.Println("Parameters:")
	fmt.Printf("- population size: %v\n", *npar)
	fmt.Printf("- initial positions uniform in [%v, %v)\n", posDist.Min, posDist.Max)
	fmt.Printf("- initial velocities uniform in [%v, %v)\n", velDist.Min, velDist.Max)
	fmt.Println("- omega: random in [0, 1) each iteration")
	fmt.Printf("- phi1: %v\n", opt.Phi1)
	fmt.Printf("- phi2: %v\n", opt.Phi2)
	fmt.Printf("- iterations: %v\n", *niter)
	fmt.Println()

	opts := []swarm.Option{}
	if *dbpath != "" {
		db, err := sql.Open("sqlite3", *dbpath)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		opts = append(opts, swarm.DB(db))
	}

	s, err := swarm.New(*npar, 2, posDist, velDist, obj, opts...)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(report.Summary(s, true))

	for i := 0; i < *niter; i++ {
		fmt.Printf("\n>>>> Iteration %v <<<<\n", i+1)
		if err := s.Step(opt); err != nil {
			log.Fatal(err)
		}
		fmt.Println(report.Summary(s, false))
	}

	if *plotpath != "" {
		if err := report.Plot(s, *plotpath); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("\n>>> Global best: x: %v, fitness: %v\n", s.Best(), s.BestVal())
}

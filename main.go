package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/satkit/gosat/config"
	"github.com/satkit/gosat/dimacs"
	"github.com/satkit/gosat/logging"
	"github.com/satkit/gosat/solver"
	"github.com/satkit/gosat/sudoku"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "gosat",
		Short: "gosat solves Boolean satisfiability problems with a CDCL core",
	}
	if err := config.BindFlags(root.PersistentFlags(), v); err != nil {
		panic(err) // only fails if a flag name collides, a programming error
	}

	root.AddCommand(newSolveCmd(v), newSudokuCmd(v))
	return root
}

func newSolveCmd(v *viper.Viper) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "solve [file.cnf]",
		Short: "solve a DIMACS CNF problem, reading stdin if no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.Verbose)
			if err != nil {
				return err
			}
			defer log.Sync()

			in := os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("gosat: opening %q: %v", args[0], err)
				}
				defer f.Close()
				in = f
			}

			pb, err := dimacs.Parse(in)
			if err != nil {
				return fmt.Errorf("gosat: parsing CNF: %v", err)
			}
			log.Debugw("parsed problem", "variables", pb.NbVars, "clauses", len(pb.Clauses))

			s := solver.NewSolver()
			cfg.Apply(s)
			pb.Load(s)
			status := s.Solve()
			log.Infow("solved", "status", status.String())

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("gosat: creating %q: %v", outPath, err)
				}
				defer f.Close()
				out = f
			}
			return dimacs.WriteModel(out, status, s.Assignment())
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "path to write the model to, instead of stdout")
	return cmd
}

func newSudokuCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sudoku [file.json]",
		Short: "solve a Sudoku puzzle given as a JSON grid of rows, 0 marking a blank cell",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.Verbose)
			if err != nil {
				return err
			}
			defer log.Sync()

			in := os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("gosat: opening %q: %v", args[0], err)
				}
				defer f.Close()
				in = f
			}

			var grid sudoku.Grid
			if err := json.NewDecoder(in).Decode(&grid); err != nil {
				return fmt.Errorf("gosat: decoding grid: %v", err)
			}

			enc, err := sudoku.NewEncoder(len(grid))
			if err != nil {
				return fmt.Errorf("gosat: %v", err)
			}
			clauses, err := enc.Encode(grid)
			if err != nil {
				return fmt.Errorf("gosat: encoding puzzle: %v", err)
			}
			log.Debugw("encoded puzzle", "clauses", len(clauses))

			s := solver.NewSolver()
			cfg.Apply(s)
			for _, c := range clauses {
				s.AddClause(c...)
			}
			status := s.Solve()
			log.Infow("solved", "status", status.String())
			if status != solver.Sat {
				fmt.Println(status.String())
				return nil
			}
			printGrid(enc.Decode(s.Assignment()))
			return nil
		},
	}
	return cmd
}

func printGrid(g sudoku.Grid) {
	for _, row := range g {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = strconv.Itoa(v)
		}
		fmt.Println(strings.Join(cells, " "))
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/breakeven"
	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/calculation"
	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/compare"
	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/config"
	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "mortgagetracker %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "mortgagetracker",
	Short: "Mortgage overpayment tracker CLI",
	Long:  "Amortization calculator for two-phase fixed then variable rate mortgages with monthly overpayments",
}

// loadScenario loads and validates a scenario file, applying any
// command-line overpayment override.
func loadScenario(cmd *cobra.Command, args []string) (*config.MortgageInput, error) {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile(args[0])
	if err != nil {
		return nil, err
	}

	if raw, _ := cmd.Flags().GetString("overpayment"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid --overpayment %q: %w", raw, err)
		}
		input.MonthlyOverpayment = amount
		if err := parser.ValidateInput(input); err != nil {
			return nil, err
		}
	}

	return input, nil
}

// buildReport runs the simulation plus its zero-overpayment baseline.
func buildReport(input *config.MortgageInput) (*output.Report, error) {
	engine := calculation.NewEngine()
	terms := input.ToLoanTerms()

	sched, err := engine.Simulate(terms)
	if err != nil {
		return nil, err
	}
	baseline, err := engine.Simulate(terms.WithoutOverpayment())
	if err != nil {
		return nil, err
	}

	return &output.Report{
		Schedule:    sched,
		Baseline:    baseline,
		Breakdown:   calculation.Breakdown(sched.Records),
		GeneratedAt: time.Now(),
	}, nil
}

var calculateCommand = &cobra.Command{
	Use:   "calculate [scenario-file]",
	Short: "Calculate an amortization schedule and summary",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input, err := loadScenario(cmd, args)
		if err != nil {
			log.Fatal(err)
		}

		report, err := buildReport(input)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		formatter, err := output.GetFormatterByName(format)
		if err != nil {
			log.Fatal(err)
		}
		if cf, ok := formatter.(*output.ConsoleFormatter); ok {
			maxRows, _ := cmd.Flags().GetInt("max-rows")
			cf.MaxScheduleRows = maxRows
		}

		data, err := formatter.Format(report)
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(data)
	},
}

var scheduleCommand = &cobra.Command{
	Use:   "schedule [scenario-file]",
	Short: "Print the full month-by-month schedule",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input, err := loadScenario(cmd, args)
		if err != nil {
			log.Fatal(err)
		}

		report, err := buildReport(input)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		var formatter output.Formatter
		switch format {
		case "csv":
			formatter = &output.CSVFormatter{}
		case "console", "":
			formatter = &output.ConsoleFormatter{} // no row cap
		default:
			log.Fatalf("unsupported format: %s (want console or csv)", format)
		}

		data, err := formatter.Format(report)
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(data)
	},
}

var compareCommand = &cobra.Command{
	Use:   "compare [scenario-file]",
	Short: "Compare overpayment amounts against the baseline",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input, err := loadScenario(cmd, args)
		if err != nil {
			log.Fatal(err)
		}

		var overpayments []decimal.Decimal
		if withStr, _ := cmd.Flags().GetString("with"); withStr != "" {
			for _, part := range strings.Split(withStr, ",") {
				amount, err := decimal.NewFromString(strings.TrimSpace(part))
				if err != nil {
					log.Fatalf("invalid --with amount %q: %v", part, err)
				}
				overpayments = append(overpayments, amount)
			}
		}

		engine := compare.NewCompareEngine(calculation.NewEngine())
		compSet, err := engine.Compare(context.Background(), input.ToLoanTerms(), compare.CompareOptions{
			Overpayments: overpayments,
			ScenarioPath: args[0],
		})
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "table", "":
			fmt.Print((&compare.TableFormatter{}).Format(compSet))
		case "csv":
			out, err := (&compare.CSVFormatter{}).Format(compSet)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(out)
		case "json":
			out, err := (&compare.JSONFormatter{Pretty: true}).Format(compSet)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(out)
		default:
			log.Fatalf("unsupported format: %s (want table, csv or json)", format)
		}
	},
}

var breakEvenCommand = &cobra.Command{
	Use:   "breakeven [scenario-file]",
	Short: "Solve for the overpayment that meets a payoff or interest target",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input, err := loadScenario(cmd, args)
		if err != nil {
			log.Fatal(err)
		}

		targetMonths, _ := cmd.Flags().GetInt("target-months")
		targetInterestStr, _ := cmd.Flags().GetString("target-interest")

		req := breakeven.SolveRequest{Terms: input.ToLoanTerms()}
		switch {
		case targetMonths > 0 && targetInterestStr != "":
			log.Fatal("set either --target-months or --target-interest, not both")
		case targetMonths > 0:
			req.Target = breakeven.TargetMonths
			req.TargetMonths = targetMonths
		case targetInterestStr != "":
			amount, err := decimal.NewFromString(targetInterestStr)
			if err != nil {
				log.Fatalf("invalid --target-interest %q: %v", targetInterestStr, err)
			}
			req.Target = breakeven.TargetInterest
			req.TargetInterest = amount
		default:
			log.Fatal("one of --target-months or --target-interest is required")
		}

		solver := breakeven.NewDefaultSolver(calculation.NewEngine())
		result, err := solver.Solve(context.Background(), req)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Monthly Overpayment: %s\n", output.FormatCurrency(result.Overpayment))
		fmt.Printf("Months To Clear:     %d (%s)\n", result.MonthsTaken, output.FormatMonths(result.MonthsTaken))
		fmt.Printf("Total Interest:      %s\n", output.FormatCurrency(result.TotalInterest))
		fmt.Printf("Interest Saved:      %s\n", output.FormatCurrency(result.InterestSaved))
		fmt.Printf("Months Saved:        %d\n", result.MonthsSaved)
		fmt.Printf("Convergence:         %s\n", result.ConvergenceInfo)
	},
}

var reportCommand = &cobra.Command{
	Use:   "report [scenario-file]",
	Short: "Generate a PDF report",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input, err := loadScenario(cmd, args)
		if err != nil {
			log.Fatal(err)
		}

		report, err := buildReport(input)
		if err != nil {
			log.Fatal(err)
		}

		data, err := output.GeneratePDFReport(report)
		if err != nil {
			log.Fatal(err)
		}

		outPath, _ := cmd.Flags().GetString("output")
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %s (%d bytes)\n", outPath, len(data))
	},
}

var validateCommand = &cobra.Command{
	Use:   "validate [scenario-file]",
	Short: "Validate a scenario file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s is valid: loan of %s over %d years\n",
			args[0], output.FormatCurrency(input.LoanAmount()), input.TermYears)
	},
}

func init() {
	calculateCommand.Flags().StringP("format", "f", "console", "Output format (console, csv, json)")
	calculateCommand.Flags().Int("max-rows", 24, "Schedule rows to print in console format (0 = all)")
	calculateCommand.Flags().String("overpayment", "", "Override the scenario's monthly overpayment")

	scheduleCommand.Flags().StringP("format", "f", "console", "Output format (console, csv)")
	scheduleCommand.Flags().String("overpayment", "", "Override the scenario's monthly overpayment")

	compareCommand.Flags().String("with", "", "Comma-separated monthly overpayment amounts to compare")
	compareCommand.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	compareCommand.Flags().String("overpayment", "", "Override the scenario's monthly overpayment")

	breakEvenCommand.Flags().Int("target-months", 0, "Clear the mortgage within this many months")
	breakEvenCommand.Flags().String("target-interest", "", "Keep total interest at or below this amount")
	breakEvenCommand.Flags().String("overpayment", "", "Override the scenario's monthly overpayment")

	reportCommand.Flags().StringP("output", "o", "mortgage-report.pdf", "Output PDF path")
	reportCommand.Flags().String("overpayment", "", "Override the scenario's monthly overpayment")

	rootCmd.AddCommand(calculateCommand)
	rootCmd.AddCommand(scheduleCommand)
	rootCmd.AddCommand(compareCommand)
	rootCmd.AddCommand(breakEvenCommand)
	rootCmd.AddCommand(reportCommand)
	rootCmd.AddCommand(validateCommand)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

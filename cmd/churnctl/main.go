// churnctl exercises the churn prediction API from a terminal: the same
// flows as the dashboard, without the browser.
//
// Usage:
//
//	churnctl health
//	churnctl predict --geography Germany --balance 120000
//	churnctl batch --file customers.csv --out predictions.csv
//	churnctl drift --threshold 0.05
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/helabhl/bank-churn-mlops/batch"
	"github.com/helabhl/bank-churn-mlops/client"
	"github.com/helabhl/bank-churn-mlops/config"
	"github.com/helabhl/bank-churn-mlops/models"
)

func main() {
	app := &cli.App{
		Name:  "churnctl",
		Usage: "Bank churn prediction API client",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api-url",
				Value:   config.DefaultAPIURL,
				Usage:   "Prediction API base URL",
				EnvVars: []string{"API_URL"},
			},
			&cli.IntFlag{
				Name:    "timeout",
				Value:   30,
				Usage:   "HTTP timeout in seconds",
				EnvVars: []string{"HTTP_TIMEOUT_SECONDS"},
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print raw JSON instead of formatted text",
			},
		},
		Commands: []*cli.Command{
			healthCommand(),
			predictCommand(),
			batchCommand(),
			driftCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func apiClient(c *cli.Context) *client.Client {
	return client.New(time.Duration(c.Int("timeout")) * time.Second)
}

func healthCommand() *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "Probe the prediction API health endpoint",
		Action: func(c *cli.Context) error {
			if err := apiClient(c).Health(context.Background(), c.String("api-url")); err != nil {
				return fmt.Errorf("API unreachable: %w", err)
			}
			fmt.Println("API connected")
			return nil
		},
	}
}

func predictCommand() *cli.Command {
	return &cli.Command{
		Name:  "predict",
		Usage: "Score a single customer",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "credit-score", Value: 650, Usage: "Credit score (300-850)"},
			&cli.IntFlag{Name: "age", Value: 35, Usage: "Age (18-100)"},
			&cli.IntFlag{Name: "tenure", Value: 5, Usage: "Tenure in years (0-10)"},
			&cli.Float64Flag{Name: "balance", Value: 50000, Usage: "Account balance"},
			&cli.IntFlag{Name: "products", Value: 2, Usage: "Number of products (1-4)"},
			&cli.IntFlag{Name: "has-card", Value: 1, Usage: "Has credit card (0|1)"},
			&cli.IntFlag{Name: "active", Value: 1, Usage: "Is active member (0|1)"},
			&cli.Float64Flag{Name: "salary", Value: 75000, Usage: "Estimated salary"},
			&cli.StringFlag{Name: "geography", Value: "France", Usage: "France, Germany or Spain"},
		},
		Action: func(c *cli.Context) error {
			input := models.CustomerFormInput{
				CreditScore:     c.Int("credit-score"),
				Age:             c.Int("age"),
				Tenure:          c.Int("tenure"),
				Balance:         c.Float64("balance"),
				NumOfProducts:   c.Int("products"),
				HasCrCard:       c.Int("has-card"),
				IsActiveMember:  c.Int("active"),
				EstimatedSalary: c.Float64("salary"),
				Geography:       c.String("geography"),
			}

			result, err := apiClient(c).Predict(context.Background(), c.String("api-url"), input.Record())
			if err != nil {
				return err
			}

			if c.Bool("json") {
				return printJSON(result)
			}
			label := "Stay"
			if result.Prediction == 1 {
				label = "Churn"
			}
			fmt.Printf("Churn probability: %.2f%%\n", result.ChurnProbability*100)
			fmt.Printf("Prediction:        %s\n", label)
			fmt.Printf("Risk level:        %s\n", result.RiskLevel)
			return nil
		},
	}
}

func batchCommand() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "Score every row of a CSV file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Required: true, Usage: "Input CSV path"},
			&cli.StringFlag{Name: "out", Value: "predictions.csv", Usage: "Output CSV path"},
		},
		Action: func(c *cli.Context) error {
			f, err := os.Open(c.String("file"))
			if err != nil {
				return err
			}
			defer f.Close()

			table, err := batch.Parse(f)
			if err != nil {
				return err
			}

			processed := table.DeriveGeography()
			if missing := processed.MissingColumns(); len(missing) > 0 {
				return fmt.Errorf("missing columns in CSV: %v", missing)
			}

			records, err := processed.Records()
			if err != nil {
				return err
			}

			predictions, err := apiClient(c).PredictBatch(context.Background(), c.String("api-url"), records)
			if err != nil {
				return err
			}

			merged, err := batch.Merge(table, predictions)
			if err != nil {
				return err
			}

			csvText, err := merged.CSV()
			if err != nil {
				return err
			}
			if err := os.WriteFile(c.String("out"), []byte(csvText), 0o644); err != nil {
				return err
			}

			fmt.Printf("Processed %d records -> %s\n", len(predictions), c.String("out"))
			return nil
		},
	}
}

func driftCommand() *cli.Command {
	return &cli.Command{
		Name:  "drift",
		Usage: "Run a drift check against reference data",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "threshold", Value: 0.05, Usage: "p-value threshold (0.01-0.10)"},
		},
		Action: func(c *cli.Context) error {
			threshold := c.Float64("threshold")
			if threshold < 0.01 || threshold > 0.10 {
				return fmt.Errorf("threshold must be between 0.01 and 0.10")
			}

			report, err := apiClient(c).CheckDrift(context.Background(), c.String("api-url"), threshold)
			if err != nil {
				return err
			}

			if c.Bool("json") {
				return printJSON(report)
			}
			fmt.Printf("Features analyzed:   %d\n", report.FeaturesAnalyzed)
			fmt.Printf("Features with drift: %d\n", report.FeaturesDrifted)
			if report.FeaturesDrifted > 0 {
				fmt.Println("Data drift detected!")
			} else {
				fmt.Println("No data drift detected.")
			}
			return nil
		},
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

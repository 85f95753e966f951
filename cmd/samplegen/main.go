// samplegen writes a synthetic customer CSV for exercising the batch
// prediction flow. Values stay inside the ranges the model was trained on,
// and Geography is written as the raw category so the indicator derivation
// path gets exercised too.
package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/brianvoe/gofakeit/v7"
)

var geographies = []string{"France", "Germany", "Spain"}

func main() {
	rows := flag.Int("rows", 50, "Number of customers to generate")
	out := flag.String("out", "customers.csv", "Output CSV path")
	seed := flag.Uint64("seed", 0, "Random seed (0 for random)")
	flag.Parse()

	faker := gofakeit.New(*seed)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Error creating output file: %v", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"CreditScore", "Age", "Tenure", "Balance", "NumOfProducts",
		"HasCrCard", "IsActiveMember", "EstimatedSalary", "Geography",
	}
	if err := w.Write(header); err != nil {
		log.Fatalf("Error writing header: %v", err)
	}

	for range *rows {
		row := []string{
			strconv.Itoa(faker.Number(300, 850)),
			strconv.Itoa(faker.Number(18, 100)),
			strconv.Itoa(faker.Number(0, 10)),
			strconv.FormatFloat(faker.Float64Range(0, 250000), 'f', 2, 64),
			strconv.Itoa(faker.Number(1, 4)),
			strconv.Itoa(faker.Number(0, 1)),
			strconv.Itoa(faker.Number(0, 1)),
			strconv.FormatFloat(faker.Float64Range(0, 200000), 'f', 2, 64),
			faker.RandomString(geographies),
		}
		if err := w.Write(row); err != nil {
			log.Fatalf("Error writing row: %v", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("Error flushing CSV: %v", err)
	}

	log.Printf("Wrote %d customers to %s", *rows, *out)
}

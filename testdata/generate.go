// Command generate rebuilds the sample parquet files in this directory.
//
// Run it from testdata/ with `go run generate.go`. The go tool ignores
// testdata directories, so this file is never compiled as part of the
// module.
package main

import (
	"log"
	"math"
	"os"

	"github.com/parquet-go/parquet-go"
)

type User struct {
	Active bool    `parquet:"active"`
	Age    int32   `parquet:"age"`
	ID     int64   `parquet:"id"`
	Name   string  `parquet:"name"`
	Score  float64 `parquet:"score"`
}

type Measurement struct {
	ID    int64   `parquet:"id"`
	Value float64 `parquet:"value"`
}

func main() {
	users := []User{
		{ID: 1, Name: "alice", Age: 30, Active: true, Score: 95.5},
		{ID: 2, Name: "bob", Age: 25, Active: false, Score: 82.3},
		{ID: 3, Name: "charlie", Age: 35, Active: true, Score: 88.7},
		{ID: 4, Name: "diana", Age: 28, Active: true, Score: 91.2},
		{ID: 5, Name: "eve", Age: 42, Active: false, Score: 76.8},
	}
	writeFile("simple.parquet", users)

	// NaN survives the parquet round trip but has no JSON encoding, so
	// this file exercises the json format's failure path.
	measurements := []Measurement{
		{ID: 1, Value: 0.5},
		{ID: 2, Value: math.NaN()},
		{ID: 3, Value: math.Inf(1)},
	}
	writeFile("nonfinite.parquet", measurements)
}

func writeFile[T any](name string, rows []T) {
	file, err := os.Create(name)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(rows); err != nil {
		log.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated %s with %d rows", name, len(rows))
}

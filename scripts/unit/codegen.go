package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

type unit struct {
	Name       string
	Code       string
	Ident      string
	Tokens     []string
	Scale      int
	Multiplier string
}

func main() {
	code, err := generate(filepath.Join("scripts", "unit"))
	if err != nil {
		panic(err)
	}

	// Write the generated Go code to a file
	err = writeToFile("unit_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

// generate renders unit_data.go from the CSV file and the template
// found in dir.
func generate(dir string) ([]byte, error) {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join(dir, "unit_data.csv"))
	if err != nil {
		return nil, fmt.Errorf("error reading CSV file: %v", err)
	}

	// Convert the CSV records to a list of unit objects
	units, err := convertDataToUnits(data)
	if err != nil {
		return nil, fmt.Errorf("error converting CSV records: %v", err)
	}

	// Generate Go code from the unit objects using a template
	code, err := generateGoCode(filepath.Join(dir, "unit_data.tmpl"), units)
	if err != nil {
		return nil, fmt.Errorf("error generating Go code: %v", err)
	}
	return code, nil
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

func convertDataToUnits(data [][]string) ([]unit, error) {
	// Convert the CSV records to unit objects
	units := []unit{}
	for _, rec := range data {
		scale, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, fmt.Errorf("scale of %v: %w", rec[1], err)
		}
		if !token.IsIdentifier(rec[4]) || !token.IsExported(rec[4]) {
			return nil, fmt.Errorf("identifier of %v: %q is not an exported name", rec[1], rec[4])
		}
		tokens := []string{rec[1]}
		if rec[2] != "" && !strings.EqualFold(rec[2], rec[1]) {
			tokens = append(tokens, rec[2])
		}
		u := unit{
			Name:       rec[0],
			Code:       rec[1],
			Ident:      rec[4],
			Tokens:     tokens,
			Scale:      scale,
			Multiplier: "1" + strings.Repeat("0", scale),
		}
		units = append(units, u)
	}

	// Units are indexed from the smallest to the largest
	sort.Slice(units, func(i, j int) bool {
		return units[i].Scale < units[j].Scale
	})
	return units, nil
}

func generateGoCode(filename string, units []unit) ([]byte, error) {
	// Create a new template object from the template file
	fmap := template.FuncMap{
		"upper": strings.ToUpper,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, units)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}

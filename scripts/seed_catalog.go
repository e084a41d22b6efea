// seed_catalog.go — standalone script to parse a CSV manifest and seed
// catalog datasets via the Appraise API.
//
// Manifest columns: name, source, citations, instances, split,
// has_missing, documented. Empty cells stay unknown rather than false.
//
// Usage:
//
//	go run scripts/seed_catalog.go -manifest /path/to/datasets.csv -api http://localhost:8700
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
)

type datasetMetrics struct {
	Split                          *bool  `json:"split,omitempty"`
	HasMissingValues               *bool  `json:"has_missing_values,omitempty"`
	ExternalDocumentationAvailable *bool  `json:"external_documentation_available,omitempty"`
	InstancesNumber                *int64 `json:"instances_number,omitempty"`
	NumCitations                   *int64 `json:"num_citations,omitempty"`
}

type datasetPayload struct {
	Name    string         `json:"name"`
	Source  string         `json:"source,omitempty"`
	Metrics datasetMetrics `json:"metrics"`
}

func main() {
	manifestPath := flag.String("manifest", "datasets.csv", "path to dataset manifest CSV")
	apiURL := flag.String("api", "http://localhost:8700", "Appraise API base URL")
	dryRun := flag.Bool("dry-run", false, "print payloads without posting")
	flag.Parse()

	f, err := os.Open(*manifestPath)
	if err != nil {
		log.Fatalf("open manifest: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		log.Fatalf("parse manifest: %v", err)
	}
	if len(records) < 2 {
		log.Fatal("manifest has no data rows")
	}

	col := map[string]int{}
	for i, h := range records[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var payloads []datasetPayload
	for _, row := range records[1:] {
		name := cell(row, col, "name")
		if name == "" {
			continue
		}
		payloads = append(payloads, datasetPayload{
			Name:   name,
			Source: cell(row, col, "source"),
			Metrics: datasetMetrics{
				Split:                          parseBool(cell(row, col, "split")),
				HasMissingValues:               parseBool(cell(row, col, "has_missing")),
				ExternalDocumentationAvailable: parseBool(cell(row, col, "documented")),
				InstancesNumber:                parseInt(cell(row, col, "instances")),
				NumCitations:                   parseInt(cell(row, col, "citations")),
			},
		})
	}

	log.Printf("parsed %d datasets from %s", len(payloads), *manifestPath)

	for _, p := range payloads {
		body, _ := json.MarshalIndent(p, "", "  ")
		if *dryRun {
			fmt.Println(string(body))
			continue
		}
		resp, err := http.Post(*apiURL+"/api/v1/datasets", "application/json", bytes.NewReader(body))
		if err != nil {
			log.Printf("post %s: %v", p.Name, err)
			continue
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			log.Printf("post %s: unexpected status %d", p.Name, resp.StatusCode)
			continue
		}
		log.Printf("created %s", p.Name)
	}
}

func cell(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseBool(s string) *bool {
	if s == "" {
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &b
}

func parseInt(s string) *int64 {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/nants/internal/dynamo"
)

type ExportData struct {
	RunMetadata
	Times  []float64 `json:"times"`
	States []Row     `json:"states"`
}

func newExport(meta RunMetadata, sol *dynamo.Solution) ExportData {
	data := ExportData{
		RunMetadata: meta,
		Times:       sol.T,
		States:      make([]Row, sol.N),
	}
	for i, s := range sol.States() {
		data.States[i] = Row(s)
	}
	return data
}

// ExportJSON writes the run with one state vector per sample.
func ExportJSON(w io.Writer, meta RunMetadata, sol *dynamo.Solution) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExport(meta, sol))
}

func ExportJSONFile(path string, meta RunMetadata, sol *dynamo.Solution) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportJSON(file, meta, sol)
}

/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package requestbuilder

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Cell records where a notebook code cell landed in the combined source.
type Cell struct {
	// Number is the cell's 1-based position among all notebook cells.
	Number int
	// StartLine is the first line of the cell within the combined code.
	StartLine int
}

// cellSource accepts both spellings the notebook format allows: a list of
// lines or a single string.
type cellSource []string

func (s *cellSource) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*s = cellSource{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = cellSource(many)
	return nil
}

type notebook struct {
	Cells []struct {
		CellType string     `json:"cell_type"`
		Source   cellSource `json:"source"`
	} `json:"cells"`
}

// NotebookCode extracts the code cells from a Jupyter notebook and joins
// them into a single reviewable source with a blank line between cells.
// Cells that are not code, or contain only whitespace, are skipped.
func NotebookCode(content string) (string, []Cell, error) {
	var nb notebook
	if err := json.Unmarshal([]byte(content), &nb); err != nil {
		return "", nil, fmt.Errorf("parsing notebook: %w", err)
	}

	var cells []string
	var meta []Cell
	line := 1
	for i, cell := range nb.Cells {
		if cell.CellType != "code" {
			continue
		}
		source := strings.Join(cell.Source, "")
		if strings.TrimSpace(source) == "" {
			continue
		}
		cells = append(cells, source)
		meta = append(meta, Cell{Number: i + 1, StartLine: line})
		line += strings.Count(source, "\n") + 2
	}
	return strings.Join(cells, "\n\n"), meta, nil
}

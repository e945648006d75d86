package vm

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"sort"
)

// PerformanceStatistics tracks per-opcode execution counts across a
// run. It is a scaled-down counterpart of the teacher's performance
// statistics module: Custom32 has no cycle-accurate timing model, so
// there is nothing here beyond instruction-mix counting.
type PerformanceStatistics struct {
	Total    uint64
	ByOpcode map[string]uint64
}

// NewPerformanceStatistics creates an empty counter set.
func NewPerformanceStatistics() *PerformanceStatistics {
	return &PerformanceStatistics{ByOpcode: make(map[string]uint64)}
}

func (s *PerformanceStatistics) record(op string) {
	s.Total++
	s.ByOpcode[op]++
}

type opcodeCount struct {
	Opcode string `json:"opcode"`
	Count  uint64 `json:"count"`
}

func (s *PerformanceStatistics) sorted() []opcodeCount {
	out := make([]opcodeCount, 0, len(s.ByOpcode))
	for op, n := range s.ByOpcode {
		out = append(out, opcodeCount{Opcode: op, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Opcode < out[j].Opcode
	})
	return out
}

// ExportJSON writes {"total": n, "by_opcode": [...]}.
func (s *PerformanceStatistics) ExportJSON(w io.Writer) error {
	payload := struct {
		Total    uint64        `json:"total"`
		ByOpcode []opcodeCount `json:"by_opcode"`
	}{Total: s.Total, ByOpcode: s.sorted()}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// ExportCSV writes "opcode,count" rows, most-executed first.
func (s *PerformanceStatistics) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"opcode", "count"}); err != nil {
		return err
	}
	for _, oc := range s.sorted() {
		if err := cw.Write([]string{oc.Opcode, fmt.Sprintf("%d", oc.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var statsHTMLTemplate = template.Must(template.New("stats").Parse(`<!DOCTYPE html>
<html><head><title>Custom32 execution statistics</title></head>
<body>
<h1>Execution statistics</h1>
<p>Total instructions executed: {{.Total}}</p>
<table border="1">
<tr><th>Opcode</th><th>Count</th></tr>
{{range .ByOpcode}}<tr><td>{{.Opcode}}</td><td>{{.Count}}</td></tr>
{{end}}
</table>
</body></html>
`))

// ExportHTML writes a minimal HTML report of the opcode mix.
func (s *PerformanceStatistics) ExportHTML(w io.Writer) error {
	payload := struct {
		Total    uint64
		ByOpcode []opcodeCount
	}{Total: s.Total, ByOpcode: s.sorted()}
	return statsHTMLTemplate.Execute(w, payload)
}

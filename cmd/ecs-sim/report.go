package main

import (
	"bytes"
	"fmt"
	"io"
	"text/template"

	"github.com/plus3/sigecs/ecs"
	"github.com/plus3/sigecs/ecs/inspect"
)

type Report struct {
	Ticks     int
	Collided  bool
	First     ecs.EntityId
	Second    ecs.EntityId
	Entities  []inspect.EntityInfo
	Dump      bool
	Occupancy string
	Timings   string
}

func newReport(ticks int, collision *ecs.CollisionSystem, table *ecs.Table, stats *ecs.SchedulerStats, dump bool) (*Report, error) {
	r := &Report{
		Ticks:    ticks,
		Entities: inspect.CollectEntities(table, 0),
		Dump:     dump,
	}
	r.First, r.Second, r.Collided = collision.Pair()

	if !dump {
		return r, nil
	}

	var buf bytes.Buffer
	if err := inspect.WriteTableStats(&buf, ecs.CollectStats(table)); err != nil {
		return nil, fmt.Errorf("render occupancy: %w", err)
	}
	r.Occupancy = buf.String()

	buf.Reset()
	if err := inspect.WriteSchedulerStats(&buf, stats); err != nil {
		return nil, fmt.Errorf("render system timings: %w", err)
	}
	r.Timings = buf.String()
	return r, nil
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Simulation Report

- **Ticks Run:** {{.Ticks}}
{{- if .Collided}}
- **Collision:** entities {{.First}} and {{.Second}}
{{- else}}
- **Collision:** none
{{- end}}

## Final Entities
{{range .Entities}}- {{.ID}} [{{.Signature}}]{{range .Components}} {{.}}{{end}}
{{end}}
{{- if .Dump}}
## Occupancy
{{.Occupancy}}
## System Timings
{{.Timings}}
{{- end}}
`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

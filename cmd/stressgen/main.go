// Command stressgen emits the generated component fixtures used by
// cmd/world-stress. Regenerate after changing the component count:
//
//	go run ./cmd/stressgen -count 16 -out cmd/world-stress/components_gen.go
package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

const fileTemplate = `// Code generated by stressgen; DO NOT EDIT.

package main

import (
	"math/rand"

	"github.com/plus3/entworld/ecs"
)

const generatedComponentCount = {{.Count}}

{{range .Kinds}}
type StressComp{{.}} struct {
	Value  int64
	Weight float64
	Label  string
}
{{end}}

func attachComponent(world *ecs.World, e ecs.Entity, kind int, rng *rand.Rand) {
	switch kind % generatedComponentCount {
{{- range .Kinds}}
	case {{.}}:
		ecs.Add(world, e, StressComp{{.}}{Value: rng.Int63(), Weight: rng.Float64(), Label: "comp{{.}}"})
{{- end}}
	}
}

func mutateComponent(world *ecs.World, e ecs.Entity, kind int, rng *rand.Rand) bool {
	switch kind % generatedComponentCount {
{{- range .Kinds}}
	case {{.}}:
		if c := ecs.GetMut[StressComp{{.}}](world, e); c != nil {
			c.Value = rng.Int63()
			return true
		}
{{- end}}
	}
	return false
}
`

type templateData struct {
	Count int
	Kinds []int
}

func main() {
	count := flag.Int("count", 16, "Number of component types to generate.")
	out := flag.String("out", "components_gen.go", "Output file path.")
	flag.Parse()

	if *count < 1 {
		log.Fatal("count must be at least 1")
	}

	data := templateData{Count: *count}
	for i := 0; i < *count; i++ {
		data.Kinds = append(data.Kinds, i)
	}

	tmpl, err := template.New("components").Parse(fileTemplate)
	if err != nil {
		log.Fatalf("parse template: %v", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Fatalf("execute template: %v", err)
	}

	// imports.Process both formats the output and verifies it parses.
	formatted, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("format generated source: %v", err)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}

	log.Printf("wrote %s (%d component types)", *out, *count)
}

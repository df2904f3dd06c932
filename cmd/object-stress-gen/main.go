// object-stress-gen emits the generated stress component set consumed by
// cmd/object-stress. Run it when changing the component count:
//
//	go run ./cmd/object-stress-gen -count 12 -out cmd/object-stress/components_generated.go
package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

const fileTemplate = `// Code generated by object-stress-gen. DO NOT EDIT.

package main

import (
	"math/rand"

	"github.com/plus3/gobject/object"
)

// generatedComponentCount is set by the generator's -count flag.
const generatedComponentCount = {{.Count}}

{{range .Indices}}
type StressComponent{{.}} struct {
	object.Base
	A, B  float64
	Ticks int
}

func (c *StressComponent{{.}}) OnStart()  { c.B = float64({{.}} + 1) }
func (c *StressComponent{{.}}) OnUpdate() { c.A = c.A*1.000001 + c.B*0.25; c.Ticks++ }
{{end}}
var generatedAttachers = [generatedComponentCount]func(*object.GameObject){
{{range .Indices}}	func(obj *object.GameObject) { object.AddComponent(obj, &StressComponent{{.}}{}) },
{{end}}}

// AttachRandomComponents attaches n randomly chosen generated components to
// obj. Choices may repeat; the typed attach path replaces duplicates, so the
// object ends up with at most one component of each chosen type.
func AttachRandomComponents(obj *object.GameObject, n int, rng *rand.Rand) {
	for i := 0; i < n; i++ {
		generatedAttachers[rng.Intn(generatedComponentCount)](obj)
	}
}
`

func main() {
	count := flag.Int("count", 12, "Number of stress component types to generate.")
	out := flag.String("out", "components_generated.go", "Output file path.")
	flag.Parse()

	indices := make([]int, *count)
	for i := range indices {
		indices[i] = i
	}

	tmpl, err := template.New("components").Parse(fileTemplate)
	if err != nil {
		log.Fatalf("Failed to parse template: %v", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Count   int
		Indices []int
	}{Count: *count, Indices: indices})
	if err != nil {
		log.Fatalf("Failed to execute template: %v", err)
	}

	// Normalize formatting and imports the same way gofmt/goimports would.
	formatted, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("Failed to format generated source: %v", err)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	log.Printf("Wrote %d stress components to %s", *count, *out)
}

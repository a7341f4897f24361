// Package numbering allocates ordered-list sequence ids for one assembly
// pass. Ids are global to the output document's numbering namespace, so
// allocations for different sections must never collide even though each
// section's markdown counts from 1 on its own.
package numbering

import (
	"fmt"

	"github.com/MohtashamMurshid/md-to-docx/document"
)

// Registry maps ordered-list identities to sequence ids. It is scoped to a
// single assembly pass and must be created fresh for each top-level
// conversion call. It is not safe for concurrent use; sections are
// processed in supplied order.
type Registry struct {
	ids          map[any]int
	max          int
	sectionStart int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[any]int)}
}

// Allocate returns the sequence id for the given list identity, assigning
// the next free id the first time an identity is seen. Repeated calls with
// the same identity return the same id. Ids form a dense increasing run
// starting at 1 with no reuse within the pass.
func (r *Registry) Allocate(identity any) int {
	if id, ok := r.ids[identity]; ok {
		return id
	}
	r.max++
	r.ids[identity] = r.max
	return r.max
}

// BeginSection records the start of a new section and returns the offset
// past which the section's ids will be allocated. The offset is the running
// maximum across all previously processed sections.
func (r *Registry) BeginSection() int {
	r.sectionStart = r.max
	return r.sectionStart
}

// SectionCount returns how many ids the current section has allocated so far.
func (r *Registry) SectionCount() int {
	return r.max - r.sectionStart
}

// Max returns the highest sequence id allocated in this pass.
func (r *Registry) Max() int {
	return r.max
}

// Reference returns the sequence-scoped identifier used in the numbering
// configuration for a given id.
func Reference(id int) string {
	return fmt.Sprintf("ordered-%d", id)
}

// numbering geometry per nesting depth, in twips.
const (
	levelIndentStep = 720
	levelHanging    = 360
	maxLevels       = 9
)

// Definitions builds the numbering configuration covering ids 1..Max().
// Every ordered list in the document references exactly one entry.
func (r *Registry) Definitions() []document.NumberingDef {
	defs := make([]document.NumberingDef, 0, r.max)
	for id := 1; id <= r.max; id++ {
		levels := make([]document.NumberingLevel, maxLevels)
		for lvl := 0; lvl < maxLevels; lvl++ {
			levels[lvl] = document.NumberingLevel{
				Level:        lvl,
				Format:       "decimal",
				Text:         fmt.Sprintf("%%%d.", lvl+1),
				Alignment:    "left",
				IndentTwips:  levelIndentStep * (lvl + 1),
				HangingTwips: levelHanging,
			}
		}
		defs = append(defs, document.NumberingDef{
			Reference: Reference(id),
			Levels:    levels,
		})
	}
	return defs
}

// Package layoutplan decides how long-form content should be laid out:
// which page zone each section occupies, which presentational component
// renders it, how strongly it is emphasized, and where supporting imagery
// belongs. The result is a fully specified layout blueprint that a separate
// rendering collaborator turns into markup.
//
// # Quick Start
//
// Create an engine and generate a blueprint from analyzed sections:
//
//	engine := layoutplan.NewEngine()
//	blueprint := engine.Generate(sections, brand, nil)
//	for _, s := range blueprint.Sections {
//	    fmt.Println(s.Component.PrimaryComponent, s.Layout.Columns)
//	}
//
// Generate never returns an error: unclassifiable content falls back to
// prose, a nil brand profile falls back to documented defaults, and an empty
// section list produces an empty, fully valid blueprint. Correctness
// violations surface as recorded validation issues, not failures.
//
// # Pipeline
//
// Generation proceeds in stages, leaves first:
//
//  1. Section analysis (content type, semantic weight 1-5, constraints)
//  2. Zone assignment (title/centerpiece/trust/cta/bridge/supplementary/
//     boilerplate/main, priority cascade)
//  3. Ordered fold of layout, component, emphasis, and image deciders
//  4. Global breathing-room suggestions, auto-applied at high confidence
//  5. Validation and a human-readable reasoning block
//
// The fold in stage 3 is deliberately sequential: the component-variety
// counter and the image float alternation carry state from one section to
// the next, so sections must be processed in strict document order.
//
// # Guarantees
//
// Featured-snippet targets always receive a single-column layout and a
// component from the FS-compliant subset. Images are never placed between a
// heading and its first paragraph. Brands with motion "static" never receive
// entry animations. Identical inputs yield identical blueprints (pin the
// clock with WithClock for byte-identical output).
//
// # Configuration
//
// Every decider is injectable via functional options, which is how tests
// substitute fakes and how applications plug in a real alignment scorer:
//
//	engine := layoutplan.NewEngine(
//	    layoutplan.WithScorer(myScorer),
//	    layoutplan.WithClock(func() time.Time { return fixed }),
//	)
//
// # Ingestion
//
// The engine consumes a normalized []Section. For markdown documents, the
// internal/sectionize package (used by cmd/layoutplan) splits a document
// into sections and extracts per-document hints from YAML front matter.
package layoutplan

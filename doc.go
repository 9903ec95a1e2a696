// Package attck provides structured, navigable access to the MITRE ATT&CK
// knowledge base: tactics, techniques, mitigations, threat actors, tools,
// and malware, plus a per-technique enrichment dataset of real-world
// command examples and detection queries.
//
// The knowledge base is loaded once and held as process-wide immutable
// state. Collections mint cheap typed views that navigate to their related
// entities lazily:
//
//	kb, err := attck.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, technique := range kb.Techniques() {
//		fmt.Println(technique.ID, technique.Name)
//		for _, actor := range technique.Actors() {
//			fmt.Println("  used by", actor.Name)
//		}
//	}
//
// Command examples joined from the enrichment dataset are searchable:
//
//	for _, match := range kb.SearchCommands("powershell") {
//		fmt.Println(match.Technique.ID, match.MatchedText)
//	}
//
// Update forces a reload of both source documents. The replacement snapshot
// is built completely off to the side and swapped in with a single pointer
// store, so concurrent readers always observe one internally consistent
// document generation.
//
// # Architecture
//
// The library is organized in concern packages:
//
//   - stix: graph-exchange document model and index
//   - entity: typed entity views and relationship resolution
//   - enrichment: per-technique auxiliary dataset and joiner
//   - dataset: document fetching, caching, and configuration
//   - query: CEL expression filters over entity attributes
package attck

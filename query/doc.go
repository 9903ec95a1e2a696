// Package query provides expression-based filtering over entity attribute
// maps using CEL (Common Expression Language).
//
// Expressions see one variable, "technique", bound to the attribute map of
// the entity under test:
//
//	f, err := query.Compile(`technique.platforms.exists(p, p == "Windows")`)
//	if err != nil { ... }
//	ok, err := f.Match(tech.Attributes())
package query

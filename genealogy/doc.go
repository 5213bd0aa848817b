// Package genealogy rebuilds a family tree from flat records and queries it.
//
// A load session runs in a fixed order:
//
//   - ParseCSV(r)            reads rows, checks fields, derives ParentID from each wbs
//   - Validate(family)       read-only check of the global invariants
//   - BuildTree(family)      fills Children from ParentID (idempotent), returns roots
//   - FilterSubtree(...)     bounded depth-first pre-order walk from one root
//   - BuildMigrationTimeline year-ordered index of located births
//
// A wbs ("1.3.2") is a dot-separated path of integer segments: its prefix is the
// parent's wbs and its segment count is the person's depth.
//
// Errors:
//
//   - ErrSchema     missing or unknown columns
//   - ErrField      missing value, non-integer, malformed wbs
//   - ErrIntegrity  duplicated id/wbs, unresolved or inconsistent parent, generation mismatch
//   - ErrQuery      bad root selector, root not found
//
// Each error also matches a specific sentinel such as ErrDuplicateWBS.
package genealogy

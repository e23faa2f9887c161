package koine

// LemmaID identifies a dictionary headword. IDs are assigned densely in
// lexicon load order and are stable for the lifetime of a Store.
type LemmaID uint32

// ParadigmID identifies an inflectional paradigm.
type ParadigmID uint32

// EntityID indexes an entity inside one sentence arena. It is a lookup key,
// not an ownership relation: the arena owns every entity, edges and results
// only reference them.
type EntityID int32

// NoEntity marks an absent entity reference (e.g. the root's head).
const NoEntity EntityID = -1

package types

// EntityID identifies an entity for the lifetime of a session.
type EntityID uint64

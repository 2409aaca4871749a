// internal/types/types.go
package types

// EntityID identifies an entity in the ECS.
type EntityID uint64

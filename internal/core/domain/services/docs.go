// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the marketplace. It implements workflows
// that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ContentSplitter: A domain service for partitioning a cart into per-shop order contents
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services

// Package kernel contains shared value objects and primitives used across
// the domain model: the closed city set, validated addresses, banded id
// sequences, and money helpers.
package kernel

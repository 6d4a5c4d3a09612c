// Package aggregates defines the write boundaries of the claim pipeline.
//
// Each contract names the rows it creates together and the reason codes it
// rejects with. Implementations live in internal/data/aggregates.
package aggregates

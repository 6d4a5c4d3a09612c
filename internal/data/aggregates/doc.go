// Package aggregates implements the pipeline write boundaries over the table
// repos in internal/data/repos/pipeline.
//
// Every write validates and inserts inside one transaction so a rejected or
// failed request leaves no partial rows behind.
package aggregates

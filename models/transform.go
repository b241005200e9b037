package models

// Per-sync transform applied to every file moved through the pipeline.
type TransformMode int

const (
	TransformNone TransformMode = iota
	TransformCompress
	TransformDecompress
)

package gensequence

import "time"

type SequenceType string

const (
	TypeDNA  SequenceType = "DNA"
	TypeRNA  SequenceType = "RNA"
	TypemRNA SequenceType = "mRNA"
	TyperRNA SequenceType = "rRNA"
)

// Record is a single genetic sequence entry. Sequence holds the raw base
// string and can run to megabytes; list queries never select it, so it stays
// empty there and omitempty keeps it out of the serialized items.
type Record struct {
	ID             string       `json:"id"`
	Organism       string       `json:"organism"`
	Gene           string       `json:"gene"`
	SequenceType   SequenceType `json:"sequenceType"`
	Sequence       string       `json:"sequence,omitempty"`
	Description    string       `json:"description"`
	SubmissionDate time.Time    `json:"submissionDate"`
}

// Filters is the genetic-sequence filter descriptor. Zero-valued fields
// impose no constraint.
type Filters struct {
	Organism     string
	Gene         string
	SequenceType SequenceType
	Page         int
	Limit        int
}

// CreateParams contains write parameters for new sequence records.
type CreateParams struct {
	Organism     string
	Gene         string
	SequenceType SequenceType
	Sequence     string
	Description  string
}

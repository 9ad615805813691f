// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DetectionJob is the predicate function for detectionjob builders.
type DetectionJob func(*sql.Selector)

// SourceImage is the predicate function for sourceimage builders.
type SourceImage func(*sql.Selector)

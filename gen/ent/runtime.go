// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/autocare/platetrack/db/ent/schema"
	"github.com/autocare/platetrack/gen/ent/detectionjob"
	"github.com/autocare/platetrack/gen/ent/sourceimage"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	detectionjobFields := schema.DetectionJob{}.Fields()
	_ = detectionjobFields
	// detectionjobDescStatus is the schema descriptor for status field.
	detectionjobDescStatus := detectionjobFields[2].Descriptor()
	// detectionjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	detectionjob.StatusValidator = func() func(string) error {
		validators := detectionjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// detectionjobDescStartedAt is the schema descriptor for started_at field.
	detectionjobDescStartedAt := detectionjobFields[3].Descriptor()
	// detectionjob.DefaultStartedAt holds the default value on creation for the started_at field.
	detectionjob.DefaultStartedAt = detectionjobDescStartedAt.Default.(func() time.Time)
	// detectionjobDescMinConfidence is the schema descriptor for min_confidence field.
	detectionjobDescMinConfidence := detectionjobFields[7].Descriptor()
	// detectionjob.DefaultMinConfidence holds the default value on creation for the min_confidence field.
	detectionjob.DefaultMinConfidence = detectionjobDescMinConfidence.Default.(float64)
	// detectionjobDescNeedsReview is the schema descriptor for needs_review field.
	detectionjobDescNeedsReview := detectionjobFields[8].Descriptor()
	// detectionjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	detectionjob.DefaultNeedsReview = detectionjobDescNeedsReview.Default.(bool)
	// detectionjobDescID is the schema descriptor for id field.
	detectionjobDescID := detectionjobFields[0].Descriptor()
	// detectionjob.DefaultID holds the default value on creation for the id field.
	detectionjob.DefaultID = detectionjobDescID.Default.(func() uuid.UUID)
	sourceimageFields := schema.SourceImage{}.Fields()
	_ = sourceimageFields
	// sourceimageDescSourcePath is the schema descriptor for source_path field.
	sourceimageDescSourcePath := sourceimageFields[1].Descriptor()
	// sourceimage.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	sourceimage.SourcePathValidator = sourceimageDescSourcePath.Validators[0].(func(string) error)
	// sourceimageDescContentHash is the schema descriptor for content_hash field.
	sourceimageDescContentHash := sourceimageFields[2].Descriptor()
	// sourceimage.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	sourceimage.ContentHashValidator = sourceimageDescContentHash.Validators[0].(func([]byte) error)
	// sourceimageDescFilename is the schema descriptor for filename field.
	sourceimageDescFilename := sourceimageFields[3].Descriptor()
	// sourceimage.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	sourceimage.FilenameValidator = sourceimageDescFilename.Validators[0].(func(string) error)
	// sourceimageDescFileExt is the schema descriptor for file_ext field.
	sourceimageDescFileExt := sourceimageFields[4].Descriptor()
	// sourceimage.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	sourceimage.FileExtValidator = sourceimageDescFileExt.Validators[0].(func(string) error)
	// sourceimageDescFileSize is the schema descriptor for file_size field.
	sourceimageDescFileSize := sourceimageFields[5].Descriptor()
	// sourceimage.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	sourceimage.FileSizeValidator = sourceimageDescFileSize.Validators[0].(func(int) error)
	// sourceimageDescUploadedAt is the schema descriptor for uploaded_at field.
	sourceimageDescUploadedAt := sourceimageFields[6].Descriptor()
	// sourceimage.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	sourceimage.DefaultUploadedAt = sourceimageDescUploadedAt.Default.(func() time.Time)
	// sourceimageDescID is the schema descriptor for id field.
	sourceimageDescID := sourceimageFields[0].Descriptor()
	// sourceimage.DefaultID holds the default value on creation for the id field.
	sourceimage.DefaultID = sourceimageDescID.Default.(func() uuid.UUID)
}

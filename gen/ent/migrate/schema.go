// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DetectionJobColumns holds the columns for the "detection_job" table.
	DetectionJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "plate", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "min_confidence", Type: field.TypeFloat64, Default: 60},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "attempts", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "image_id", Type: field.TypeUUID},
	}
	// DetectionJobTable holds the schema information for the "detection_job" table.
	DetectionJobTable = &schema.Table{
		Name:       "detection_job",
		Columns:    DetectionJobColumns,
		PrimaryKey: []*schema.Column{DetectionJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "detection_job_source_images_jobs",
				Columns:    []*schema.Column{DetectionJobColumns[10]},
				RefColumns: []*schema.Column{SourceImagesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "detectionjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{DetectionJobColumns[1], DetectionJobColumns[2]},
			},
			{
				Name:    "detectionjob_image_id",
				Unique:  false,
				Columns: []*schema.Column{DetectionJobColumns[10]},
			},
			{
				Name:    "detectionjob_plate",
				Unique:  false,
				Columns: []*schema.Column{DetectionJobColumns[4]},
			},
		},
	}
	// SourceImagesColumns holds the columns for the "source_images" table.
	SourceImagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// SourceImagesTable holds the schema information for the "source_images" table.
	SourceImagesTable = &schema.Table{
		Name:       "source_images",
		Columns:    SourceImagesColumns,
		PrimaryKey: []*schema.Column{SourceImagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sourceimage_content_hash",
				Unique:  true,
				Columns: []*schema.Column{SourceImagesColumns[2]},
			},
			{
				Name:    "sourceimage_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{SourceImagesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DetectionJobTable,
		SourceImagesTable,
	}
)

func init() {
	DetectionJobTable.ForeignKeys[0].RefTable = SourceImagesTable
	DetectionJobTable.Annotation = &entsql.Annotation{
		Table: "detection_job",
	}
	SourceImagesTable.Annotation = &entsql.Annotation{
		Table: "source_images",
	}
}

package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/autocare/platetrack/constants"
	"github.com/autocare/platetrack/db/ent/schema/utils"
	"github.com/google/uuid"
)

type DetectionJob struct{ ent.Schema }

func (DetectionJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "detection_job"},
	}
}

func (DetectionJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("image_id", uuid.UUID{}),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("plate").Optional().Nillable(),
		field.Float("confidence").Optional().Nillable(),
		field.Float("min_confidence").Default(60),
		field.Bool("needs_review").Default(false),
		field.JSON("attempts", json.RawMessage{}).
			Optional(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (DetectionJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("image", SourceImage.Type).
			Ref("jobs").
			Field("image_id").
			Unique().
			Required(),
	}
}

func (DetectionJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
		index.Fields("image_id"),
		index.Fields("plate"),
	}
}

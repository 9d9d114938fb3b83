package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// JobApplication holds the schema definition for the JobApplication entity.
type JobApplication struct {
	ent.Schema
}

// Fields of the JobApplication.
func (JobApplication) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("job_id", uuid.UUID{}).Immutable(),
		field.UUID("applicant_id", uuid.UUID{}).Immutable(),

		field.String("resume").MaxLen(2000).Default(""),
		field.String("cover_letter").MaxLen(2000).Default(""),

		field.Enum("status").
			Values("Pending", "Reviewed", "Accepted", "Rejected").
			Default("Pending"),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (JobApplication) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_applications"},
	}
}

// Edges of the JobApplication.
func (JobApplication) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("applications").
			Required().
			Unique().
			Immutable().
			Field("job_id"),

		edge.From("applicant", User.Type).
			Ref("applications").
			Required().
			Unique().
			Immutable().
			Field("applicant_id"),
	}
}

// Indexes of the JobApplication. One application per user per job.
func (JobApplication) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "applicant_id").Unique().StorageKey("job_applications_job_applicant_key"),
		index.Fields("applicant_id").StorageKey("job_applications_applicant_id_idx"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Job holds the schema definition for the Job entity.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.String("title").MaxLen(100).NotEmpty(),
		field.String("description").MaxLen(300).NotEmpty(),
		field.String("location").NotEmpty(),
		field.String("salary").NotEmpty(), // Free text, e.g. "Negotiable"
		field.String("job_type").NotEmpty(),
		field.Time("deadline"),

		field.UUID("category_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("poster_id", uuid.UUID{}).Immutable(),
		field.UUID("selected_applicant_id", uuid.UUID{}).Optional().Nillable(),

		field.Enum("status").
			NamedValues(
				"Available", "Available",
				"InProgress", "In Progress",
				"Completed", "Completed",
				"Cancelled", "Cancelled",
			).
			Default("Available"),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the Job. The applicant set is derived from the applications edge.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category", Category.Type).
			Ref("jobs").
			Unique().
			Field("category_id"),

		edge.From("poster", User.Type).
			Ref("posted_jobs").
			Required().
			Unique().
			Immutable().
			Field("poster_id"),

		edge.From("selected_applicant", User.Type).
			Ref("selected_for").
			Unique().
			Field("selected_applicant_id"),

		edge.To("applications", JobApplication.Type).Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("poster_id").StorageKey("jobs_poster_id_idx"),
		index.Fields("category_id").StorageKey("jobs_category_id_idx"),
		index.Fields("created_at").StorageKey("jobs_created_at_idx"),
	}
}

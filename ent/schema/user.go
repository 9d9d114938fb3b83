package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		// At least one of email or phone_number is set; the service enforces it.
		field.String("email").MaxLen(254).Optional().Nillable().Unique(),
		field.String("phone_number").MaxLen(13).Optional().Nillable().Unique(),

		field.String("first_name").MaxLen(50).NotEmpty(),
		field.String("last_name").MaxLen(50).NotEmpty(),

		field.Enum("role").
			Values("worker", "employer", "both", "admin", "superadmin").
			Default("worker"),
		field.Enum("status").
			Values("pending", "active", "disabled").
			Default("pending"),

		field.Text("password_hash").Sensitive().NotEmpty(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("posted_jobs", Job.Type),
		edge.To("selected_for", Job.Type),
		edge.To("applications", JobApplication.Type).Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AbsentName is the literal placeholder rendered in place of a name
// component that was never set. It matches what fmt prints for a nil
// pointer, and it is substituted verbatim, not omitted.
const AbsentName = "<nil>"

// MaxNameLength is the column limit the people table enforces on each
// name component.
const MaxNameLength = 256

// NullName is a nullable name component. Its rendering is defined here,
// once: an unset component always comes out as AbsentName.
type NullName struct {
	Name  string
	Valid bool
}

// NameOf wraps a plain string as a set NullName.
func NameOf(name string) NullName {
	return NullName{Name: name, Valid: true}
}

func (n NullName) String() string {
	if !n.Valid {
		return AbsentName
	}
	return n.Name
}

// Value implements driver.Valuer so unset names persist as NULL.
func (n NullName) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Name, nil
}

// Scan implements sql.Scanner.
func (n *NullName) Scan(src interface{}) error {
	if src == nil {
		*n = NullName{}
		return nil
	}
	switch v := src.(type) {
	case string:
		*n = NullName{Name: v, Valid: true}
	case []byte:
		*n = NullName{Name: string(v), Valid: true}
	default:
		return fmt.Errorf("cannot scan %T into NullName", src)
	}
	return nil
}

// MarshalJSON renders unset names as JSON null.
func (n NullName) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Name)
}

// UnmarshalJSON accepts a string or null.
func (n *NullName) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*n = NullName{}
		return nil
	}
	*n = NullName{Name: *s, Valid: true}
	return nil
}

// Person represents a single individual in the directory. Timestamps are
// owned by the repository: CreatedAt is stamped once on insert and never
// rewritten, UpdatedAt is refreshed on every update.
type Person struct {
	ID        string    `json:"id"`
	FirstName NullName  `json:"first_name"`
	LastName  NullName  `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPerson creates a new Person with a generated UUID. Timestamps stay
// zero until the repository persists the record.
func NewPerson(firstName, lastName NullName) *Person {
	return &Person{
		ID:        uuid.New().String(),
		FirstName: firstName,
		LastName:  lastName,
	}
}

// DisplayLabel renders the person as "last, first". Unset components
// substitute AbsentName, they are not dropped from the template.
func (p *Person) DisplayLabel() string {
	return fmt.Sprintf("%s, %s", p.LastName, p.FirstName)
}

// FullName renders the person as "first last", same substitution rule.
func (p *Person) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

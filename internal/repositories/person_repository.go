package repositories

import (
	"database/sql"
	"time"

	"github.com/codekeeper/codekeeper/internal/models"
)

type PersonRepository struct {
	db *sql.DB
}

func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create inserts a new person, stamping both timestamps. Length
// violations come back as SQLite CHECK constraint errors, the
// repository does not pre-validate.
func (r *PersonRepository) Create(person *models.Person) error {
	now := time.Now().UTC()
	person.CreatedAt = now
	person.UpdatedAt = now

	query := `
		INSERT INTO people (
			id, first_name, last_name, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, person.ID, person.FirstName, person.LastName, person.CreatedAt, person.UpdatedAt)
	return err
}

// GetByID retrieves a person by ID
func (r *PersonRepository) GetByID(id string) (*models.Person, error) {
	query := `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM people WHERE id = ?
	`

	person := &models.Person{}
	err := r.db.QueryRow(query, id).Scan(
		&person.ID, &person.FirstName, &person.LastName, &person.CreatedAt, &person.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return person, nil
}

// GetAll retrieves all people ordered by last name
func (r *PersonRepository) GetAll() ([]*models.Person, error) {
	query := `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM people
		ORDER BY last_name, first_name
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []*models.Person
	for rows.Next() {
		person := &models.Person{}
		err := rows.Scan(
			&person.ID, &person.FirstName, &person.LastName, &person.CreatedAt, &person.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		people = append(people, person)
	}

	return people, rows.Err()
}

// Update rewrites the name fields and refreshes updated_at. created_at
// is never part of the statement: it is write-once.
func (r *PersonRepository) Update(person *models.Person) error {
	person.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE people SET
			first_name = ?, last_name = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, person.FirstName, person.LastName, person.UpdatedAt, person.ID)
	return err
}

// Delete deletes a person by ID
func (r *PersonRepository) Delete(id string) error {
	query := `DELETE FROM people WHERE id = ?`
	_, err := r.db.Exec(query, id)
	return err
}

// Count returns the number of people in the directory
func (r *PersonRepository) Count() (int, error) {
	query := `SELECT COUNT(*) FROM people`
	var count int
	err := r.db.QueryRow(query).Scan(&count)
	return count, err
}

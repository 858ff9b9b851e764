package services

import (
	"github.com/codekeeper/codekeeper/internal/models"
	"github.com/codekeeper/codekeeper/internal/repositories"
)

type PersonService struct {
	personRepo *repositories.PersonRepository
}

func NewPersonService(personRepo *repositories.PersonRepository) *PersonService {
	return &PersonService{
		personRepo: personRepo,
	}
}

// CreatePerson creates a new person with zero or more name components set
func (s *PersonService) CreatePerson(firstName, lastName models.NullName) (*models.Person, error) {
	person := models.NewPerson(firstName, lastName)
	if err := s.personRepo.Create(person); err != nil {
		return nil, err
	}
	return person, nil
}

// GetPersonByID retrieves a person by ID
func (s *PersonService) GetPersonByID(id string) (*models.Person, error) {
	return s.personRepo.GetByID(id)
}

// GetAllPeople retrieves all people
func (s *PersonService) GetAllPeople() ([]*models.Person, error) {
	return s.personRepo.GetAll()
}

// UpdatePersonNames replaces both name fields of an existing person.
// The repository refreshes updated_at; created_at stays untouched.
func (s *PersonService) UpdatePersonNames(id string, firstName, lastName models.NullName) (*models.Person, error) {
	person, err := s.personRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	person.FirstName = firstName
	person.LastName = lastName
	if err := s.personRepo.Update(person); err != nil {
		return nil, err
	}

	return person, nil
}

// DeletePerson deletes a person by ID
func (s *PersonService) DeletePerson(id string) error {
	return s.personRepo.Delete(id)
}

// CountPeople returns the directory size
func (s *PersonService) CountPeople() (int, error) {
	return s.personRepo.Count()
}

package services

import (
	"time"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "People"

type ExportService struct {
	personService *PersonService
}

func NewExportService(personService *PersonService) *ExportService {
	return &ExportService{
		personService: personService,
	}
}

// BuildPeopleWorkbook renders the current roster as an xlsx workbook,
// one row per person with both derived views and the timestamps.
func (s *ExportService) BuildPeopleWorkbook() (*excelize.File, error) {
	people, err := s.personService.GetAllPeople()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	headers := []string{"ID", "Display Label", "Full Name", "Created", "Updated"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, person := range people {
		values := []interface{}{
			person.ID,
			person.DisplayLabel(),
			person.FullName(),
			person.CreatedAt.Format(time.RFC3339),
			person.UpdatedAt.Format(time.RFC3339),
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

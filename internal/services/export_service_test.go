package services

import (
	"testing"

	"github.com/codekeeper/codekeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportServiceBuildPeopleWorkbook(t *testing.T) {
	personService := newTestPersonService(t)
	exportService := NewExportService(personService)

	_, err := personService.CreatePerson(models.NameOf("Ada"), models.NameOf("Lovelace"))
	require.NoError(t, err)
	_, err = personService.CreatePerson(models.NullName{}, models.NullName{})
	require.NoError(t, err)

	workbook, err := exportService.BuildPeopleWorkbook()
	require.NoError(t, err)

	header, err := workbook.GetCellValue(exportSheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Display Label", header)

	// NULL last names sort first in SQLite, so the anonymous row comes second
	label, err := workbook.GetCellValue(exportSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, models.AbsentName+", "+models.AbsentName, label)

	label, err = workbook.GetCellValue(exportSheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "Lovelace, Ada", label)

	fullName, err := workbook.GetCellValue(exportSheet, "C3")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", fullName)
}

func TestExportServiceEmptyDirectory(t *testing.T) {
	exportService := NewExportService(newTestPersonService(t))

	workbook, err := exportService.BuildPeopleWorkbook()
	require.NoError(t, err)

	header, err := workbook.GetCellValue(exportSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)

	cell, err := workbook.GetCellValue(exportSheet, "A2")
	require.NoError(t, err)
	assert.Empty(t, cell)
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hireboard_backend/internal/forms"
	"hireboard_backend/internal/services/dto"
	"hireboard_backend/pkg/apperrors"
)

func TestCreateJobBuildsSchema(t *testing.T) {
	f := newFixture(t)

	detail := f.createJob(t,
		dto.FieldDefRequest{FieldLabel: "Years of Experience", FieldType: "number", IsRequired: true},
		dto.FieldDefRequest{FieldLabel: "Resume", FieldType: "file"},
	)

	require.Len(t, detail.Schema, 6)
	assert.Equal(t, "full_name", detail.Schema[0].FieldName)
	assert.Equal(t, "years_of_experience", detail.Schema[4].FieldName)
	assert.True(t, detail.Job.IsActive)
	assert.Equal(t, "admin-1", detail.Job.CreatedBy)

	// render contracts come back alongside the schema
	require.Len(t, detail.Form, 6)
	assert.Equal(t, forms.ControlFile, detail.Form[5].Control)
}

func TestCreateJobRejectsBadSchema(t *testing.T) {
	f := newFixture(t)

	_, err := f.jobSvc.CreateJob(context.Background(), "admin-1", &dto.CreateJobRequest{
		Title:       "Bad",
		Description: "d",
		Fields:      []dto.FieldDefRequest{{FieldLabel: "Seniority", FieldType: "select"}},
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestGetJobNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.jobSvc.GetJob(context.Background(), "missing")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestUpdateJobPartial(t *testing.T) {
	f := newFixture(t)
	job := f.createJob(t)

	newTitle := "Staff Engineer"
	location := "Jakarta"
	detail, err := f.jobSvc.UpdateJob(context.Background(), job.Job.ID, &dto.UpdateJobRequest{
		Title:    &newTitle,
		Location: &location,
	})
	require.NoError(t, err)

	assert.Equal(t, "Staff Engineer", detail.Job.Title)
	require.NotNil(t, detail.Job.Location)
	assert.Equal(t, "Jakarta", *detail.Job.Location)
	assert.Equal(t, "Build services", detail.Job.Description)
}

func TestReplaceSchemaLockedAfterApplications(t *testing.T) {
	f := newFixture(t)
	job := f.createJob(t)

	_, err := f.appSvc.Submit(context.Background(), job.Job.ID, "user-1", completeResponses(), nil)
	require.NoError(t, err)

	_, err = f.jobSvc.ReplaceSchema(context.Background(), job.Job.ID, []dto.FieldDefRequest{
		{FieldLabel: "Cover Letter", FieldType: "textarea"},
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
}

func TestReplaceSchemaBeforeApplications(t *testing.T) {
	f := newFixture(t)
	job := f.createJob(t)

	detail, err := f.jobSvc.ReplaceSchema(context.Background(), job.Job.ID, []dto.FieldDefRequest{
		{FieldLabel: "Cover Letter", FieldType: "textarea"},
	})
	require.NoError(t, err)
	require.Len(t, detail.Schema, 5)
	assert.Equal(t, "cover_letter", detail.Schema[4].FieldName)
}

func TestListJobsFiltersInactive(t *testing.T) {
	f := newFixture(t)
	open := f.createJob(t)
	closed := f.createJob(t)
	require.NoError(t, f.jobSvc.SetActive(context.Background(), closed.Job.ID, false))

	resp, err := f.jobSvc.ListJobs(context.Background(), dto.ListQuery{}, false)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, open.Job.ID, resp.Items[0].ID)

	all, err := f.jobSvc.ListJobs(context.Background(), dto.ListQuery{}, true)
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
}

func TestListJobsAppliesFiltersAndPagination(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 12; i++ {
		f.createJob(t)
	}

	resp, err := f.jobSvc.ListJobs(context.Background(), dto.ListQuery{Page: 2}, false)
	require.NoError(t, err)

	assert.Equal(t, 12, resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Len(t, resp.Items, 2)

	none, err := f.jobSvc.ListJobs(context.Background(), dto.ListQuery{Search: "nonexistent"}, false)
	require.NoError(t, err)
	assert.Equal(t, 0, none.Total)
	assert.Empty(t, none.Items)
	assert.Equal(t, 1, none.Page)
}

func TestDeleteJob(t *testing.T) {
	f := newFixture(t)
	job := f.createJob(t)

	require.NoError(t, f.jobSvc.DeleteJob(context.Background(), job.Job.ID))

	err := f.jobSvc.DeleteJob(context.Background(), job.Job.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

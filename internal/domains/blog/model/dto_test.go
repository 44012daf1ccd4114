package model

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBlogRequestValidate(t *testing.T) {
	valid := CreateBlogRequest{Title: "A Title", Body: "some body"}
	assert.NoError(t, valid.Validate())

	// Description and tags are optional.
	bare := CreateBlogRequest{Title: "T", Body: "b"}
	assert.NoError(t, bare.Validate())

	missingTitle := CreateBlogRequest{Body: "some body"}
	err := missingTitle.Validate()
	var vErrs validation.Errors
	require.ErrorAs(t, err, &vErrs)
	assert.Contains(t, vErrs, "title")

	missingBody := CreateBlogRequest{Title: "A Title"}
	err = missingBody.Validate()
	require.ErrorAs(t, err, &vErrs)
	assert.Contains(t, vErrs, "body")
}

func TestUpdateBlogRequestValidate(t *testing.T) {
	title := "New Title"
	goodState := StatePublished
	badState := "archived"

	assert.NoError(t, UpdateBlogRequest{Title: &title}.Validate())
	assert.NoError(t, UpdateBlogRequest{State: &goodState}.Validate())

	var vErrs validation.Errors

	err := UpdateBlogRequest{}.Validate()
	require.ErrorAs(t, err, &vErrs)
	assert.Contains(t, vErrs, "update")

	err = UpdateBlogRequest{State: &badState}.Validate()
	require.ErrorAs(t, err, &vErrs)
	assert.Contains(t, vErrs, "state")
}

// An explicitly empty string is present, not absent, and must be rejected
// rather than skipped.
func TestUpdateBlogRequestRejectsEmptyStrings(t *testing.T) {
	empty := ""

	tests := []struct {
		name  string
		req   UpdateBlogRequest
		field string
	}{
		{"empty title", UpdateBlogRequest{Title: &empty}, "title"},
		{"empty body", UpdateBlogRequest{Body: &empty}, "body"},
		{"empty state", UpdateBlogRequest{State: &empty}, "state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			var vErrs validation.Errors
			require.ErrorAs(t, err, &vErrs)
			assert.Contains(t, vErrs, tt.field)
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(45, 3, 20)
	assert.Equal(t, 45, meta.TotalBlogs)
	assert.Equal(t, 3, meta.CurrentPage)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 20, meta.Limit)

	empty := NewPaginationMeta(0, 1, 20)
	assert.Equal(t, 0, empty.TotalPages)

	exact := NewPaginationMeta(40, 1, 20)
	assert.Equal(t, 2, exact.TotalPages)
}

package dto

import "github.com/cesargomez89/audiovault/internal/domain"

// TrackUploadRequest holds the metadata fields of the multipart upload.
// Name may be empty; the server falls back to the file's embedded title.
type TrackUploadRequest struct {
	Name       string
	Duration   *int
	CategoryID *int
}

func (r *TrackUploadRequest) Validate() []ValidationError {
	var errs []ValidationError

	if r.Duration == nil {
		errs = append(errs, ValidationError{Field: "duration", Message: "is required"})
	}
	errs = append(errs, validateDuration(r.Duration)...)

	return errs
}

type TrackUpdateRequest struct {
	Name       *string `json:"name"`
	CategoryID *int    `json:"category_id"`
	Duration   *int    `json:"duration"`
}

func (r *TrackUpdateRequest) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, validateNonEmpty("name", r.Name)...)
	errs = append(errs, validateDuration(r.Duration)...)

	return errs
}

func (r *TrackUpdateRequest) ToPatch() domain.TrackPatch {
	return domain.TrackPatch{
		Name:       r.Name,
		CategoryID: r.CategoryID,
		Duration:   r.Duration,
	}
}

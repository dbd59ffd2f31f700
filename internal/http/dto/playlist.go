package dto

import "github.com/cesargomez89/audiovault/internal/domain"

type PlaylistCreateRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

func (r *PlaylistCreateRequest) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, validateRequired("name", r.Name)...)
	errs = append(errs, validateColor("color", &r.Color)...)

	return errs
}

type PlaylistUpdateRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}

func (r *PlaylistUpdateRequest) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, validateNonEmpty("name", r.Name)...)
	errs = append(errs, validateColor("color", r.Color)...)

	return errs
}

func (r *PlaylistUpdateRequest) ToPatch() domain.PlaylistPatch {
	return domain.PlaylistPatch{
		Name:  r.Name,
		Color: r.Color,
		Icon:  r.Icon,
	}
}

// AddTrackRequest is the body of POST /playlists/{playlistId}/tracks. The
// field name matches what the web client sends.
type AddTrackRequest struct {
	TrackID *int `json:"trackId"`
}

func (r *AddTrackRequest) Validate() []ValidationError {
	var errs []ValidationError
	if r.TrackID == nil {
		errs = append(errs, ValidationError{Field: "trackId", Message: "is required"})
	}
	return errs
}

// RepositionRequest overwrites one link's position.
type RepositionRequest struct {
	Position *int `json:"position"`
}

func (r *RepositionRequest) Validate() []ValidationError {
	var errs []ValidationError
	if r.Position == nil {
		errs = append(errs, ValidationError{Field: "position", Message: "is required"})
	} else if *r.Position < 0 {
		errs = append(errs, ValidationError{Field: "position", Message: "must be zero or greater"})
	}
	return errs
}

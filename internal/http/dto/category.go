package dto

import "github.com/cesargomez89/audiovault/internal/domain"

type CategoryCreateRequest struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func (r *CategoryCreateRequest) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, validateRequired("name", r.Name)...)
	errs = append(errs, validateColor("color", &r.Color)...)

	return errs
}

type CategoryUpdateRequest struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

func (r *CategoryUpdateRequest) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, validateNonEmpty("name", r.Name)...)
	errs = append(errs, validateColor("color", r.Color)...)

	return errs
}

func (r *CategoryUpdateRequest) ToPatch() domain.CategoryPatch {
	return domain.CategoryPatch{
		Name:  r.Name,
		Icon:  r.Icon,
		Color: r.Color,
	}
}

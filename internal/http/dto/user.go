package dto

import "github.com/cesargomez89/audiovault/internal/domain"

type UserUpdateRequest struct {
	Username    *string `json:"username"`
	Password    *string `json:"password"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	FullName    *string `json:"full_name"`
	AvatarColor *string `json:"avatar_color"`
}

func (r *UserUpdateRequest) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, validateNonEmpty("username", r.Username)...)
	errs = append(errs, validateNonEmpty("password", r.Password)...)
	errs = append(errs, validateEmail(r.Email)...)
	errs = append(errs, validateColor("avatar_color", r.AvatarColor)...)

	return errs
}

func (r *UserUpdateRequest) ToPatch() domain.UserPatch {
	return domain.UserPatch{
		Username:    r.Username,
		Password:    r.Password,
		Email:       r.Email,
		Phone:       r.Phone,
		FullName:    r.FullName,
		AvatarColor: r.AvatarColor,
	}
}

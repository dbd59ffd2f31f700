package dto

import "testing"

func TestCategoryCreateValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CategoryCreateRequest
		wantErr string // field expected in the violation list, empty for valid
	}{
		{"valid", CategoryCreateRequest{Name: "Voice memos", Color: "#ff0000"}, ""},
		{"valid without color", CategoryCreateRequest{Name: "Ideas"}, ""},
		{"missing name", CategoryCreateRequest{Color: "#fff"}, "name"},
		{"blank name", CategoryCreateRequest{Name: "   "}, "name"},
		{"bad color", CategoryCreateRequest{Name: "x", Color: "red"}, "color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			if tt.wantErr == "" {
				if len(errs) != 0 {
					t.Errorf("Expected no violations, got %v", errs)
				}
				return
			}
			if _, ok := ToMap(errs)[tt.wantErr]; !ok {
				t.Errorf("Expected violation on %q, got %v", tt.wantErr, errs)
			}
		})
	}
}

func TestUserUpdateValidate(t *testing.T) {
	empty := ""
	badEmail := "not-an-email"
	goodEmail := "a@b.co"
	badColor := "purple"

	tests := []struct {
		name    string
		req     UserUpdateRequest
		wantErr string
	}{
		{"empty patch is fine", UserUpdateRequest{}, ""},
		{"good email", UserUpdateRequest{Email: &goodEmail}, ""},
		{"blank username", UserUpdateRequest{Username: &empty}, "username"},
		{"bad email", UserUpdateRequest{Email: &badEmail}, "email"},
		{"bad avatar color", UserUpdateRequest{AvatarColor: &badColor}, "avatar_color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			if tt.wantErr == "" {
				if len(errs) != 0 {
					t.Errorf("Expected no violations, got %v", errs)
				}
				return
			}
			if _, ok := ToMap(errs)[tt.wantErr]; !ok {
				t.Errorf("Expected violation on %q, got %v", tt.wantErr, errs)
			}
		})
	}
}

func TestTrackUploadValidate(t *testing.T) {
	zero := 0
	negative := -3

	if errs := (&TrackUploadRequest{Duration: &zero}).Validate(); len(errs) != 0 {
		t.Errorf("Zero duration is valid, got %v", errs)
	}
	if errs := (&TrackUploadRequest{}).Validate(); len(errs) == 0 {
		t.Error("Expected missing duration to be a violation")
	}
	if errs := (&TrackUploadRequest{Duration: &negative}).Validate(); len(errs) == 0 {
		t.Error("Expected negative duration to be a violation")
	}
}

func TestAddTrackValidate(t *testing.T) {
	if errs := (&AddTrackRequest{}).Validate(); len(errs) == 0 {
		t.Error("Expected missing trackId to be a violation")
	}
	id := 5
	if errs := (&AddTrackRequest{TrackID: &id}).Validate(); len(errs) != 0 {
		t.Errorf("Expected no violations, got %v", errs)
	}
}

func TestRepositionValidate(t *testing.T) {
	if errs := (&RepositionRequest{}).Validate(); len(errs) == 0 {
		t.Error("Expected missing position to be a violation")
	}
	negative := -1
	if errs := (&RepositionRequest{Position: &negative}).Validate(); len(errs) == 0 {
		t.Error("Expected negative position to be a violation")
	}
	zero := 0
	if errs := (&RepositionRequest{Position: &zero}).Validate(); len(errs) != 0 {
		t.Errorf("Position zero is valid, got %v", errs)
	}
}

func TestToResponse(t *testing.T) {
	errs := []ValidationError{
		{Field: "name", Message: "is required"},
		{Field: "duration", Message: "must be zero or greater"},
	}
	got := ToResponse(errs)
	want := "name: is required; duration: must be zero or greater"
	if got != want {
		t.Errorf("ToResponse = %q, want %q", got, want)
	}
}

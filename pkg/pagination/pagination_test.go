package pagination

import "testing"

func TestValidateDefaults(t *testing.T) {
	tests := []struct {
		name        string
		params      PaginationParams
		wantPage    int
		wantPerPage int
	}{
		{"zero values", PaginationParams{}, 1, 20},
		{"negative page", PaginationParams{Page: -3, PerPage: 10}, 1, 10},
		{"per page capped", PaginationParams{Page: 2, PerPage: 500}, 2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Validate()
			if tt.params.Page != tt.wantPage || tt.params.PerPage != tt.wantPerPage {
				t.Errorf("got page=%d per_page=%d, want page=%d per_page=%d",
					tt.params.Page, tt.params.PerPage, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	params := PaginationParams{Page: 3, PerPage: 20}
	if got := params.Offset(); got != 40 {
		t.Errorf("Offset() = %d, want 40", got)
	}
}

func TestNewMeta(t *testing.T) {
	params := &PaginationParams{Page: 1, PerPage: 20}
	meta := NewMeta(params, 45)

	if meta.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", meta.TotalPages)
	}
	if meta.Total != 45 {
		t.Errorf("Total = %d, want 45", meta.Total)
	}
}

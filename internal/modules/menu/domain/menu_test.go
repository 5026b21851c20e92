package domain

import (
	"errors"
	"testing"

	"addisKitchen/internal/shared/apperr"
)

func TestMenuItemValidate(t *testing.T) {
	valid := MenuItem{Name: "Doro Wot", Price: 18.99, CategoryID: "cat-mains"}

	cases := []struct {
		name    string
		mutate  func(*MenuItem)
		wantErr bool
	}{
		{name: "valid", mutate: func(*MenuItem) {}},
		{name: "zero price ok", mutate: func(m *MenuItem) { m.Price = 0 }},
		{name: "missing name", mutate: func(m *MenuItem) { m.Name = "  " }, wantErr: true},
		{name: "negative price", mutate: func(m *MenuItem) { m.Price = -1 }, wantErr: true},
		{name: "missing category", mutate: func(m *MenuItem) { m.CategoryID = "" }, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := valid
			tc.mutate(&item)
			err := item.Validate()
			if tc.wantErr {
				if !errors.Is(err, apperr.ErrValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

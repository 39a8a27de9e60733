package tableview

import (
	"testing"

	"github.com/lazyhr/hrportal/internal/domain/user"
)

func sampleDirectory() user.Directory {
	return user.Directory{
		{ID: 1, FirstName: "Jane", LastName: "Doe", EmployeeID: "E100", Email: "jane.doe@lazyhr.io", Role: "ADMIN", IsActive: true},
		{ID: 2, FirstName: "John", LastName: "Smith", EmployeeID: "E101", Email: "john.smith@lazyhr.io", Role: "EMPLOYEE", IsActive: true},
		{ID: 3, FirstName: "Maya", LastName: "Okafor", EmployeeID: "E102", Email: "maya.okafor@lazyhr.io", Role: "EMPLOYEE", IsActive: false},
		{ID: 4, FirstName: "Liam", LastName: "Janeway", EmployeeID: "E103", Email: "liam.j@lazyhr.io", Role: "MANAGER", IsActive: true},
	}
}

func ids(dir user.Directory) []int64 {
	out := make([]int64, 0, len(dir))
	for _, u := range dir {
		out = append(out, u.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	cases := []struct {
		name   string
		filter Filter
		want   []int64
	}{
		{"empty filter keeps all", Filter{}, []int64{1, 2, 3, 4}},
		{"search by name", Filter{Search: "jane"}, []int64{1, 4}},
		{"search by employee id", Filter{Search: "e100"}, []int64{1}},
		{"search by email", Filter{Search: "maya.okafor"}, []int64{3}},
		{"search trims whitespace", Filter{Search: "  jane  "}, []int64{1, 4}},
		{"role substring", Filter{Role: "employee"}, []int64{2, 3}},
		{"status active", Filter{Status: "true"}, []int64{1, 2, 4}},
		{"status inactive", Filter{Status: "false"}, []int64{3}},
		{"all fields combine with AND", Filter{Search: "lazyhr", Role: "EMPLOYEE", Status: "true"}, []int64{2}},
		{"no match", Filter{Search: "zzz"}, []int64{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Apply(sampleDirectory(), tc.filter))
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	dir := sampleDirectory()
	Apply(dir, Filter{Search: "jane"})
	if len(dir) != 4 {
		t.Fatalf("input directory mutated, len=%d", len(dir))
	}
}

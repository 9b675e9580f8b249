package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kyudon/police-intake/internal/pagination"
)

func TestWindow(t *testing.T) {
	items := []string{"r1", "r2", "r3", "r4", "r5"}

	tests := []struct {
		name       string
		pageSize   int
		pageIndex  int
		want       []string
		wantPages  int
	}{
		{name: "first page", pageSize: 2, pageIndex: 0, want: []string{"r1", "r2"}, wantPages: 3},
		{name: "middle page", pageSize: 2, pageIndex: 1, want: []string{"r3", "r4"}, wantPages: 3},
		{name: "partial last page", pageSize: 2, pageIndex: 2, want: []string{"r5"}, wantPages: 3},
		{name: "page size one", pageSize: 1, pageIndex: 2, want: []string{"r3"}, wantPages: 5},
		{name: "single page holds all", pageSize: 10, pageIndex: 0, want: items, wantPages: 1},
		{name: "out of range", pageSize: 2, pageIndex: 3, want: nil, wantPages: 3},
		{name: "negative page", pageSize: 2, pageIndex: -1, want: nil, wantPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, totalPages := pagination.Window(items, tt.pageSize, tt.pageIndex)
			assert.Equal(t, tt.wantPages, totalPages)
			if tt.want == nil {
				assert.Empty(t, page)
			} else {
				assert.Equal(t, tt.want, page)
			}
		})
	}
}

func TestWindowEmptyAndDegenerate(t *testing.T) {
	page, totalPages := pagination.Window([]int{}, 5, 0)
	assert.Empty(t, page)
	assert.Equal(t, 0, totalPages)

	page, totalPages = pagination.Window([]int{1, 2}, 0, 0)
	assert.Nil(t, page)
	assert.Equal(t, 0, totalPages)
}

package model_test

import (
	"math"
	"testing"

	"github.com/muhammadheryan/farm-portal/model"
	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name       string
		req        model.PageRequest
		want       model.PageRequest
		wantOffset int
	}{
		{
			name:       "defaults applied",
			req:        model.PageRequest{},
			want:       model.PageRequest{Page: 1, PerPage: 20},
			wantOffset: 0,
		},
		{
			name:       "per_page capped",
			req:        model.PageRequest{Page: 3, PerPage: 500},
			want:       model.PageRequest{Page: 3, PerPage: 100},
			wantOffset: 200,
		},
		{
			name:       "negative page",
			req:        model.PageRequest{Page: -4, PerPage: 10},
			want:       model.PageRequest{Page: 1, PerPage: 10},
			wantOffset: 0,
		},
		{
			name:       "huge page is capped",
			req:        model.PageRequest{Page: math.MaxInt, PerPage: 100},
			want:       model.PageRequest{Page: model.MaxOffset/100 + 1, PerPage: 100},
			wantOffset: (model.MaxOffset / 100) * 100,
		},
		{
			name:       "huge page with single row pages",
			req:        model.PageRequest{Page: math.MaxInt - 1, PerPage: 1},
			want:       model.PageRequest{Page: model.MaxOffset + 1, PerPage: 1},
			wantOffset: model.MaxOffset,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.Normalize(20, 100)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOffset, got.Offset())
			assert.GreaterOrEqual(t, got.Offset(), 0)
			assert.LessOrEqual(t, got.Offset(), model.MaxOffset)
		})
	}
}

func TestNewPagination(t *testing.T) {
	got := model.NewPagination(model.PageRequest{Page: 2, PerPage: 10}, 25)
	assert.Equal(t, 3, got.Pages)
	assert.True(t, got.HasNext)
	assert.True(t, got.HasPrev)
	assert.Equal(t, int64(25), got.Total)
}

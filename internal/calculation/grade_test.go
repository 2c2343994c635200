package calculation

import (
	"testing"

	"github.com/rpgo/runway-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGradeOf(t *testing.T) {
	tests := []struct {
		score float64
		want  domain.Grade
	}{
		{100, domain.GradeA},
		{80, domain.GradeA},
		{79.99, domain.GradeB},
		{60, domain.GradeB},
		{59.5, domain.GradeC},
		{40, domain.GradeC},
		{39.99, domain.GradeF},
		{0, domain.GradeF},
		{-5, domain.GradeF},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeOf(decimal.NewFromFloat(tt.score)), "score %v", tt.score)
	}
}

func TestRunwayScore(t *testing.T) {
	assert.True(t, RunwayScore(domain.RunwayResult{RunwayMonths: 24, Horizon: 24}).Equal(decimal.NewFromInt(100)))
	assert.True(t, RunwayScore(domain.RunwayResult{RunwayMonths: 12, Horizon: 24}).Equal(decimal.NewFromInt(50)))
	assert.True(t, RunwayScore(domain.RunwayResult{RunwayMonths: 17, Horizon: 24}).Equal(decimal.NewFromFloat(70.83)))
	assert.True(t, RunwayScore(domain.RunwayResult{}).IsZero())

	res := NewProjectionEngine().Run(referenceParams(), nil, 24)
	assert.Equal(t, domain.GradeB, GradeOf(RunwayScore(res)))
}

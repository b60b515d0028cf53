package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFPS(t *testing.T) {
	for _, fps := range []string{"24", "25", "23.976", "29.97", "0.5", "24000/1001", " 30 "} {
		assert.NoError(t, ValidateFPS(fps), fps)
	}
	for _, fps := range []string{"", "0", "0.0", "-24", "abc", "24fps", "1e3", "Inf", "NaN", "24/0", "0/1"} {
		assert.Error(t, ValidateFPS(fps), fps)
	}
}

func TestBatchSummary_Count(t *testing.T) {
	s := BatchSummary{Jobs: []Job{
		{Status: JobStatusSucceeded},
		{Status: JobStatusFailed},
		{Status: JobStatusPending},
		{Status: JobStatusPending},
	}}
	assert.Equal(t, 1, s.Count(JobStatusSucceeded))
	assert.Equal(t, 1, s.Count(JobStatusFailed))
	assert.Equal(t, 2, s.Count(JobStatusPending))
	assert.Equal(t, 0, s.Count(JobStatusRunning))
}

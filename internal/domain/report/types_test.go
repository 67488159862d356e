package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodFromTag(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	p := PeriodFromTag("hoje", now)
	assert.Equal(t, today, p.Start)
	assert.Equal(t, today, p.End)

	p = PeriodFromTag("mes", now)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, today, p.End)

	p = PeriodFromTag("ano", now)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, today, p.End)

	// tag desconhecida cai em "hoje"
	p = PeriodFromTag("", now)
	assert.Equal(t, today, p.Start)
}

package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, LocaleVI, Normalize("vi"))
	assert.Equal(t, LocaleEN, Normalize("en"))
	assert.Equal(t, LocaleVI, Normalize(""))
	assert.Equal(t, LocaleVI, Normalize("fr"))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Đúng giờ", StatusLabel(LocaleVI, "on time"))
	assert.Equal(t, "Late", StatusLabel(LocaleEN, "late"))
	assert.Equal(t, "Không xác định", StatusLabel(LocaleVI, "whatever"))
	assert.Equal(t, "Unknown", StatusLabel(LocaleEN, ""))
}

func TestWeekdayLabel(t *testing.T) {
	assert.Equal(t, "Thứ 2", WeekdayLabel(LocaleVI, "2"))
	assert.Equal(t, "Saturday", WeekdayLabel(LocaleEN, "7"))
	// Codes outside 2..7 keep the literal placeholder in any locale.
	assert.Equal(t, "Thứ 9", WeekdayLabel(LocaleEN, "9"))
}

func TestWeekLabel(t *testing.T) {
	assert.Equal(t, "Tuần 3 - Từ 10/03 đến 16/03", WeekLabel(LocaleVI, 3, "10/03", "16/03"))
	assert.Equal(t, "Week 3 - From 10/03 to 16/03", WeekLabel(LocaleEN, 3, "10/03", "16/03"))
}

package clock

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimezoneByCountry(t *testing.T) {
	assert.Equal(t, "Asia/Seoul", TimezoneByCountry("Korea"))
	assert.Equal(t, "America/New_York", TimezoneByCountry("USA"))
	assert.Equal(t, "UTC", TimezoneByCountry("Atlantis"))
	assert.Equal(t, "UTC", TimezoneByCountry(""))
}

func TestToday_Format(t *testing.T) {
	datePattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	assert.Regexp(t, datePattern, Today("Korea"))
	assert.Regexp(t, datePattern, Today("nowhere"))
}

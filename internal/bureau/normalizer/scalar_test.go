package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestParseMoney(t *testing.T) {
	t.Run("locale round trip", func(t *testing.T) {
		assert.Equal(t, 1234567.89, ParseMoney("1.234.567,89"))
		assert.Equal(t, 1234.56, ParseMoney("1.234,56"))
		assert.Equal(t, 1000.0, ParseMoney("1.000,00"))
		assert.Equal(t, 0.5, ParseMoney("0,50"))
	})

	t.Run("thousands only", func(t *testing.T) {
		assert.Equal(t, 1234.0, ParseMoney("1.234"))
	})

	t.Run("absent yields safe zero", func(t *testing.T) {
		assert.Equal(t, 0.0, ParseMoney(""))
		assert.Equal(t, 0.0, ParseMoney("   "))
	})

	t.Run("unparsable yields safe zero", func(t *testing.T) {
		assert.Equal(t, 0.0, ParseMoney("N/A"))
		assert.Equal(t, 0.0, ParseMoney("12,34,56"))
	})
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 3, ParseCount("3"))
	assert.Equal(t, 3, ParseCount(" 3 "))
	assert.Equal(t, 0, ParseCount(""))
	assert.Equal(t, 0, ParseCount("three"))
	assert.Equal(t, 0, ParseCount("1,5"))
}

func TestSumMoney(t *testing.T) {
	field := func(raw string) gjson.Result {
		return gjson.Parse(raw)
	}

	t.Run("exact aggregation", func(t *testing.T) {
		assert.Equal(t, 150.5, sumMoney(field(`"100,00"`), field(`"50,50"`)))
	})

	t.Run("absent parts are zero", func(t *testing.T) {
		assert.Equal(t, 100.0, sumMoney(field(`"100,00"`), field(`""`)))
		assert.Equal(t, 0.0, sumMoney(field(`""`), gjson.Result{}))
	})

	t.Run("non-string values are zero", func(t *testing.T) {
		// A JSON number must not be read as locale text: stripping the "."
		// from a stringified 100.5 would inflate it tenfold.
		assert.Equal(t, 0.0, sumMoney(field(`100.5`)))
		assert.Equal(t, 0.0, sumMoney(field(`null`), field(`true`)))
		assert.Equal(t, 200.0, sumMoney(field(`100.5`), field(`"200,00"`)))
	})
}

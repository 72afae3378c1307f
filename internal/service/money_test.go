package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonNumber(s string) json.Number { return json.Number(s) }

// TestParseAmount 测试金额解析为分
func TestParseAmount(t *testing.T) {
	cases := map[string]int64{
		"0":      0,
		"10":     1000,
		"12.34":  1234,
		"0.1":    10,
		" 5.50 ": 550,
	}
	for in, want := range cases {
		got, err := ParseAmount(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "abc", "-1", "1.234", "1000000000"} {
		_, err := ParseAmount(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatCent(t *testing.T) {
	assert.Equal(t, "0.00", FormatCent(0))
	assert.Equal(t, "12.34", FormatCent(1234))
	assert.Equal(t, "60.00", FormatCent(6000))
	assert.Equal(t, "0.05", FormatCent(5))
}

// TestPercent 测试百分比保留两位小数，总额为 0 时返回 0
func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(100, 0))
	assert.Equal(t, 50.0, Percent(3000, 6000))
	assert.Equal(t, 33.33, Percent(1, 3))
	assert.Equal(t, 66.67, Percent(2, 3))
	assert.Equal(t, 100.0, Percent(7, 7))
}

package service

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStatistics_CategoryBreakdown 10 + 20 记在 A，30 记在 B
func TestStatistics_CategoryBreakdown(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	a := f.category(t, "A", 0)
	b := f.category(t, "B", 0)
	f.category(t, "Unused", 0)

	now := time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC)
	f.svc.Statistics.now = func() time.Time { return now }

	f.bill(t, alice, a.ID, "10", now.Add(-time.Hour))
	f.bill(t, alice, a.ID, "20", now.Add(-2*time.Hour))
	f.bill(t, alice, b.ID, "30", now.Add(-3*time.Hour))
	f.bill(t, bob, b.ID, "1000", now)
	deleted := f.bill(t, alice, b.ID, "500", now)
	require.NoError(t, f.svc.Bills.Delete(f.ctx, alice, deleted.ID))

	stats, err := f.svc.Statistics.Compute(f.ctx, alice)
	require.NoError(t, err)

	assert.Equal(t, "60.00", stats.TotalAmount)
	require.Len(t, stats.CategoryStats, 2)

	// 金额相同时按名称排序
	assert.Equal(t, CategoryStat{CategoryID: a.ID, Name: "A", TotalAmount: "30.00", Count: 2, Percentage: 50}, stats.CategoryStats[0])
	assert.Equal(t, CategoryStat{CategoryID: b.ID, Name: "B", TotalAmount: "30.00", Count: 1, Percentage: 50}, stats.CategoryStats[1])

	require.Len(t, stats.CategoryChartData, 2)
	assert.Equal(t, ChartItem{Name: "A", Value: 30}, stats.CategoryChartData[0])
}

// TestStatistics_PercentSum 测试百分比之和约为 100
func TestStatistics_PercentSum(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	now := time.Now()
	for i, amount := range []string{"1", "1", "1", "3.33", "7.77"} {
		cat := f.category(t, string(rune('A'+i)), 0)
		f.bill(t, alice, cat.ID, amount, now.Add(-time.Hour))
	}

	stats, err := f.svc.Statistics.Compute(f.ctx, alice)
	require.NoError(t, err)
	require.Len(t, stats.CategoryStats, 5)

	var sum float64
	for i, s := range stats.CategoryStats {
		sum += s.Percentage
		if i > 0 {
			assert.GreaterOrEqual(t, stats.CategoryStats[i-1].Percentage, s.Percentage)
		}
	}
	assert.InDelta(t, 100, sum, 0.05)
	assert.Equal(t, "7.77", stats.CategoryStats[0].TotalAmount)
}

// TestStatistics_Empty 测试没有账单时的输出
func TestStatistics_Empty(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	f.category(t, "A", 0)

	stats, err := f.svc.Statistics.Compute(f.ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, stats.CategoryStats)
	assert.NotNil(t, stats.CategoryStats)
	assert.Equal(t, "0.00", stats.TotalAmount)
	assert.Len(t, stats.TimeChartData.Dates, 31)
	assert.Len(t, stats.TimeChartData.Amounts, 31)
	for _, v := range stats.TimeChartData.Amounts {
		assert.Zero(t, v)
	}
}

// TestStatistics_DailySeries 测试最近 30 天按天汇总
func TestStatistics_DailySeries(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	cat := f.category(t, "A", 0)

	now := time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC)
	f.svc.Statistics.now = func() time.Time { return now }

	f.bill(t, alice, cat.ID, "10", time.Date(2024, 5, 31, 8, 0, 0, 0, time.UTC))
	f.bill(t, alice, cat.ID, "5.5", time.Date(2024, 5, 31, 9, 0, 0, 0, time.UTC))
	f.bill(t, alice, cat.ID, "3", time.Date(2024, 5, 15, 23, 0, 0, 0, time.UTC))
	f.bill(t, alice, cat.ID, "7", time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC))
	// 窗口之外
	f.bill(t, alice, cat.ID, "100", time.Date(2024, 4, 30, 23, 0, 0, 0, time.UTC))
	f.bill(t, alice, cat.ID, "100", time.Date(2024, 4, 20, 12, 0, 0, 0, time.UTC))
	f.bill(t, alice, cat.ID, "100", time.Date(2024, 5, 31, 13, 0, 0, 0, time.UTC))

	stats, err := f.svc.Statistics.Compute(f.ctx, alice)
	require.NoError(t, err)

	series := stats.TimeChartData
	require.Len(t, series.Dates, 31)
	require.Len(t, series.Amounts, 31)
	assert.Equal(t, "2024-05-01", series.Dates[0])
	assert.Equal(t, "2024-05-31", series.Dates[30])

	assert.Equal(t, 7.0, series.Amounts[0])
	assert.Equal(t, 3.0, series.Amounts[14])
	assert.Equal(t, 15.5, series.Amounts[30])
	assert.Zero(t, series.Amounts[1])

	// 分类汇总不受窗口限制
	assert.Equal(t, "325.50", stats.TotalAmount)
}

// TestStatistics_DailySeriesLocation 测试按配置时区划分日期
func TestStatistics_DailySeriesLocation(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	cat := f.category(t, "A", 0)

	shanghai := time.FixedZone("CST", 8*3600)
	f.svc.Statistics.loc = shanghai
	now := time.Date(2024, 5, 31, 12, 0, 0, 0, shanghai)
	f.svc.Statistics.now = func() time.Time { return now }

	// 2024-05-30 20:00 UTC = 2024-05-31 04:00 CST
	f.bill(t, alice, cat.ID, "8", time.Date(2024, 5, 30, 20, 0, 0, 0, time.UTC))

	stats, err := f.svc.Statistics.Compute(f.ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-31", stats.TimeChartData.Dates[30])
	assert.Equal(t, 8.0, stats.TimeChartData.Amounts[30])
	assert.Zero(t, stats.TimeChartData.Amounts[29])
}

// TestStatistics_DailySeriesDST 测试跨夏令时切换时每个自然日都在序列里
func TestStatistics_DailySeriesDST(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	testCases := map[string]struct {
		now   time.Time
		first string
		last  string
	}{
		"spring forward": {time.Date(2024, 3, 20, 0, 30, 0, 0, newYork), "2024-02-19", "2024-03-20"},
		"fall back":      {time.Date(2024, 11, 10, 23, 30, 0, 0, newYork), "2024-10-11", "2024-11-10"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			alice := f.user(t, "alice")
			f.svc.Statistics.loc = newYork
			f.svc.Statistics.now = func() time.Time { return tc.now }

			series := mustSeries(t, f, alice)
			require.Len(t, series.Dates, 31)
			assert.Equal(t, tc.first, series.Dates[0])
			assert.Equal(t, tc.last, series.Dates[30])

			seen := make(map[string]bool, len(series.Dates))
			for i, d := range series.Dates {
				assert.False(t, seen[d], "duplicate date %s", d)
				seen[d] = true
				if i > 0 {
					prev, _ := time.ParseInLocation("2006-01-02", series.Dates[i-1], newYork)
					assert.Equal(t, prev.AddDate(0, 0, 1).Format("2006-01-02"), d)
				}
			}
		})
	}
}

// TestStatistics_DailySeriesDSTBill 测试夏令时当天的账单计入当天
func TestStatistics_DailySeriesDSTBill(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	f := newFixture(t)
	alice := f.user(t, "alice")
	cat := f.category(t, "A", 0)
	f.svc.Statistics.loc = newYork
	f.svc.Statistics.now = func() time.Time { return time.Date(2024, 3, 20, 0, 30, 0, 0, newYork) }

	f.bill(t, alice, cat.ID, "9", time.Date(2024, 3, 10, 12, 0, 0, 0, newYork).UTC())
	// 窗口第一天的零点之后
	f.bill(t, alice, cat.ID, "2", time.Date(2024, 2, 19, 0, 10, 0, 0, newYork).UTC())

	series := mustSeries(t, f, alice)
	require.Equal(t, "2024-03-10", series.Dates[20])
	assert.Equal(t, 9.0, series.Amounts[20])
	assert.Equal(t, 2.0, series.Amounts[0])

	var sum float64
	for _, v := range series.Amounts {
		sum += v
	}
	assert.Equal(t, 11.0, sum)
}

func mustSeries(t *testing.T, f *fixture, actor Actor) TimeSeries {
	t.Helper()
	stats, err := f.svc.Statistics.Compute(f.ctx, actor)
	require.NoError(t, err)
	return stats.TimeChartData
}

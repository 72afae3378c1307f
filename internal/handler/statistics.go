package handler

import (
	"daily-app/internal/util"

	"github.com/gin-gonic/gin"
)

// Statistics GET /bill/statistics：分类汇总 + 最近 30 天每日支出
func (h *BillHandler) Statistics(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	stats, err := h.stats.Compute(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err, billListPath)
		return
	}
	util.Success(c, util.Response{
		"category_stats":      stats.CategoryStats,
		"category_chart_data": stats.CategoryChartData,
		"time_chart_data":     stats.TimeChartData,
		"total_amount":        stats.TotalAmount,
	})
}

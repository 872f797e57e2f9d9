package http

import (
	"net/http"
)

func (h *Handler) handleAnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	const handlerName = "analytics_overview"

	overview, err := h.Analytics.Overview(r.Context())
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, overviewResponse{Overview: overview})
}

func (h *Handler) handleAnalyticsAlertPerformance(w http.ResponseWriter, r *http.Request) {
	const handlerName = "analytics_alerts_performance"

	limit, err := ParseIntQuery(r.URL.Query(), "limit", 0)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	performance, err := h.Analytics.AlertPerformance(r.Context(), limit)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, alertPerformanceResponse{Performance: performance})
}

func (h *Handler) handleAnalyticsDailyTrends(w http.ResponseWriter, r *http.Request) {
	const handlerName = "analytics_trends_daily"

	days, err := ParseIntQuery(r.URL.Query(), "days", 0)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	trends, err := h.Analytics.DailyTrends(r.Context(), days)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, dailyTrendsResponse{Trends: trends})
}

func (h *Handler) handleAnalyticsUserEngagement(w http.ResponseWriter, r *http.Request) {
	const handlerName = "analytics_users_engagement"

	limit, err := ParseIntQuery(r.URL.Query(), "limit", 0)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	engagement, err := h.Analytics.UserEngagement(r.Context(), limit)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, userEngagementResponse{Engagement: engagement})
}

func (h *Handler) handleAnalyticsSystemHealth(w http.ResponseWriter, r *http.Request) {
	health := h.Analytics.SystemHealth(r.Context())
	h.writeJSON(w, http.StatusOK, systemHealthResponse{SystemHealth: health})
}

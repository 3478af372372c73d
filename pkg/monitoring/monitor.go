package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// 以下为业务指标
	StudyMinutes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studyquest_study_minutes_total",
			Help: "Study minutes recorded, by subject and source",
		},
		[]string{"subject", "source"},
	)

	LevelUps = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "studyquest_level_ups_total",
			Help: "Number of levels gained",
		},
	)

	Evolutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studyquest_evolutions_total",
			Help: "Character stage evolutions, by new stage",
		},
		[]string{"stage"},
	)

	Purchases = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studyquest_purchases_total",
			Help: "Shop purchase attempts, by item and result",
		},
		[]string{"item", "result"},
	)

	TasksCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "studyquest_tasks_completed_total",
			Help: "Tasks transitioned to completed",
		},
	)

	ProfileLevel = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "studyquest_profile_level",
			Help: "Current learner level",
		},
	)

	CoinBalance = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "studyquest_coin_balance",
			Help: "Current coin balance",
		},
	)

	TimerTicks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studyquest_timer_ticks_total",
			Help: "Focus timer ticks processed, by mode",
		},
		[]string{"mode"},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(StudyMinutes)
		prometheus.MustRegister(LevelUps)
		prometheus.MustRegister(Evolutions)
		prometheus.MustRegister(Purchases)
		prometheus.MustRegister(TasksCompleted)
		prometheus.MustRegister(ProfileLevel)
		prometheus.MustRegister(CoinBalance)
		prometheus.MustRegister(TimerTicks)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

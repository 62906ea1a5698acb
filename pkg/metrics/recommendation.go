package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Time spent inside RankAll, excluding request decoding and history writes
	RankLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "crop_rank_duration_seconds",
		Help:    "Time spent ranking every crop against one set of conditions",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of rankings served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "crop_recommend_requests_total",
		Help: "Total number of crop recommend requests",
	})

	CompatibleSetSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "crop_recommend_compatible_crops",
		Help:    "Number of compatible crops per ranking",
		Buckets: prometheus.LinearBuckets(0, 10, 7),
	})

	// How often each crop ranked first
	TopCropTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "crop_recommend_top_crop_total",
		Help: "Number of rankings in which a crop ranked first",
	}, []string{"crop"})

	HistoryWriteFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "crop_history_write_failures_total",
		Help: "Number of predictions that could not be stored",
	})
)

func Init() {
	prometheus.MustRegister(
		RankLatency,
		RecommendRequests,
		CompatibleSetSize,
		TopCropTotal,
		HistoryWriteFailures,
	)
}

package processor

import "github.com/prometheus/client_golang/prometheus"

var (
	processedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_tracker",
		Subsystem: "processor",
		Name:      "packages_processed_total",
		Help:      "Number of sensor packages successfully summarised.",
	}, []string{"training_type"})

	unknownCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_tracker",
		Subsystem: "processor",
		Name:      "packages_unknown_total",
		Help:      "Number of sensor packages skipped because of an unknown type code.",
	}, []string{"code"})

	failureCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness_tracker",
		Subsystem: "processor",
		Name:      "packages_failed_total",
		Help:      "Number of sensor packages rejected during construction.",
	}, []string{"code"})
)

func init() {
	prometheus.MustRegister(processedCounter, unknownCounter, failureCounter)
}

func recordProcessed(trainingType string) {
	processedCounter.WithLabelValues(trainingType).Inc()
}

func recordUnknown(code string) {
	unknownCounter.WithLabelValues(code).Inc()
}

func recordFailure(code string) {
	failureCounter.WithLabelValues(code).Inc()
}

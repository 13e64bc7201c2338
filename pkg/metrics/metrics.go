package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rejection reasons recorded on failed dose registrations.
const (
	ReasonNotFound = "not_found"
	ReasonDoseCap  = "dose_cap"
	ReasonInterval = "interval"
)

var (
	VaccinationsRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vaccinations_registered_total",
		Help: "Administered doses accepted by the eligibility engine.",
	})

	VaccinationsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vaccinations_rejected_total",
		Help: "Dose registrations rejected by the eligibility engine, by reason.",
	}, []string{"reason"})

	ScheduleInvariantViolations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vaccine_schedule_invariant_violations_total",
		Help: "Vaccine schedule creations rejected by the dose/booster invariants.",
	})

	OverdueQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "overdue_queries_total",
		Help: "Overdue-vaccine computations served.",
	})
)

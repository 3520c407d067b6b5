package botmod

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var profileProcessDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "botmod_profile_process_duration_sec",
	Help: "Total duration of profile rule evaluation and scoring",
})

var profileProcessCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "botmod_profiles_processed",
	Help: "Number of profiles evaluated",
})

var accountFlagCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "botmod_accounts_flagged",
	Help: "Number of accounts classified as bots and added to the blocklist",
})

var ruleErrorCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "botmod_rule_errors",
	Help: "Number of rule executions which failed and degraded to a neutral sub-score",
}, []string{"rule"})

var blocklistSize = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "botmod_blocklist_size",
	Help: "Number of entries in the blocklist",
})

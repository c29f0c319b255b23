// Package metrics exposes the bot's prometheus counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	GamesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mafiabot",
		Name:      "games_started_total",
		Help:      "Sessions that left the lobby.",
	})

	GamesFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mafiabot",
		Name:      "games_finished_total",
		Help:      "Sessions that reached a win condition, by winner.",
	}, []string{"winner"})

	Deaths = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mafiabot",
		Name:      "deaths_total",
		Help:      "Players eliminated at night or by vote.",
	})

	Intents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mafiabot",
		Name:      "intents_total",
		Help:      "Accepted ledger submissions, by kind.",
	}, []string{"kind"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

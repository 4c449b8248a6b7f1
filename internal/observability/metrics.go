package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creel_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// ScoreEvents counts scoring events applied to profiles by event type.
	ScoreEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creel_score_events_total",
		Help: "Total number of progression score events applied",
	}, []string{"event"})

	// PostsCreated counts posts accepted by the content store.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "creel_posts_created_total",
		Help: "Total number of posts created",
	})

	// ImageSetReplacements counts wholesale image set replacements on posts.
	ImageSetReplacements = promauto.NewCounter(prometheus.CounterOpts{
		Name: "creel_image_set_replacements_total",
		Help: "Total number of post image set replacements",
	})
)
